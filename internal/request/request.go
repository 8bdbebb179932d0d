// Package request defines the document the form produces and how it is
// validated against a catalog and written out.
package request

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/genform/internal/catalog"
	"github.com/alexisbeaulieu97/genform/internal/validation"
)

// MaxNegativePromptLength mirrors the field's ceiling for requests built
// outside the form.
const MaxNegativePromptLength = 1000

// Output formats accepted by Encode.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// GenerationRequest is the form's result.
type GenerationRequest struct {
	AspectRatio    string `yaml:"aspect_ratio" json:"aspect_ratio" validate:"required,aspect_ratio"`
	Resolution     string `yaml:"resolution" json:"resolution" validate:"required,resolution"`
	Width          int    `yaml:"width" json:"width" validate:"gt=0"`
	Height         int    `yaml:"height" json:"height" validate:"gt=0"`
	NegativePrompt string `yaml:"negative_prompt,omitempty" json:"negative_prompt,omitempty" validate:"max=1000"`
}

// New builds a request from identifiers, filling dimensions from c. Unknown
// resolutions leave the dimensions at zero so validation reports them.
func New(c catalog.Catalog, aspectRatio, resolution, negativePrompt string) GenerationRequest {
	req := GenerationRequest{
		AspectRatio:    aspectRatio,
		Resolution:     resolution,
		NegativePrompt: negativePrompt,
	}
	return req.WithResolution(c, resolution)
}

// WithResolution returns a copy using resolution id and its dimensions.
func (r GenerationRequest) WithResolution(c catalog.Catalog, id string) GenerationRequest {
	r.Resolution = id
	r.Width, r.Height = 0, 0
	if res, ok := c.Resolution(id); ok {
		r.Width, r.Height = res.Width, res.Height
	}
	return r
}

type catalogKey struct{}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validation.New()
		_ = v.RegisterValidationCtx("aspect_ratio", func(ctx context.Context, fl validator.FieldLevel) bool {
			c, ok := ctx.Value(catalogKey{}).(catalog.Catalog)
			if !ok {
				return false
			}
			_, found := c.AspectRatio(fl.Field().String())
			return found
		})
		_ = v.RegisterValidationCtx("resolution", func(ctx context.Context, fl validator.FieldLevel) bool {
			c, ok := ctx.Value(catalogKey{}).(catalog.Catalog)
			if !ok {
				return false
			}
			_, found := c.Resolution(fl.Field().String())
			return found
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks identifiers against c, the dimensions against the chosen
// resolution and the negative prompt against its ceiling.
func (r GenerationRequest) Validate(c catalog.Catalog) error {
	ctx := context.WithValue(context.Background(), catalogKey{}, c)
	if err := validation.Convert(validatorInstance().StructCtx(ctx, r), "request"); err != nil {
		return err
	}

	res, _ := c.Resolution(r.Resolution)
	if r.Width != res.Width || r.Height != res.Height {
		return validation.Convert(
			fmt.Errorf("dimensions %dx%d do not match resolution %q (%dx%d)", r.Width, r.Height, r.Resolution, res.Width, res.Height),
			"width",
		)
	}
	return nil
}

// Encode writes r to w in format. An empty format means yaml.
func (r GenerationRequest) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// String renders r as yaml; used for clipboard copies and logs.
func (r GenerationRequest) String() string {
	var b strings.Builder
	_ = r.Encode(&b, FormatYAML)
	return b.String()
}
