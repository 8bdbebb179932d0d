package request

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/genform/internal/catalog"
	apperrors "github.com/alexisbeaulieu97/genform/pkg/errors"
)

func TestNewFillsDimensions(t *testing.T) {
	t.Parallel()

	req := New(catalog.Default(), "portrait", "2k", "blurry")
	assert.Equal(t, GenerationRequest{
		AspectRatio:    "portrait",
		Resolution:     "2k",
		Width:          2560,
		Height:         1440,
		NegativePrompt: "blurry",
	}, req)

	unknown := New(catalog.Default(), "portrait", "16k", "")
	assert.Zero(t, unknown.Width)
	assert.Zero(t, unknown.Height)

	switched := req.WithResolution(catalog.Default(), "hd")
	assert.Equal(t, 1280, switched.Width)
	assert.Equal(t, 2560, req.Width, "WithResolution returns a copy")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	tests := []struct {
		name  string
		req   GenerationRequest
		field string
	}{
		{name: "valid", req: New(c, "landscape", "fullhd", "")},
		{name: "valid at limit", req: New(c, "landscape", "8k", strings.Repeat("x", MaxNegativePromptLength))},
		{name: "missing aspect", req: New(c, "", "fullhd", ""), field: "aspect_ratio"},
		{name: "unknown aspect", req: New(c, "square", "fullhd", ""), field: "aspect_ratio"},
		{name: "unknown resolution", req: New(c, "landscape", "16k", ""), field: "resolution"},
		{name: "prompt too long", req: New(c, "landscape", "hd", strings.Repeat("é", MaxNegativePromptLength+1)), field: "negative_prompt"},
		{
			name:  "dimensions disagree",
			req:   GenerationRequest{AspectRatio: "landscape", Resolution: "hd", Width: 1920, Height: 1080},
			field: "width",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate(c)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateUsesSuppliedCatalog(t *testing.T) {
	t.Parallel()

	custom := catalog.Catalog{
		AspectRatios: []catalog.AspectRatio{{ID: "square", Name: "Square", Orientation: catalog.OrientationLandscape}},
		Resolutions:  []catalog.Resolution{{ID: "tiny", Name: "Tiny", Width: 64, Height: 64}},
	}

	require.NoError(t, New(custom, "square", "tiny", "").Validate(custom))
	require.Error(t, New(custom, "square", "tiny", "").Validate(catalog.Default()))
}

func TestValidateDescribesUnknownIDs(t *testing.T) {
	t.Parallel()

	err := New(catalog.Default(), "square", "hd", "").Validate(catalog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown aspect ratio "square"`)
}

func TestEncodeYAML(t *testing.T) {
	t.Parallel()

	req := New(catalog.Default(), "landscape", "4k", "blurry, low quality")
	buf := &bytes.Buffer{}
	require.NoError(t, req.Encode(buf, ""))

	var decoded GenerationRequest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, req, decoded)
	assert.Contains(t, buf.String(), "aspect_ratio: landscape")
	assert.Contains(t, buf.String(), "width: 3840")
	assert.Equal(t, buf.String(), req.String())
}

func TestEncodeJSONOmitsEmptyPrompt(t *testing.T) {
	t.Parallel()

	req := New(catalog.Default(), "portrait", "hd", "")
	buf := &bytes.Buffer{}
	require.NoError(t, req.Encode(buf, "JSON"))

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Equal(t, "portrait", fields["aspect_ratio"])
	assert.EqualValues(t, 720, fields["height"])
	assert.NotContains(t, fields, "negative_prompt")
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	err := GenerationRequest{}.Encode(&bytes.Buffer{}, "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml")
}
