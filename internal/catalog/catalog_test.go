package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/genform/pkg/errors"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().Validate())
}

func TestDefaultCatalogOrder(t *testing.T) {
	t.Parallel()

	c := Default()
	var aspectIDs, resolutionIDs []string
	for _, a := range c.AspectRatios {
		aspectIDs = append(aspectIDs, a.ID)
	}
	for _, r := range c.Resolutions {
		resolutionIDs = append(resolutionIDs, r.ID)
	}

	require.Equal(t, []string{"landscape", "portrait"}, aspectIDs)
	require.Equal(t, []string{"hd", "fullhd", "2k", "4k", "8k"}, resolutionIDs)
}

func TestLookups(t *testing.T) {
	t.Parallel()

	c := Default()

	r, ok := c.Resolution("4k")
	require.True(t, ok)
	require.Equal(t, 3840, r.Width)
	require.Equal(t, 2160, r.Height)

	_, ok = c.Resolution("16k")
	require.False(t, ok)

	a, ok := c.AspectRatio("portrait")
	require.True(t, ok)
	require.Equal(t, "9:16", a.Ratio())

	_, ok = c.AspectRatio("")
	require.False(t, ok)
}

func TestRatioLabelFollowsOrientation(t *testing.T) {
	t.Parallel()

	require.Equal(t, "16:9", AspectRatio{Orientation: OrientationLandscape}.Ratio())
	require.Equal(t, "9:16", AspectRatio{Orientation: OrientationPortrait}.Ratio())
	require.Equal(t, "16:9", AspectRatio{}.Ratio())
}

func TestTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id          string
		premium     bool
		recommended bool
	}{
		{"hd", false, false},
		{"fullhd", false, true},
		{"2k", false, false},
		{"4k", true, false},
		{"8k", true, false},
		{"unknown", false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.premium, IsPremium(tt.id))
			require.Equal(t, tt.recommended, IsRecommended(tt.id))
		})
	}

	require.True(t, IsPortrait("portrait"))
	require.False(t, IsPortrait("landscape"))
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mut   func(c *Catalog)
		field string
	}{
		{
			name:  "duplicate resolution id",
			mut:   func(c *Catalog) { c.Resolutions[1].ID = "hd" },
			field: "resolutions",
		},
		{
			name:  "duplicate aspect id",
			mut:   func(c *Catalog) { c.AspectRatios[1].ID = "landscape" },
			field: "aspect_ratios",
		},
		{
			name:  "zero width",
			mut:   func(c *Catalog) { c.Resolutions[2].Width = 0 },
			field: "resolutions[2].width",
		},
		{
			name:  "negative height",
			mut:   func(c *Catalog) { c.Resolutions[0].Height = -1 },
			field: "resolutions[0].height",
		},
		{
			name:  "unknown orientation",
			mut:   func(c *Catalog) { c.AspectRatios[0].Orientation = "square" },
			field: "aspect_ratios[0].orientation",
		},
		{
			name:  "empty resolutions",
			mut:   func(c *Catalog) { c.Resolutions = nil },
			field: "resolutions",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Default()
			tt.mut(&c)

			err := c.Validate()
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}
