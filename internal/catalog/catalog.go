// Package catalog holds the static option lists the form offers: aspect ratios
// and output resolutions. The lists are ordered; selectors render them in the
// order given here.
package catalog

// Orientation distinguishes tall from wide aspect ratios.
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// Well-known option identifiers.
const (
	AspectLandscape = "landscape"
	AspectPortrait  = "portrait"

	ResolutionHD     = "hd"
	ResolutionFullHD = "fullhd"
	Resolution2K     = "2k"
	Resolution4K     = "4k"
	Resolution8K     = "8k"
)

// AspectRatio is one selectable aspect-ratio option.
type AspectRatio struct {
	ID          string      `yaml:"id" json:"id" validate:"required"`
	Name        string      `yaml:"name" json:"name" validate:"required"`
	Orientation Orientation `yaml:"orientation" json:"orientation" validate:"required,oneof=landscape portrait"`
}

// Ratio returns the short ratio label shown under the option.
func (a AspectRatio) Ratio() string {
	if a.Orientation == OrientationPortrait {
		return "9:16"
	}
	return "16:9"
}

// Resolution is one selectable output size.
type Resolution struct {
	ID     string `yaml:"id" json:"id" validate:"required"`
	Name   string `yaml:"name" json:"name" validate:"required"`
	Width  int    `yaml:"width" json:"width" validate:"gt=0"`
	Height int    `yaml:"height" json:"height" validate:"gt=0"`
}

// Catalog bundles both option lists.
type Catalog struct {
	AspectRatios []AspectRatio `yaml:"aspect_ratios" json:"aspect_ratios" validate:"required,min=1,unique=ID,dive"`
	Resolutions  []Resolution  `yaml:"resolutions" json:"resolutions" validate:"required,min=1,unique=ID,dive"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		AspectRatios: []AspectRatio{
			{ID: AspectLandscape, Name: "Landscape", Orientation: OrientationLandscape},
			{ID: AspectPortrait, Name: "Portrait", Orientation: OrientationPortrait},
		},
		Resolutions: []Resolution{
			{ID: ResolutionHD, Name: "HD", Width: 1280, Height: 720},
			{ID: ResolutionFullHD, Name: "Full HD", Width: 1920, Height: 1080},
			{ID: Resolution2K, Name: "2K", Width: 2560, Height: 1440},
			{ID: Resolution4K, Name: "4K", Width: 3840, Height: 2160},
			{ID: Resolution8K, Name: "8K", Width: 7680, Height: 4320},
		},
	}
}

// AspectRatio looks up an aspect ratio by identifier.
func (c Catalog) AspectRatio(id string) (AspectRatio, bool) {
	for _, a := range c.AspectRatios {
		if a.ID == id {
			return a, true
		}
	}
	return AspectRatio{}, false
}

// Resolution looks up a resolution by identifier.
func (c Catalog) Resolution(id string) (Resolution, bool) {
	for _, r := range c.Resolutions {
		if r.ID == id {
			return r, true
		}
	}
	return Resolution{}, false
}

// IsPortrait reports whether id is the distinguished portrait aspect ratio.
func IsPortrait(id string) bool {
	return id == AspectPortrait
}

// IsPremium reports whether id belongs to the premium resolution tier.
func IsPremium(id string) bool {
	return id == Resolution4K || id == Resolution8K
}

// IsRecommended reports whether id is the recommended resolution.
func IsRecommended(id string) bool {
	return id == ResolutionFullHD
}
