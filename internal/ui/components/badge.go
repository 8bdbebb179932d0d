package components

// Badge is a small inline marker such as the premium tier's lightning bolt.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantNeutral BadgeVariant = iota
	BadgeVariantPremium
	BadgeVariantRecommended
)

// NewBadge creates a neutral badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// PremiumBadge marks options in the premium tier.
func PremiumBadge() *Badge {
	return NewBadge("⚡").WithVariant(BadgeVariantPremium)
}

// RecommendedBadge marks the recommended option.
func RecommendedBadge() *Badge {
	return NewBadge("✨").WithVariant(BadgeVariantRecommended)
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	return style.Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}
