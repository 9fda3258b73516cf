package core

// Variant distinguishes traveler types. Only VariantGood exists today.
type Variant uint8

const (
	VariantGood Variant = iota
)

// Entity is a traveler: a value with a position, a heading and a variant.
type Entity struct {
	Pos     Pos
	Heading Heading
	Variant Variant
}

// NewEntity creates a good traveler at p facing h.
func NewEntity(p Pos, h Heading) Entity {
	return Entity{Pos: p, Heading: h, Variant: VariantGood}
}

// Rotated returns a copy of e turned by one step (see Heading.Rotate).
func (e Entity) Rotated(sign int) Entity {
	e.Heading = e.Heading.Rotate(sign)
	return e
}
