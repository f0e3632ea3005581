package scope

import "maps"

// Params are the ordinary render-time parameters of a display unit.
type Params map[string]any

// Clone copies p so a wrapper can add fields without mutating the caller's
// map. Cloning nil yields an empty, writable Params.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)
	return out
}

// Ref is an opaque reference-acquisition slot. A caller that wants a live
// handle on whichever unit ends up rendering passes one in Input.Ref,
// separate from ordinary params. Wrappers forward the slot to the unit they
// wrap instead of claiming it, so the innermost unit wins.
type Ref struct {
	current *Unit
}

// Current returns the unit the slot resolved to, nil before any render.
func (r *Ref) Current() *Unit { return r.current }

// Meta is the identity metadata of a display unit: its diagnostic name and
// any constant members attached to it. Wrappers copy it rather than
// enumerating fields off the wrapped unit.
type Meta struct {
	Name    string
	Statics map[string]any
}

// Clone copies the Statics map so wrapper and wrapped don't alias.
func (m Meta) Clone() Meta {
	return Meta{
		Name:    m.Name,
		Statics: maps.Clone(m.Statics),
	}
}

// Input carries everything a unit receives at render time.
type Input struct {
	Params Params
	Ref    *Ref
}

// RenderFunc produces a unit's output for one render pass at one position.
type RenderFunc func(sc *Scope, in Input) (string, error)

// Unit is a renderable piece of output logic, independent of any UI toolkit.
type Unit struct {
	Meta   Meta
	Render RenderFunc
}

// RenderUnit renders u at sc. If a Ref rides along it is bound to u before
// rendering, a wrapper that re-renders an inner unit through here therefore
// hands the slot to that unit, which is what makes wrapping transparent to
// ref holders.
func RenderUnit(sc *Scope, u *Unit, in Input) (string, error) {
	if in.Ref != nil {
		in.Ref.current = u
	}
	return u.Render(sc, in)
}
