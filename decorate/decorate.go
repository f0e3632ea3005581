package decorate

import (
	"github.com/delaneyj/toggleparty/broadcast"
	"github.com/delaneyj/toggleparty/scope"
	"github.com/delaneyj/toggleparty/toggle"
)

// ParamKey is the reserved params key the channel snapshot is injected
// under. It is written after caller params are merged, so callers cannot
// shadow the snapshot, accidentally or otherwise.
const ParamKey = "toggleparty.snapshot"

// WithToggle wraps a display unit so that every render first reads the
// nearest enclosing toggle channel and hands the snapshot to the unit under
// ParamKey. Identity metadata is carried over: statics are copied by value
// and the diagnostic name becomes "decorated(<name>)" so wrapped units stay
// identifiable. A Ref riding along is forwarded to the wrapped unit, never
// claimed by the wrapper. Decorating twice just adds another lookup layer.
func WithToggle(u *scope.Unit) *scope.Unit {
	inner := u
	return &scope.Unit{
		Meta: scope.Meta{
			Name:    "decorated(" + inner.Meta.Name + ")",
			Statics: inner.Meta.Clone().Statics,
		},
		Render: func(sc *scope.Scope, in scope.Input) (string, error) {
			snap, err := broadcast.Use(sc)
			if err != nil {
				return "", err
			}
			params := in.Params.Clone()
			params[ParamKey] = snap
			return scope.RenderUnit(sc, inner, scope.Input{
				Params: params,
				Ref:    in.Ref,
			})
		},
	}
}

// Snap pulls the injected snapshot back out of a decorated unit's params.
func Snap(p scope.Params) (toggle.Snapshot, bool) {
	v, ok := p[ParamKey]
	if !ok {
		return toggle.Snapshot{}, false
	}
	snap, ok := v.(toggle.Snapshot)
	if !ok {
		panic("invalid type")
	}
	return snap, true
}
