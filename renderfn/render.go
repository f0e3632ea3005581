package renderfn

import "github.com/delaneyj/toggleparty/toggle"

// Context is what the render callback receives on every commit: the
// committed value, the store's two actions, and the prop getter. No tree
// broadcast is involved, the caller controls exactly what appears in the
// output.
type Context struct {
	On     bool
	Toggle func()
	Reset  func()

	snap toggle.Snapshot
}

// Attrs builds a merged attribute set for a display unit: the expanded
// state computed from On, the store's toggle bound to EventActivate, then
// the caller's overrides layered on top. Handler collisions compose with
// the store's action first, non-handler overrides win outright. Pure, nil
// overrides are fine.
func (c Context) Attrs(overrides *Attrs) *Attrs {
	a := NewAttrs()
	a.Set(AttrExpanded, c.snap.On)
	a.Set(EventActivate, Handler(c.snap.Toggle))
	if overrides != nil {
		for _, name := range overrides.Names() {
			v, _ := overrides.Get(name)
			a.Set(name, v)
		}
	}
	return a
}

// Adapter re-invokes a caller-supplied render callback with a fresh Context
// after every commit. This is the render-prop variant: a plain function
// value stored at construction, no decoration and no subtree involved.
type Adapter[T any] struct {
	store  *toggle.Store
	render func(Context) T
	out    T
	stop   func()
}

// New invokes render once with the store's current snapshot and again after
// every commit. Close the adapter to stop watching.
func New[T any](store *toggle.Store, render func(Context) T) *Adapter[T] {
	a := &Adapter[T]{store: store, render: render}
	a.invoke(store.Snapshot())
	a.stop = store.Watch(a.invoke)
	return a
}

func (a *Adapter[T]) invoke(snap toggle.Snapshot) {
	a.out = a.render(Context{
		On:     snap.On,
		Toggle: snap.Toggle,
		Reset:  snap.Reset,
		snap:   snap,
	})
}

// Output returns the latest rendered output.
func (a *Adapter[T]) Output() T { return a.out }

// Close stops re-invoking the callback.
func (a *Adapter[T]) Close() { a.stop() }
