package renderfn

// Handler is an activation callback carried in an attribute set. Handlers
// merge by composition, not replacement: when a Set collides with an
// existing handler, both run, earlier contributor first.
type Handler func()

const (
	// AttrExpanded always reflects the current on value.
	AttrExpanded = "aria-expanded"
	// EventActivate is the activation event the store's toggle is bound to.
	EventActivate = "onClick"
)

// Attrs is an insertion-ordered attribute/handler set.
type Attrs struct {
	names  []string
	values map[string]any
}

func NewAttrs() *Attrs {
	return &Attrs{values: map[string]any{}}
}

// Set layers a value onto the set. A non-handler value replaces any
// existing one (last write wins). When both the existing and the new value
// are handlers they compose, the existing handler runs first, so two call
// sites can each contribute a handler for the same event without one
// clobbering the other.
func (a *Attrs) Set(name string, v any) *Attrs {
	prev, exists := a.values[name]
	if !exists {
		a.names = append(a.names, name)
		a.values[name] = v
		return a
	}
	ph, pok := toHandler(prev)
	nh, nok := toHandler(v)
	if pok && nok {
		a.values[name] = Handler(func() {
			ph()
			nh()
		})
		return a
	}
	a.values[name] = v
	return a
}

// Get returns the value for name.
func (a *Attrs) Get(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Handler returns the handler bound to name, nil if none is.
func (a *Attrs) Handler(name string) Handler {
	v, ok := a.values[name]
	if !ok {
		return nil
	}
	h, ok := toHandler(v)
	if !ok {
		return nil
	}
	return h
}

// Invoke fires the handler bound to name, a no-op if there isn't one.
func (a *Attrs) Invoke(name string) {
	if h := a.Handler(name); h != nil {
		h()
	}
}

// Names returns attribute names in insertion order.
func (a *Attrs) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

func (a *Attrs) Len() int { return len(a.names) }

func toHandler(v any) (Handler, bool) {
	switch h := v.(type) {
	case Handler:
		return h, true
	case func():
		return Handler(h), true
	}
	return nil, false
}
