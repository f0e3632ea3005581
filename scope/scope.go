package scope

import mapset "github.com/deckarep/golang-set/v2"

// A Scope is one position in a rendered tree. It is threaded explicitly
// through render calls, the end caller's ordinary parameters never carry it.
// Channel values published at a scope are visible from every scope beneath
// it, and a read finds the nearest enclosing publisher by walking parents.
type Scope struct {
	parent   *Scope
	children mapset.Set[*Scope]
	values   map[uint64]any
}

// NewRoot creates a scope with no parent. Reads of unpublished channels at
// or below a root fail, there is no global fallback.
func NewRoot() *Scope {
	return &Scope{
		children: mapset.NewSet[*Scope](),
		values:   map[uint64]any{},
	}
}

// Child creates a scope one level deeper.
func (s *Scope) Child() *Scope {
	child := NewRoot()
	child.parent = s
	s.children.Add(child)
	return child
}

// Dispose tears down this scope and everything beneath it and unlinks it
// from its parent. Not unlinking would keep the whole subtree reachable
// for as long as the parent is alive.
func (s *Scope) Dispose() {
	for child := range s.children.Iter() {
		child.parent = nil
		child.Dispose()
	}
	s.children.Clear()
	clear(s.values)
	if s.parent != nil {
		s.parent.children.Remove(s)
		s.parent = nil
	}
}

// lookup walks up the parent chain for the nearest scope carrying id.
func (s *Scope) lookup(id uint64) (v any, ok bool) {
	if v, ok = s.values[id]; ok {
		return v, true
	}
	if s.parent != nil {
		return s.parent.lookup(id)
	}
	return nil, false
}

func (s *Scope) set(id uint64, v any) {
	s.values[id] = v
}
