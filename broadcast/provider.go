package broadcast

import (
	"github.com/delaneyj/toggleparty/scope"
	"github.com/delaneyj/toggleparty/toggle"
)

// Channel is the reserved key for the toggle channel. Exactly one snapshot
// is visible per position in the tree: the one published by the nearest
// enclosing Provider. Other channels with other names never collide with it.
var Channel = scope.NewKey[toggle.Snapshot]("toggleparty.toggle")

// Use reads the nearest enclosing Provider's current snapshot. Outside any
// Provider's subtree it fails with scope.ErrNoPublisher rather than
// defaulting the value.
func Use(sc *scope.Scope) (toggle.Snapshot, error) {
	return Channel.Read(sc)
}

// Provider publishes a store's snapshot to a subtree and re-renders that
// subtree after every commit, so all readers beneath it observe the same
// snapshot within one render pass.
type Provider struct {
	store *toggle.Store
	inner *scope.Scope
	body  func(*scope.Scope) (string, error)
	out   string
	err   error
	stop  func()
}

// Mount publishes store's current snapshot beneath sc and renders body
// there. body runs once immediately and again after every commit with the
// fresh snapshot already published. Close the provider to stop watching.
func Mount(sc *scope.Scope, store *toggle.Store, body func(*scope.Scope) (string, error)) *Provider {
	p := &Provider{
		store: store,
		inner: Channel.Publish(sc, store.Snapshot()),
		body:  body,
	}
	p.render()
	p.stop = store.Watch(func(snap toggle.Snapshot) {
		Channel.Update(p.inner, snap)
		p.render()
	})
	return p
}

func (p *Provider) render() {
	p.out, p.err = p.body(p.inner)
}

// Output returns the subtree's latest rendered output, or the error the
// subtree surfaced. A reader failure inside the subtree shows up here.
func (p *Provider) Output() (string, error) {
	return p.out, p.err
}

// Scope returns the scope the snapshot is published at, the root of the
// provider's subtree.
func (p *Provider) Scope() *scope.Scope {
	return p.inner
}

// Close stops watching the store and tears down the subtree's scopes.
func (p *Provider) Close() {
	p.stop()
	p.inner.Dispose()
}
