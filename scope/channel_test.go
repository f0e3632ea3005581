package scope_test

import (
	"testing"

	"github.com/delaneyj/toggleparty/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFindsNearestPublisher(t *testing.T) {
	k := scope.NewKey[int]("test.count")
	root := scope.NewRoot()

	outer := k.Publish(root, 1)
	mid := outer.Child()
	inner := k.Publish(mid, 2)
	leaf := inner.Child().Child()

	got, err := k.Read(leaf)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = k.Read(mid)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestReadWithoutPublisherFails(t *testing.T) {
	k := scope.NewKey[int]("test.count")
	root := scope.NewRoot()

	_, err := k.Read(root.Child().Child())
	require.Error(t, err)
	assert.ErrorIs(t, err, scope.ErrNoPublisher)
}

func TestDistinctChannelsDoNotCollide(t *testing.T) {
	counts := scope.NewKey[int]("test.count")
	labels := scope.NewKey[string]("test.label")
	root := scope.NewRoot()

	sc := labels.Publish(counts.Publish(root, 7), "hi")

	n, err := counts.Read(sc)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	l, err := labels.Read(sc)
	require.NoError(t, err)
	assert.Equal(t, "hi", l)
}

func TestUpdateIsVisibleToDescendants(t *testing.T) {
	k := scope.NewKey[int]("test.count")
	root := scope.NewRoot()

	published := k.Publish(root, 1)
	leaf := published.Child()

	k.Update(published, 5)
	got, err := k.Read(leaf)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "test.count", scope.NewKey[int]("test.count").Name())
}

func TestDisposeClearsSubtree(t *testing.T) {
	k := scope.NewKey[int]("test.count")
	root := scope.NewRoot()

	published := k.Publish(root, 1)
	leaf := published.Child()
	published.Dispose()

	_, err := k.Read(leaf)
	assert.ErrorIs(t, err, scope.ErrNoPublisher)
}
