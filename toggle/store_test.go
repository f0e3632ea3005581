package toggle_test

import (
	"testing"

	"github.com/delaneyj/toggleparty/toggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	assert.False(t, toggle.New(nil).On())
	assert.False(t, toggle.New(&toggle.Config{}).On())
	assert.True(t, toggle.New(&toggle.Config{InitialOn: true}).On())
}

func TestToggleInvolution(t *testing.T) {
	var seen []bool
	s := toggle.New(&toggle.Config{
		OnToggle: func(on bool) { seen = append(seen, on) },
	})

	s.Toggle()
	s.Toggle()

	assert.False(t, s.On())
	assert.Equal(t, []bool{true, false}, seen)
}

func TestResetReturnsToConstructionValue(t *testing.T) {
	var resetSeen []bool
	s := toggle.New(&toggle.Config{
		InitialOn: true,
		OnReset:   func(on bool) { resetSeen = append(resetSeen, on) },
	})

	s.Toggle()
	require.False(t, s.On())

	s.Reset()
	assert.True(t, s.On())
	assert.Equal(t, []bool{true}, resetSeen)
}

func TestCallbacksObserveCommittedValue(t *testing.T) {
	var s *toggle.Store
	s = toggle.New(&toggle.Config{
		OnToggle: func(on bool) {
			assert.Equal(t, s.On(), on)
		},
		OnReset: func(on bool) {
			assert.Equal(t, s.On(), on)
		},
	})

	s.Toggle()
	s.Toggle()
	s.Toggle()
	s.Reset()
}

func TestReentrantToggleSeesCausalSuccessor(t *testing.T) {
	var seen []bool
	var s *toggle.Store
	nested := false
	s = toggle.New(&toggle.Config{
		OnToggle: func(on bool) {
			seen = append(seen, on)
			if !nested {
				nested = true
				s.Toggle()
			}
		},
	})

	s.Toggle()

	// first commit flips false->true, the nested call flips true->false
	assert.Equal(t, []bool{true, false}, seen)
	assert.False(t, s.On())
}

func TestWatchNotifiesAfterCommit(t *testing.T) {
	s := toggle.New(nil)

	var seen []bool
	stop := s.Watch(func(snap toggle.Snapshot) {
		seen = append(seen, snap.On)
		assert.Equal(t, s.On(), snap.On)
	})

	s.Toggle()
	s.Toggle()
	assert.Equal(t, []bool{true, false}, seen)

	stop()
	s.Toggle()
	assert.Equal(t, []bool{true, false}, seen)
}

func TestSnapshotActionsAreBound(t *testing.T) {
	s := toggle.New(&toggle.Config{InitialOn: true})
	snap := s.Snapshot()

	snap.Toggle()
	assert.False(t, s.On())

	snap.Reset()
	assert.True(t, s.On())

	// snapshot value stays at what it was when taken
	assert.True(t, snap.On)
}

func TestVersionIncrementsPerCommit(t *testing.T) {
	s := toggle.New(nil)
	require.EqualValues(t, 0, s.Version())

	s.Toggle()
	s.Reset()
	assert.EqualValues(t, 2, s.Version())
}
