package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, n int, opts ...domain.Option) *domain.State {
	t.Helper()
	s, err := domain.NewState(opts...)
	require.NoError(t, err)
	require.NoError(t, s.Initialize(n))
	return s
}

func TestNewState_Defaults(t *testing.T) {
	s, err := domain.NewState()
	require.NoError(t, err)

	assert.Equal(t, domain.PhaseSetup, s.Phase())
	assert.Equal(t, domain.DefaultMaxDisks, s.MaxDisks())
	assert.Equal(t, 0, s.Disks())
	assert.False(t, s.IsWon())
	for _, id := range domain.Rods() {
		assert.Empty(t, s.Rod(id))
	}
}

func TestNewState_InvalidCeiling(t *testing.T) {
	for _, max := range []int{0, 2, domain.HardMaxDisks + 1} {
		_, err := domain.NewState(domain.WithMaxDisks(max))
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration, "max=%d", max)
	}
}

func TestInitialize(t *testing.T) {
	s := newGame(t, 3)

	assert.Equal(t, []int{3, 2, 1}, s.Rod(domain.RodA))
	assert.Empty(t, s.Rod(domain.RodB))
	assert.Empty(t, s.Rod(domain.RodC))
	assert.Equal(t, 3, s.Disks())
	assert.Equal(t, 0, s.Moves())
	assert.Equal(t, domain.PhasePlaying, s.Phase())
	assert.NoError(t, s.Verify())
}

func TestInitialize_InvalidConfiguration(t *testing.T) {
	t.Run("Uninitialized", func(t *testing.T) {
		s, err := domain.NewState()
		require.NoError(t, err)

		for _, n := range []int{2, 7, 0, -1} {
			err := s.Initialize(n)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration, "n=%d", n)
		}
		assert.Equal(t, domain.PhaseSetup, s.Phase())
		assert.Empty(t, s.Rod(domain.RodA))
	})

	t.Run("Game In Progress", func(t *testing.T) {
		s := newGame(t, 4)
		require.NoError(t, s.Move(domain.RodA, domain.RodB))
		before := s.Snapshot()

		assert.ErrorIs(t, s.Initialize(2), domain.ErrInvalidConfiguration)
		assert.ErrorIs(t, s.Initialize(7), domain.ErrInvalidConfiguration)
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("Custom Ceiling", func(t *testing.T) {
		s, err := domain.NewState(domain.WithMaxDisks(8))
		require.NoError(t, err)
		assert.NoError(t, s.Initialize(8))
		assert.ErrorIs(t, s.Initialize(9), domain.ErrInvalidConfiguration)
	})
}

func TestInitialize_Resets(t *testing.T) {
	s := newGame(t, 5)
	require.NoError(t, s.Move(domain.RodA, domain.RodC))

	require.NoError(t, s.Initialize(3))
	assert.Equal(t, []int{3, 2, 1}, s.Rod(domain.RodA))
	assert.Empty(t, s.Rod(domain.RodC))
	assert.Equal(t, 0, s.Moves())
}

func TestTopDisk(t *testing.T) {
	s := newGame(t, 3)

	top, ok := s.TopDisk(domain.RodA)
	assert.True(t, ok)
	assert.Equal(t, 1, top)

	_, ok = s.TopDisk(domain.RodB)
	assert.False(t, ok)

	_, ok = s.TopDisk(domain.RodID(7))
	assert.False(t, ok)
}

func TestCanMove(t *testing.T) {
	// A:[3,2] B:[1] C:[]
	s := newGame(t, 3)
	require.NoError(t, s.Move(domain.RodA, domain.RodB))

	tests := []struct {
		name     string
		from, to domain.RodID
		want     bool
	}{
		{"Smaller Onto Larger", domain.RodB, domain.RodA, true},
		{"Larger Onto Smaller", domain.RodA, domain.RodB, false},
		{"Onto Empty Rod", domain.RodA, domain.RodC, true},
		{"Small Onto Empty Rod", domain.RodB, domain.RodC, true},
		{"Empty Source", domain.RodC, domain.RodA, false},
		{"Same Rod", domain.RodA, domain.RodA, false},
		{"Same Rod Single Disk", domain.RodB, domain.RodB, false},
		{"Same Empty Rod", domain.RodC, domain.RodC, false},
		{"Source Out Of Range", domain.RodID(3), domain.RodA, false},
		{"Destination Out Of Range", domain.RodA, domain.RodID(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CanMove(tt.from, tt.to))
		})
	}
}

func TestCanMove_RejectsOversizePlacement(t *testing.T) {
	// Exhaustively walk every reachable pair of tops on a 4-disk board.
	s := newGame(t, 4)
	require.NoError(t, s.Move(domain.RodA, domain.RodB)) // A:[4,3,2] B:[1]
	require.NoError(t, s.Move(domain.RodA, domain.RodC)) // A:[4,3] C:[2]

	for _, from := range domain.Rods() {
		for _, to := range domain.Rods() {
			fromTop, okFrom := s.TopDisk(from)
			toTop, okTo := s.TopDisk(to)
			if okFrom && okTo && fromTop >= toTop {
				assert.False(t, s.CanMove(from, to), "%s(%d) -> %s(%d)", from, fromTop, to, toTop)
			}
		}
	}
}

func TestMoveDisk(t *testing.T) {
	t.Run("Transfers Top Disk", func(t *testing.T) {
		s := newGame(t, 3)
		assert.True(t, s.MoveDisk(domain.RodA, domain.RodC))
		assert.Equal(t, []int{3, 2}, s.Rod(domain.RodA))
		assert.Equal(t, []int{1}, s.Rod(domain.RodC))
		assert.Equal(t, 1, s.Moves())
	})

	t.Run("Empty Source Is No-op", func(t *testing.T) {
		s := newGame(t, 3)
		before := s.Snapshot()
		assert.False(t, s.MoveDisk(domain.RodB, domain.RodA))
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("Invalid Rod Is No-op", func(t *testing.T) {
		s := newGame(t, 3)
		before := s.Snapshot()
		assert.False(t, s.MoveDisk(domain.RodA, domain.RodID(9)))
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("Does Not Enforce Ordering", func(t *testing.T) {
		s := newGame(t, 3)
		require.True(t, s.MoveDisk(domain.RodA, domain.RodB)) // B:[1]
		require.True(t, s.MoveDisk(domain.RodA, domain.RodB)) // B:[1,2]
		assert.Equal(t, []int{1, 2}, s.Rod(domain.RodB))
		assert.Error(t, s.Verify())
	})
}

func TestMove_Rejections(t *testing.T) {
	s := newGame(t, 3)
	require.NoError(t, s.Move(domain.RodA, domain.RodB)) // A:[3,2] B:[1]
	before := s.Snapshot()

	tests := []struct {
		name     string
		from, to domain.RodID
		wantErr  error
	}{
		{"Larger Onto Smaller", domain.RodA, domain.RodB, domain.ErrIllegalMove},
		{"Empty Source", domain.RodC, domain.RodA, domain.ErrEmptySource},
		{"Same Rod", domain.RodB, domain.RodB, domain.ErrIllegalMove},
		{"Unknown Rod", domain.RodA, domain.RodID(5), domain.ErrUnrecognizedRod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Move(tt.from, tt.to)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, s.Snapshot())
		})
	}
}

func TestMove_EmptySourceIsIllegal(t *testing.T) {
	s := newGame(t, 3)
	err := s.Move(domain.RodB, domain.RodC)
	assert.True(t, errors.Is(err, domain.ErrEmptySource))
	assert.True(t, errors.Is(err, domain.ErrIllegalMove))
}

func TestMove_OutsidePlayingPhase(t *testing.T) {
	s, err := domain.NewState()
	require.NoError(t, err)
	assert.ErrorIs(t, s.Move(domain.RodA, domain.RodB), domain.ErrNotPlaying)
}

func TestEndToEnd_ThreeDisks(t *testing.T) {
	s := newGame(t, 3)

	steps := []struct {
		from, to domain.RodID
		a, b, c  []int
	}{
		{domain.RodA, domain.RodC, []int{3, 2}, []int{}, []int{1}},
		{domain.RodA, domain.RodB, []int{3}, []int{2}, []int{1}},
		{domain.RodC, domain.RodB, []int{3}, []int{2, 1}, []int{}},
		{domain.RodA, domain.RodC, []int{}, []int{2, 1}, []int{3}},
		{domain.RodB, domain.RodA, []int{1}, []int{2}, []int{3}},
		{domain.RodB, domain.RodC, []int{1}, []int{}, []int{3, 2}},
		{domain.RodA, domain.RodC, []int{}, []int{}, []int{3, 2, 1}},
	}

	for i, step := range steps {
		require.True(t, s.CanMove(step.from, step.to), "step %d", i+1)
		require.NoError(t, s.Move(step.from, step.to), "step %d", i+1)

		assert.Equal(t, step.a, s.Rod(domain.RodA), "step %d rod A", i+1)
		assert.Equal(t, step.b, s.Rod(domain.RodB), "step %d rod B", i+1)
		assert.Equal(t, step.c, s.Rod(domain.RodC), "step %d rod C", i+1)
		assert.NoError(t, s.Verify(), "step %d", i+1)

		if i < len(steps)-1 {
			assert.False(t, s.IsWon(), "step %d", i+1)
		}
	}

	assert.True(t, s.IsWon())
	assert.Equal(t, domain.PhaseWon, s.Phase())
	assert.Equal(t, 7, s.Moves())
	assert.ErrorIs(t, s.Move(domain.RodC, domain.RodA), domain.ErrNotPlaying)
}

// solve moves n disks recursively through the checked entry point.
func solve(t *testing.T, s *domain.State, n int, from, to, spare domain.RodID) {
	t.Helper()
	if n == 0 {
		return
	}
	solve(t, s, n-1, from, spare, to)
	require.NoError(t, s.Move(from, to))
	require.NoError(t, s.Verify())
	solve(t, s, n-1, spare, to, from)
}

func TestInvariants_AllDiskCounts(t *testing.T) {
	for n := domain.MinDisks; n <= domain.DefaultMaxDisks; n++ {
		s := newGame(t, n)
		solve(t, s, n, domain.RodA, domain.RodC, domain.RodB)

		assert.True(t, s.IsWon(), "n=%d", n)
		assert.Equal(t, 1<<n-1, s.Moves(), "n=%d", n)
	}
}

func TestIsWon(t *testing.T) {
	t.Run("All Disks On Rod B", func(t *testing.T) {
		s := newGame(t, 3)
		solve(t, s, 3, domain.RodA, domain.RodB, domain.RodC)
		assert.False(t, s.IsWon())
		assert.Equal(t, domain.PhasePlaying, s.Phase())
	})

	t.Run("Misordered Rod C", func(t *testing.T) {
		s := newGame(t, 3)
		require.True(t, s.MoveDisk(domain.RodA, domain.RodC)) // C:[1]
		require.True(t, s.MoveDisk(domain.RodA, domain.RodC)) // C:[1,2]
		require.True(t, s.MoveDisk(domain.RodA, domain.RodC)) // C:[1,2,3]
		assert.False(t, s.IsWon())
	})
}

func TestPhaseTransitions(t *testing.T) {
	t.Run("Abandon", func(t *testing.T) {
		s := newGame(t, 3)
		require.NoError(t, s.Move(domain.RodA, domain.RodC))

		require.NoError(t, s.Abandon())
		assert.Equal(t, domain.PhaseSetup, s.Phase())
		assert.Equal(t, 0, s.Disks())
		assert.Empty(t, s.Rod(domain.RodA))
		assert.ErrorIs(t, s.Abandon(), domain.ErrNotPlaying)
	})

	t.Run("Acknowledge", func(t *testing.T) {
		s := newGame(t, 3)
		assert.ErrorIs(t, s.Acknowledge(), domain.ErrNotWon)

		solve(t, s, 3, domain.RodA, domain.RodC, domain.RodB)
		require.NoError(t, s.Acknowledge())
		assert.Equal(t, domain.PhaseSetup, s.Phase())
		assert.Empty(t, s.Rod(domain.RodC))
	})

	t.Run("Unchecked Move Leaves Won Phase", func(t *testing.T) {
		s := newGame(t, 3)
		solve(t, s, 3, domain.RodA, domain.RodC, domain.RodB)
		require.Equal(t, domain.PhaseWon, s.Phase())

		require.True(t, s.MoveDisk(domain.RodC, domain.RodA))
		assert.Equal(t, domain.PhasePlaying, s.Phase())
	})
}

func TestHooks(t *testing.T) {
	var events []domain.EventType
	var rejected error
	hooks := domain.LifecycleHooks{
		OnInitialize: func(e *domain.GameEvent) { events = append(events, e.Type) },
		OnMove:       func(e *domain.MoveEvent) { events = append(events, e.Type) },
		OnReject: func(e *domain.MoveEvent) {
			events = append(events, e.Type)
			rejected = e.Err
		},
		OnWin:     func(e *domain.GameEvent) { events = append(events, e.Type) },
		OnAbandon: func(e *domain.GameEvent) { events = append(events, e.Type) },
	}

	s := newGame(t, 3, domain.WithHooks(hooks))
	require.Error(t, s.Move(domain.RodB, domain.RodA))
	solve(t, s, 3, domain.RodA, domain.RodC, domain.RodB)

	require.NoError(t, s.Initialize(3))
	require.NoError(t, s.Abandon())

	want := []domain.EventType{domain.EventInitialize, domain.EventReject}
	for i := 0; i < 7; i++ {
		want = append(want, domain.EventMove)
	}
	want = append(want, domain.EventWin, domain.EventInitialize, domain.EventAbandon)

	assert.Equal(t, want, events)
	assert.ErrorIs(t, rejected, domain.ErrEmptySource)
}

func TestComposeHooks(t *testing.T) {
	var first, second int
	hooks := domain.ComposeHooks(
		domain.LifecycleHooks{OnMove: func(*domain.MoveEvent) { first++ }},
		domain.LifecycleHooks{OnMove: func(*domain.MoveEvent) { second++ }},
		domain.LifecycleHooks{},
	)

	s := newGame(t, 3, domain.WithHooks(hooks))
	require.NoError(t, s.Move(domain.RodA, domain.RodC))

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
