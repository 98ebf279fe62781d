package hanoi_test

import (
	"testing"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidMaxDisks(t *testing.T) {
	_, err := hanoi.New(hanoi.WithMaxDisks(2))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestGame_StartBounds(t *testing.T) {
	game, err := hanoi.New(hanoi.WithMaxDisks(5))
	require.NoError(t, err)

	assert.ErrorIs(t, game.Start(6), domain.ErrInvalidConfiguration)
	assert.Equal(t, domain.PhaseSetup, game.Snapshot().Phase)

	require.NoError(t, game.Start(5))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, game.Snapshot().Rod(domain.RodA))
}

func TestGame_MoveRejections(t *testing.T) {
	game, err := hanoi.New()
	require.NoError(t, err)

	assert.ErrorIs(t, game.Move("A", "B"), domain.ErrNotPlaying)

	require.NoError(t, game.Start(3))
	require.NoError(t, game.Move("a", "b"))
	assert.ErrorIs(t, game.Move("A", "B"), domain.ErrIllegalMove)
	assert.ErrorIs(t, game.Move("X", "B"), domain.ErrUnrecognizedRod)
	assert.Equal(t, 1, game.State().Moves())
	assert.NoError(t, game.State().Verify())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, hanoi.Version)
}
