package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mini-uttt/internal/apperror"
	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/internal/tictactoe"
)

func TestGamePlayService_MakeTurn(t *testing.T) {
	t.Run("Full notation", func(t *testing.T) {
		// Given: a new session
		session := NewGamePlayService(newTestLogger(), tictactoe.New())

		// When: X types a two-symbol move
		move, err := session.MakeTurn("11")

		// Then: the move is played
		require.NoError(t, err)
		assert.Equal(t, entity.NewMove(1, 1), move)
		assert.Equal(t, entity.PlayerX, session.Game().Cell(move))
	})

	t.Run("Single symbol uses the forced board", func(t *testing.T) {
		// Given: X played 12, so O is forced into board 2
		session := NewGamePlayService(newTestLogger(), tictactoe.New())
		_, err := session.MakeTurn("12")
		require.NoError(t, err)

		// When: O types only the cell
		move, err := session.MakeTurn(" 3 ")

		// Then: the cell is played in board 2
		require.NoError(t, err)
		assert.Equal(t, entity.NewMove(2, 3), move)
		assert.Equal(t, entity.PlayerO, session.Game().Cell(move))
	})

	t.Run("Single symbol without a forced board", func(t *testing.T) {
		session := NewGamePlayService(newTestLogger(), tictactoe.New())

		_, err := session.MakeTurn("3")

		require.ErrorIs(t, err, apperror.ErrUnknownCell)
	})

	t.Run("Illegal move", func(t *testing.T) {
		session := NewGamePlayService(newTestLogger(), tictactoe.New())
		_, err := session.MakeTurn("11")
		require.NoError(t, err)

		_, err = session.MakeTurn("21")

		require.ErrorIs(t, err, apperror.ErrNotPlayable)
		assert.Equal(t, 1, session.Game().MoveCount())
	})
}

func TestGamePlayService_Undo(t *testing.T) {
	session := NewGamePlayService(newTestLogger(), tictactoe.New())

	require.ErrorIs(t, session.Undo(), apperror.ErrNoHistory)

	_, err := session.MakeTurn("24")
	require.NoError(t, err)
	require.NoError(t, session.Undo())

	assert.Equal(t, tictactoe.New().State(), session.Game().State())
}

func TestGamePlayService_Prompt(t *testing.T) {
	t.Run("Free choice lists the open boards", func(t *testing.T) {
		session := NewGamePlayService(newTestLogger(), tictactoe.New())

		assert.Equal(t, "Player [X], input move in board=[1234]: ", session.Prompt())
	})

	t.Run("Forced board lists the open cells", func(t *testing.T) {
		// Given: X played 11
		session := NewGamePlayService(newTestLogger(), tictactoe.New())
		_, err := session.MakeTurn("11")
		require.NoError(t, err)

		// Then: O is asked for a cell of board 1
		assert.Equal(t, "Player [O], input move in board=[1] cells=(234): ", session.Prompt())
	})

	t.Run("Closed target board", func(t *testing.T) {
		// Given: board 1 was won by X
		session := NewGamePlayService(newTestLogger(), tictactoe.New())
		for _, input := range []string{"14", "41", "11"} {
			_, err := session.MakeTurn(input)
			require.NoError(t, err)
		}

		assert.Equal(t, "Player [O], input move in board=[234]: ", session.Prompt())
	})
}
