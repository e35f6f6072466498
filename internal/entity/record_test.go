package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatuses(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.False(t, EmptyCell.IsPlayer())
	assert.Equal(t, " ", EmptyCell.Symbol())

	assert.True(t, StatusOpen.IsOpen())
	assert.True(t, StatusDrawn.IsDrawn())
	assert.Equal(t, PlayerO, BoardWonBy(PlayerO).Winner())
	assert.Equal(t, EmptyCell, StatusDrawn.Winner())
	assert.Equal(t, EmptyCell, StatusOpen.Winner())

	assert.False(t, GameInProgress.IsTerminal())
	assert.False(t, GameStatus("").IsTerminal())
	assert.True(t, GameDrawn.IsTerminal())
	assert.True(t, GameWonBy(PlayerX).IsTerminal())
	assert.Equal(t, PlayerX, GameWonBy(PlayerX).Winner())
	assert.Equal(t, EmptyCell, GameDrawn.Winner())
}

func TestSummary_Add(t *testing.T) {
	var summary Summary

	summary.Add(GameRecord{Moves: MustParseMoves("14", "41", "11"), Outcome: GameWonBy(PlayerX)})
	summary.Add(GameRecord{Moves: MustParseMoves("11", "12", "21", "13", "31", "41", "24", "44"), Outcome: GameWonBy(PlayerO)})
	summary.Add(GameRecord{Moves: MustParseMoves("11", "12", "14"), Outcome: GameDrawn})

	assert.Equal(t, Summary{Total: 3, XWins: 1, OWins: 1, Draws: 1, Shortest: 3, Longest: 8}, summary)
}

func TestSummary_Merge(t *testing.T) {
	t.Run("Combines totals and lengths", func(t *testing.T) {
		summary := Summary{RunID: "run", Total: 2, XWins: 2, Shortest: 7, Longest: 9}

		summary.Merge(Summary{RunID: "other", Total: 3, OWins: 1, Draws: 2, Shortest: 5, Longest: 16})

		assert.Equal(t, Summary{RunID: "run", Total: 5, XWins: 2, OWins: 1, Draws: 2, Shortest: 5, Longest: 16}, summary)
	})

	t.Run("Empty summary changes nothing", func(t *testing.T) {
		summary := Summary{Total: 1, Draws: 1, Shortest: 4, Longest: 4}

		summary.Merge(Summary{})

		assert.Equal(t, Summary{Total: 1, Draws: 1, Shortest: 4, Longest: 4}, summary)
	})

	t.Run("Into an empty summary", func(t *testing.T) {
		var summary Summary

		summary.Merge(Summary{Total: 1, Draws: 1, Shortest: 4, Longest: 4})

		assert.Equal(t, Summary{Total: 1, Draws: 1, Shortest: 4, Longest: 4}, summary)
	})
}
