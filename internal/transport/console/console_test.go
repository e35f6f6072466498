package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/internal/tictactoe"
)

func TestPainter_RenderBoard(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		var out bytes.Buffer
		terminal := New(strings.NewReader(""), &out, false)

		board := terminal.painter.RenderBoard(tictactoe.New())

		assert.Equal(t, "  |  \n  |  \n--+--\n  |  \n  |  \n", board)
	})

	t.Run("Claimed and open boards", func(t *testing.T) {
		// Given: X claimed board 1 and O played 41
		game, err := tictactoe.Replay(entity.MustParseMoves("14", "41", "11"))
		require.NoError(t, err)

		var out bytes.Buffer
		terminal := New(strings.NewReader(""), &out, false)

		// When: the board is drawn
		board := terminal.painter.RenderBoard(game)

		// Then: board 1 is all X and cell 1 of board 4 shows O
		assert.Equal(t, "XX|  \nXX|  \n--+--\n  |O \n  |  \n", board)
	})
}

func TestConsole_ReadLine(t *testing.T) {
	t.Run("Reads trimmed lines", func(t *testing.T) {
		var out bytes.Buffer
		terminal := New(strings.NewReader(" 11 \n4\n"), &out, false)

		first, err := terminal.ReadLine(context.Background(), "> ")
		require.NoError(t, err)
		second, err := terminal.ReadLine(context.Background(), "> ")
		require.NoError(t, err)

		assert.Equal(t, "11", first)
		assert.Equal(t, "4", second)
		assert.Equal(t, "> > ", out.String())
	})

	t.Run("End of input", func(t *testing.T) {
		var out bytes.Buffer
		terminal := New(strings.NewReader(""), &out, false)

		_, err := terminal.ReadLine(context.Background(), "> ")

		require.ErrorIs(t, err, ErrInputClosed)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer
		terminal := New(strings.NewReader("11\n"), &out, false)

		_, err := terminal.ReadLine(ctx, "> ")

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, out.String())
	})
}

func TestConsole_ShowGame(t *testing.T) {
	game, err := tictactoe.Replay(entity.MustParseMoves("11", "14"))
	require.NoError(t, err)

	var out bytes.Buffer
	terminal := New(strings.NewReader(""), &out, false)

	require.NoError(t, terminal.ShowGame(game))
	require.NoError(t, terminal.ShowResult(entity.GameWonBy(entity.PlayerO)))
	require.NoError(t, terminal.ShowResult(entity.GameDrawn))

	assert.Equal(t,
		"X |  \n O|  \n--+--\n  |  \n  |  \n[2] moves made: [11 14]\nPlayer [O] won!\nGame is a draw.\n",
		out.String(),
	)
}

func TestReporter_Report(t *testing.T) {
	t.Run("Prints the game", func(t *testing.T) {
		var out bytes.Buffer
		reporter := NewReporter(&out, 0)

		err := reporter.Report(context.Background(), entity.GameRecord{
			Moves:   entity.MustParseMoves("12", "21", "13", "31", "41", "24", "44"),
			Outcome: entity.GameWonBy(entity.PlayerX),
		})
		require.NoError(t, err)

		err = reporter.Report(context.Background(), entity.GameRecord{
			Moves:   entity.MustParseMoves("11", "12", "14"),
			Outcome: entity.GameDrawn,
		})
		require.NoError(t, err)

		assert.Equal(t,
			"Game: winner=X  moves=[12 21 13 31 41 24 44]\nGame: winner=DRAW  moves=[11 12 14]\n",
			out.String(),
		)
	})

	t.Run("Pacing stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer
		reporter := NewReporter(&out, time.Hour)

		err := reporter.Report(ctx, entity.GameRecord{Outcome: entity.GameDrawn})

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Summary", func(t *testing.T) {
		var out bytes.Buffer
		reporter := NewReporter(&out, 0)

		err := reporter.Summary(entity.Summary{Total: 24, Draws: 24, Shortest: 3, Longest: 4})
		require.NoError(t, err)

		assert.Equal(t, "Games: 24  X wins: 0  O wins: 0  draws: 24  shortest: 3  longest: 4\n", out.String())
	})
}
