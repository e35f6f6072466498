package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
)

const drawLabel = "DRAW"

// Reporter prints each enumerated game, optionally pausing between them.
type Reporter struct {
	writer io.Writer
	pace   time.Duration
}

func NewReporter(writer io.Writer, pace time.Duration) *Reporter {
	return &Reporter{
		writer: writer,
		pace:   pace,
	}
}

func (that *Reporter) Report(ctx context.Context, record entity.GameRecord) error {
	winner := drawLabel
	if mark := record.Winner(); mark != entity.EmptyCell {
		winner = string(mark)
	}

	if _, err := fmt.Fprintf(that.writer, "Game: winner=%s  moves=%s\n", winner, entity.FormatMoves(record.Moves)); err != nil {
		return fmt.Errorf("failed to report game: %w", err)
	}

	if that.pace <= 0 {
		return nil
	}

	timer := time.NewTimer(that.pace)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Summary - prints the totals of a finished run.
func (that *Reporter) Summary(summary entity.Summary) error {
	_, err := fmt.Fprintf(that.writer,
		"Games: %d  X wins: %d  O wins: %d  draws: %d  shortest: %d  longest: %d\n",
		summary.Total, summary.XWins, summary.OWins, summary.Draws, summary.Shortest, summary.Longest,
	)
	if err != nil {
		return fmt.Errorf("failed to report summary: %w", err)
	}

	return nil
}
