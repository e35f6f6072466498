package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/internal/tictactoe"
)

var ErrInputClosed = errors.New("input closed")

// Console is a line-based terminal for one player pair.
type Console struct {
	scanner *bufio.Scanner
	writer  io.Writer
	painter *Painter
}

// New - color picks the terminal's colour profile, otherwise plain ASCII is written.
func New(reader io.Reader, writer io.Writer, color bool) *Console {
	profile := termenv.Ascii
	if color {
		profile = termenv.EnvColorProfile()
	}

	return &Console{
		scanner: bufio.NewScanner(reader),
		writer:  writer,
		painter: NewPainter(termenv.NewOutput(writer, termenv.WithProfile(profile))),
	}
}

// ReadLine - prints the prompt and waits for one line of input.
func (that *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := io.WriteString(that.writer, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}

	return strings.TrimSpace(that.scanner.Text()), nil
}

// ShowGame - prints the board followed by the move history.
func (that *Console) ShowGame(game *tictactoe.Game) error {
	moves := game.MovesMade()

	return that.Printf("%s[%d] moves made: %s\n", that.painter.RenderBoard(game), len(moves), entity.FormatMoves(moves))
}

// ShowResult - prints how the game ended.
func (that *Console) ShowResult(status entity.GameStatus) error {
	if winner := status.Winner(); winner != entity.EmptyCell {
		return that.Printf("Player [%s] won!\n", that.painter.Mark(winner))
	}

	return that.Printf("Game is a draw.\n")
}

func (that *Console) Printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.writer, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
