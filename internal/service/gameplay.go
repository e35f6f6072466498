package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/internal/tictactoe"
)

type GamePlayService interface {
	MakeTurn(input string) (entity.MoveID, error)
	Undo() error
	Prompt() string
	Game() *tictactoe.Game
}

type gamePlayService struct {
	logger *slog.Logger

	game *tictactoe.Game
}

func NewGamePlayService(logger *slog.Logger, game *tictactoe.Game) GamePlayService {
	return &gamePlayService{
		logger: logger.With("component", "gameplay"),
		game:   game,
	}
}

// MakeTurn - plays a move typed by a player. A single symbol is a cell of the forced board.
func (that *gamePlayService) MakeTurn(input string) (entity.MoveID, error) {
	notation := strings.TrimSpace(input)
	if forced, ok := that.game.ForcedBoard(); ok && len(notation) == 1 {
		notation = forced.String() + notation
	}

	move, err := entity.ParseMove(notation)
	if err != nil {
		return entity.MoveID{}, fmt.Errorf("invalid move: %w", err)
	}

	player := that.game.CurrentPlayer()
	if err = that.game.MakeMove(move); err != nil {
		return move, fmt.Errorf("invalid move: %w", err)
	}

	that.logger.Debug("Move made", "player", player, "move", move.String(), "status", that.game.GameStatus())

	return move, nil
}

func (that *gamePlayService) Undo() error {
	if err := that.game.UndoLastMove(); err != nil {
		return fmt.Errorf("failed to undo move: %w", err)
	}

	return nil
}

// Prompt - asks the current player for a move, listing the allowed boards or cells.
func (that *gamePlayService) Prompt() string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Player [%s], input move in board=[", that.game.CurrentPlayer())

	if forced, ok := that.game.ForcedBoard(); ok {
		prompt.WriteString(forced.String())
		prompt.WriteString("] cells=(")
		for _, cell := range that.game.OpenCells(forced) {
			prompt.WriteString(cell.String())
		}
		prompt.WriteString(")")
	} else {
		for _, board := range that.game.AvailableBoards() {
			prompt.WriteString(board.String())
		}
		prompt.WriteString("]")
	}

	prompt.WriteString(": ")

	return prompt.String()
}

func (that *gamePlayService) Game() *tictactoe.Game {
	return that.game
}
