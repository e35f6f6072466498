package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/internal/service"
	"github.com/rocketscienceinc/mini-uttt/internal/tictactoe"
)

const (
	commandUndo = "undo"
	commandQuit = "quit"
)

var ErrGameAbandoned = errors.New("game abandoned")

type PlayUseCase interface {
	Play(ctx context.Context, autoMoves []string) (entity.GameStatus, error)
}

type terminalDep interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	ShowGame(game *tictactoe.Game) error
	ShowResult(status entity.GameStatus) error
	Printf(format string, args ...any) error
}

type playUseCase struct {
	logger *slog.Logger

	gamePlay service.GamePlayService
	terminal terminalDep
}

func NewPlayUseCase(logger *slog.Logger, gamePlay service.GamePlayService, terminal terminalDep) PlayUseCase {
	return &playUseCase{
		logger:   logger.With("component", "play"),
		gamePlay: gamePlay,
		terminal: terminal,
	}
}

// Play - runs one game to its end. Auto moves are played first, then players are prompted.
// Typing "undo" takes back the last move and "quit" leaves the game.
func (that *playUseCase) Play(ctx context.Context, autoMoves []string) (entity.GameStatus, error) {
	game := that.gamePlay.Game()
	pending := append([]string(nil), autoMoves...)

	that.logger.Info("Game started", "auto_moves", len(pending))

	showBoard := true
	for !game.IsFinished() {
		if showBoard {
			if err := that.terminal.ShowGame(game); err != nil {
				return game.GameStatus(), err
			}
		}

		var input string
		if len(pending) > 0 {
			input, pending = pending[0], pending[1:]
			if err := that.terminal.Printf("%s%s\n", that.gamePlay.Prompt(), input); err != nil {
				return game.GameStatus(), err
			}
		} else {
			line, err := that.terminal.ReadLine(ctx, that.gamePlay.Prompt())
			if err != nil {
				return game.GameStatus(), fmt.Errorf("failed to read move: %w", err)
			}
			input = line
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case commandQuit:
			that.logger.Info("Game abandoned", "moves", game.MoveCount())
			return game.GameStatus(), ErrGameAbandoned
		case commandUndo:
			if err := that.gamePlay.Undo(); err != nil {
				showBoard = false
				if err = that.terminal.Printf("%v\n", err); err != nil {
					return game.GameStatus(), err
				}
				continue
			}
		default:
			if _, err := that.gamePlay.MakeTurn(input); err != nil {
				showBoard = false
				if err = that.terminal.Printf("%v\n", err); err != nil {
					return game.GameStatus(), err
				}
				continue
			}
		}

		showBoard = true
	}

	status := game.GameStatus()

	if err := that.terminal.ShowGame(game); err != nil {
		return status, err
	}

	if err := that.terminal.ShowResult(status); err != nil {
		return status, err
	}

	that.logger.Info("Game finished", "status", status, "moves", entity.FormatMoves(game.MovesMade()))

	return status, nil
}
