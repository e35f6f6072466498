package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/internal/tictactoe"
)

var (
	ErrEnumerationDefect = errors.New("enumeration reached an inconsistent state")
	ErrBoardNotOpen      = errors.New("opening board is not open")
)

// VisitFunc receives every finished game. Returning an error stops the enumeration.
type VisitFunc func(ctx context.Context, record entity.GameRecord) error

type EnumeratorService interface {
	Run(ctx context.Context, visit VisitFunc) (entity.Summary, error)
	Explore(ctx context.Context, game *tictactoe.Game, visit VisitFunc) (entity.Summary, error)
	Collect(ctx context.Context) ([]entity.GameRecord, entity.Summary, error)
}

type enumeratorService struct {
	logger *slog.Logger

	openingBoard entity.BoardID
	gameOptions  []tictactoe.Option
}

// exploreFrame - the moves available at one depth and the next one to try.
type exploreFrame struct {
	moves []entity.MoveID
	next  int
}

func NewEnumeratorService(logger *slog.Logger, openingBoard entity.BoardID, gameOptions ...tictactoe.Option) EnumeratorService {
	if openingBoard == entity.NoBoard {
		openingBoard = entity.Boards[0]
	}

	return &enumeratorService{
		logger:       logger.With("component", "enumerator"),
		openingBoard: openingBoard,
		gameOptions:  gameOptions,
	}
}

// Run - plays every cell of the opening board as the first move and explores each game tree.
func (that *enumeratorService) Run(ctx context.Context, visit VisitFunc) (entity.Summary, error) {
	var summary entity.Summary

	if !that.openingBoard.IsValid() {
		return summary, fmt.Errorf("%w: board %d", ErrBoardNotOpen, that.openingBoard)
	}

	game := tictactoe.New(that.gameOptions...)
	if !game.BoardStatus(that.openingBoard).IsOpen() {
		return summary, fmt.Errorf("%w: board %s", ErrBoardNotOpen, that.openingBoard)
	}

	for _, cell := range entity.Cells {
		opening := entity.NewMove(that.openingBoard, cell)
		log := that.logger.With("opening", opening.String())
		log.Info("Playing all games from opening move")

		game.Reset()
		if err := game.MakeMove(opening); err != nil {
			return summary, fmt.Errorf("%w: opening %s: %w", ErrEnumerationDefect, opening, err)
		}

		var (
			partial entity.Summary
			err     error
		)

		if game.IsFinished() {
			partial, err = that.finish(ctx, game, visit)
		} else {
			partial, err = that.Explore(ctx, game, visit)
		}

		summary.Merge(partial)
		if err != nil {
			return summary, err
		}

		log.Info("Opening explored", "games", partial.Total, "x_wins", partial.XWins, "o_wins", partial.OWins, "draws", partial.Draws)
	}

	return summary, nil
}

// Explore - visits every finished game reachable from the current position, depth first.
// The game is left in the position it was given in.
func (that *enumeratorService) Explore(ctx context.Context, game *tictactoe.Game, visit VisitFunc) (entity.Summary, error) {
	var summary entity.Summary

	if game.IsFinished() {
		return summary, nil
	}

	stack := []exploreFrame{{moves: game.AvailableMoves()}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return summary, that.unwind(game, len(stack)-1, err)
		}

		top := &stack[len(stack)-1]
		if top.next == len(top.moves) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				if err := game.UndoLastMove(); err != nil {
					return summary, fmt.Errorf("%w: undo: %w", ErrEnumerationDefect, err)
				}
			}
			continue
		}

		move := top.moves[top.next]
		top.next++

		if err := game.MakeMove(move); err != nil {
			return summary, that.unwind(game, len(stack)-1, fmt.Errorf("%w: move %s: %w", ErrEnumerationDefect, move, err))
		}

		if !game.IsFinished() {
			stack = append(stack, exploreFrame{moves: game.AvailableMoves()})
			continue
		}

		record := game.Record()
		summary.Add(record)

		if err := visit(ctx, record); err != nil {
			return summary, that.unwind(game, len(stack), fmt.Errorf("failed to visit game %s: %w", entity.FormatMoves(record.Moves), err))
		}

		if err := game.UndoLastMove(); err != nil {
			return summary, fmt.Errorf("%w: undo: %w", ErrEnumerationDefect, err)
		}
	}

	return summary, nil
}

// Collect - runs the enumeration and keeps every record in order.
func (that *enumeratorService) Collect(ctx context.Context) ([]entity.GameRecord, entity.Summary, error) {
	var records []entity.GameRecord

	summary, err := that.Run(ctx, func(_ context.Context, record entity.GameRecord) error {
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, summary, fmt.Errorf("failed to enumerate games: %w", err)
	}

	return records, summary, nil
}

// finish - reports a game that ended on its opening move.
func (that *enumeratorService) finish(ctx context.Context, game *tictactoe.Game, visit VisitFunc) (entity.Summary, error) {
	var summary entity.Summary

	record := game.Record()
	summary.Add(record)

	if err := visit(ctx, record); err != nil {
		return summary, fmt.Errorf("failed to visit game %s: %w", entity.FormatMoves(record.Moves), err)
	}

	return summary, nil
}

// unwind - takes back the moves made below the starting position before returning cause.
func (that *enumeratorService) unwind(game *tictactoe.Game, depth int, cause error) error {
	for range depth {
		if err := game.UndoLastMove(); err != nil {
			return errors.Join(cause, fmt.Errorf("%w: undo: %w", ErrEnumerationDefect, err))
		}
	}

	return cause
}
