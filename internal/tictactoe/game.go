package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/mini-uttt/internal/apperror"
	"github.com/rocketscienceinc/mini-uttt/internal/entity"
)

// State is everything a move can change.
type State struct {
	CurrentPlayer entity.Mark
	ForcedBoard   entity.BoardID
	MovesMade     []entity.MoveID
	Cells         entity.Grid
	BoardStatus   [entity.GridSize]entity.BoardStatus
	GameStatus    entity.GameStatus
}

// frame is the part of State restored by an undo; MovesMade is truncated instead.
type frame struct {
	currentPlayer entity.Mark
	forcedBoard   entity.BoardID
	cells         entity.Grid
	boardStatus   [entity.GridSize]entity.BoardStatus
	gameStatus    entity.GameStatus
}

// Game is the state machine of one match. It is not safe for concurrent use.
type Game struct {
	state   State
	history []frame

	closedBoards []entity.BoardID
}

type Option func(*Game)

// WithClosedBoards - the given boards start drawn, shrinking the playable area.
func WithClosedBoards(boards ...entity.BoardID) Option {
	return func(game *Game) {
		game.closedBoards = append(game.closedBoards, boards...)
	}
}

func New(opts ...Option) *Game {
	game := &Game{}
	for _, opt := range opts {
		opt(game)
	}

	game.Reset()

	return game
}

// Replay - builds a game by playing moves from the starting position.
func Replay(moves []entity.MoveID, opts ...Option) (*Game, error) {
	game := New(opts...)
	for i, move := range moves {
		if err := game.MakeMove(move); err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, move, err)
		}
	}

	return game, nil
}

// Reset - puts the game back to the starting position and forgets the history.
func (that *Game) Reset() {
	that.state = State{
		CurrentPlayer: entity.PlayerX,
		ForcedBoard:   entity.NoBoard,
		GameStatus:    entity.GameInProgress,
	}

	for i := range that.state.BoardStatus {
		that.state.BoardStatus[i] = entity.StatusOpen
	}

	for _, board := range that.closedBoards {
		if board.IsValid() {
			that.state.BoardStatus[board.Index()] = entity.StatusDrawn
		}
	}

	// with every board closed the game is drawn before the first move
	that.state.GameStatus = checkGameStatus(that.state.BoardStatus)

	that.history = that.history[:0]
}

// IsValidMove - checks the move against the current position without changing it.
func (that *Game) IsValidMove(move entity.MoveID) error {
	if !move.IsValid() {
		return fmt.Errorf("%w: board %d cell %d", apperror.ErrUnknownCell, move.Board, move.Cell)
	}

	if that.state.GameStatus.IsTerminal() {
		return fmt.Errorf("%w: %w", apperror.ErrNotPlayable, apperror.ErrGameFinished)
	}

	if !slices.Contains(that.AvailableBoards(), move.Board) {
		return fmt.Errorf("%w: board %s is not available", apperror.ErrNotPlayable, move.Board)
	}

	if mark := that.state.Cells.At(move); mark != entity.EmptyCell {
		return fmt.Errorf("%w: cell [%s] already has an [%s]", apperror.ErrNotPlayable, move, mark)
	}

	return nil
}

// MakeMove - plays the move for the current player.
// Nothing is changed when the move is rejected.
func (that *Game) MakeMove(move entity.MoveID) error {
	if err := that.IsValidMove(move); err != nil {
		return err
	}

	that.history = append(that.history, that.snapshot())

	player := that.state.CurrentPlayer
	that.state.Cells.Set(move, player)
	that.updateBoardStatus(move.Board)

	that.state.MovesMade = append(that.state.MovesMade, move)
	that.state.ForcedBoard = that.nextForcedBoard(move)
	that.state.CurrentPlayer = player.Opponent()
	that.state.GameStatus = checkGameStatus(that.state.BoardStatus)

	return nil
}

// UndoLastMove - restores the position from before the last accepted move.
func (that *Game) UndoLastMove() error {
	if len(that.history) == 0 {
		return apperror.ErrNoHistory
	}

	last := that.history[len(that.history)-1]
	that.history = that.history[:len(that.history)-1]

	that.state.CurrentPlayer = last.currentPlayer
	that.state.ForcedBoard = last.forcedBoard
	that.state.Cells = last.cells
	that.state.BoardStatus = last.boardStatus
	that.state.GameStatus = last.gameStatus
	that.state.MovesMade = that.state.MovesMade[:len(that.state.MovesMade)-1]

	return nil
}

// AvailableBoards - the forced board while it is open, otherwise every open board.
func (that *Game) AvailableBoards() []entity.BoardID {
	forced := that.state.ForcedBoard
	if forced != entity.NoBoard && that.state.BoardStatus[forced.Index()].IsOpen() {
		return []entity.BoardID{forced}
	}

	boards := make([]entity.BoardID, 0, entity.GridSize)
	for _, board := range entity.Boards {
		if that.state.BoardStatus[board.Index()].IsOpen() {
			boards = append(boards, board)
		}
	}

	return boards
}

// AvailableMoves - empty cells of the available boards, ordered by board then cell.
func (that *Game) AvailableMoves() []entity.MoveID {
	moves := make([]entity.MoveID, 0, entity.GridSize*entity.GridSize)
	for _, board := range that.AvailableBoards() {
		for _, cell := range entity.Cells {
			move := entity.NewMove(board, cell)
			if that.state.Cells.At(move) == entity.EmptyCell {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

// OpenCells - empty cells of one board.
func (that *Game) OpenCells(board entity.BoardID) []entity.CellID {
	if !board.IsValid() {
		return nil
	}

	cells := make([]entity.CellID, 0, entity.GridSize)
	for _, cell := range entity.Cells {
		if that.state.Cells.At(entity.NewMove(board, cell)) == entity.EmptyCell {
			cells = append(cells, cell)
		}
	}

	return cells
}

func (that *Game) CurrentPlayer() entity.Mark {
	return that.state.CurrentPlayer
}

// ForcedBoard - the board the current player must play in, if any.
func (that *Game) ForcedBoard() (entity.BoardID, bool) {
	return that.state.ForcedBoard, that.state.ForcedBoard != entity.NoBoard
}

// MovesMade - a copy of the move history.
func (that *Game) MovesMade() []entity.MoveID {
	return cloneMoves(that.state.MovesMade)
}

func (that *Game) MoveCount() int {
	return len(that.state.MovesMade)
}

func (that *Game) GameStatus() entity.GameStatus {
	return that.state.GameStatus
}

func (that *Game) IsFinished() bool {
	return that.state.GameStatus.IsTerminal()
}

// BoardStatus - the zero status for an unknown board, which is neither open, drawn nor won.
func (that *Game) BoardStatus(board entity.BoardID) entity.BoardStatus {
	if !board.IsValid() {
		return ""
	}

	return that.state.BoardStatus[board.Index()]
}

// Cell - EmptyCell for a move outside the board.
func (that *Game) Cell(move entity.MoveID) entity.Mark {
	if !move.IsValid() {
		return entity.EmptyCell
	}

	return that.state.Cells.At(move)
}

// State - a deep copy of the current state.
func (that *Game) State() State {
	state := that.state
	state.MovesMade = cloneMoves(that.state.MovesMade)

	return state
}

// Record - the finished game as an enumeration record.
func (that *Game) Record() entity.GameRecord {
	return entity.GameRecord{
		Moves:   that.MovesMade(),
		Outcome: that.state.GameStatus,
	}
}

func (that *Game) snapshot() frame {
	return frame{
		currentPlayer: that.state.CurrentPlayer,
		forcedBoard:   that.state.ForcedBoard,
		cells:         that.state.Cells,
		boardStatus:   that.state.BoardStatus,
		gameStatus:    that.state.GameStatus,
	}
}

// updateBoardStatus - a won board is claimed by the winner: all its cells take the winner's mark.
func (that *Game) updateBoardStatus(board entity.BoardID) {
	cells := that.state.Cells[board.Index()]

	if winner, won := SubBoardWinner(cells); won {
		that.state.BoardStatus[board.Index()] = entity.BoardWonBy(winner)
		that.state.Cells.Fill(board, winner)
		return
	}

	if SubBoardIsDrawn(cells) {
		that.state.BoardStatus[board.Index()] = entity.StatusDrawn
	}
}

func (that *Game) nextForcedBoard(move entity.MoveID) entity.BoardID {
	next := move.NextBoard()
	if that.state.BoardStatus[next.Index()].IsOpen() {
		return next
	}

	return entity.NoBoard
}

// cloneMoves - an empty history is always nil, so equal states compare equal.
func cloneMoves(moves []entity.MoveID) []entity.MoveID {
	if len(moves) == 0 {
		return nil
	}

	return slices.Clone(moves)
}
