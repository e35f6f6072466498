package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/mini-uttt/internal/apperror"
)

// BoardID identifies one of the four sub-boards, and also a position on the meta-board.
type BoardID uint8

// CellID identifies one of the four cells inside a sub-board.
type CellID uint8

// NoBoard means the player to move may choose any open board.
const NoBoard BoardID = 0

const GridSize = 4

var (
	Boards = [GridSize]BoardID{1, 2, 3, 4}
	Cells  = [GridSize]CellID{1, 2, 3, 4}

	// Diagonals are the only winning lines of a 2x2 grid, as zero-based positions.
	Diagonals = [2][2]int{
		{0, 3},
		{1, 2},
	}
)

func (that BoardID) IsValid() bool {
	return that >= 1 && that <= GridSize
}

// Index - zero-based position of the board, only meaningful for valid ids.
func (that BoardID) Index() int {
	return int(that) - 1
}

func (that BoardID) String() string {
	if that == NoBoard {
		return "-"
	}

	return fmt.Sprintf("%d", uint8(that))
}

func (that CellID) IsValid() bool {
	return that >= 1 && that <= GridSize
}

func (that CellID) Index() int {
	return int(that) - 1
}

func (that CellID) String() string {
	return fmt.Sprintf("%d", uint8(that))
}

// MoveID addresses one cell of the whole board.
type MoveID struct {
	Board BoardID `json:"board"`
	Cell  CellID  `json:"cell"`
}

func NewMove(board BoardID, cell CellID) MoveID {
	return MoveID{Board: board, Cell: cell}
}

func (that MoveID) IsValid() bool {
	return that.Board.IsValid() && that.Cell.IsValid()
}

// NextBoard - the meta-board has the same shape as a sub-board, so the cell played names the next board.
func (that MoveID) NextBoard() BoardID {
	return BoardID(that.Cell)
}

// String - two-symbol notation, board first: "24" is board 2, cell 4.
func (that MoveID) String() string {
	return that.Board.String() + that.Cell.String()
}

// MarshalText keeps the notation form in JSON payloads.
func (that MoveID) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: board %d cell %d", apperror.ErrUnknownCell, that.Board, that.Cell)
	}

	return []byte(that.String()), nil
}

func (that *MoveID) UnmarshalText(text []byte) error {
	move, err := ParseMove(string(text))
	if err != nil {
		return err
	}

	*that = move

	return nil
}

// ParseMove - parses the two-symbol notation.
func ParseMove(notation string) (MoveID, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) != 2 {
		return MoveID{}, fmt.Errorf("%w: [%s]", apperror.ErrUnknownCell, notation)
	}

	move := MoveID{
		Board: BoardID(notation[0] - '0'),
		Cell:  CellID(notation[1] - '0'),
	}

	if !move.IsValid() {
		return MoveID{}, fmt.Errorf("%w: [%s]", apperror.ErrUnknownCell, notation)
	}

	return move, nil
}

// MustParseMoves - parses a list of moves, panics on the first bad one.
func MustParseMoves(notations ...string) []MoveID {
	moves := make([]MoveID, 0, len(notations))
	for _, notation := range notations {
		move, err := ParseMove(notation)
		if err != nil {
			panic(err)
		}

		moves = append(moves, move)
	}

	return moves
}

// FormatMoves - renders moves as "[11 14 41]".
func FormatMoves(moves []MoveID) string {
	parts := make([]string, 0, len(moves))
	for _, move := range moves {
		parts = append(parts, move.String())
	}

	return "[" + strings.Join(parts, " ") + "]"
}
