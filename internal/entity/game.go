package entity

const (
	PlayerX = Mark("X")
	PlayerO = Mark("O")

	EmptyCell = Mark("")
)

const (
	StatusOpen  = BoardStatus("open")
	StatusDrawn = BoardStatus("draw")
)

const (
	GameInProgress = GameStatus("ongoing")
	GameDrawn      = GameStatus("draw")
)

// Mark is the content of a cell: empty, or claimed by a player.
type Mark string

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Symbol - single character used to draw the mark on a board.
func (that Mark) Symbol() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}

// BoardStatus is the outcome of a sub-board: open, won by a player, or drawn.
type BoardStatus string

func BoardWonBy(mark Mark) BoardStatus {
	return BoardStatus(mark)
}

func (that BoardStatus) IsOpen() bool {
	return that == StatusOpen
}

func (that BoardStatus) IsDrawn() bool {
	return that == StatusDrawn
}

// Winner - the mark owning the board, EmptyCell when it is not won.
func (that BoardStatus) Winner() Mark {
	if mark := Mark(that); mark.IsPlayer() {
		return mark
	}
	return EmptyCell
}

// GameStatus is the status of the meta-board.
type GameStatus string

func GameWonBy(mark Mark) GameStatus {
	return GameStatus(mark)
}

func (that GameStatus) IsTerminal() bool {
	return that != GameInProgress && that != ""
}

func (that GameStatus) IsDrawn() bool {
	return that == GameDrawn
}

func (that GameStatus) Winner() Mark {
	if mark := Mark(that); mark.IsPlayer() {
		return mark
	}
	return EmptyCell
}

// Grid is the content of the four sub-boards, indexed [board][cell] from zero.
type Grid [GridSize][GridSize]Mark

func (that *Grid) At(move MoveID) Mark {
	return that[move.Board.Index()][move.Cell.Index()]
}

func (that *Grid) Set(move MoveID, mark Mark) {
	that[move.Board.Index()][move.Cell.Index()] = mark
}

// Fill overwrites every cell of a board.
func (that *Grid) Fill(board BoardID, mark Mark) {
	for i := range that[board.Index()] {
		that[board.Index()][i] = mark
	}
}

// Occupied counts the non-empty cells.
func (that *Grid) Occupied() int {
	count := 0
	for _, board := range that {
		for _, cell := range board {
			if cell != EmptyCell {
				count++
			}
		}
	}
	return count
}
