package tictactoe

import "github.com/rocketscienceinc/mini-uttt/internal/entity"

// SubBoardWinner - checks both diagonals of a sub-board, (1,4) first. Rows and columns never win.
func SubBoardWinner(cells [entity.GridSize]entity.Mark) (entity.Mark, bool) {
	for _, diagonal := range entity.Diagonals {
		a, b := cells[diagonal[0]], cells[diagonal[1]]
		if a != entity.EmptyCell && a == b {
			return a, true
		}
	}

	return entity.EmptyCell, false
}

// SubBoardIsDrawn - the board is full and nobody holds a diagonal.
func SubBoardIsDrawn(cells [entity.GridSize]entity.Mark) bool {
	for _, cell := range cells {
		if cell == entity.EmptyCell {
			return false
		}
	}

	_, won := SubBoardWinner(cells)

	return !won
}

// MetaWinner - applies the diagonal rule to the sub-board outcomes.
// Only won boards occupy a meta cell; drawn and open boards count as empty.
func MetaWinner(status [entity.GridSize]entity.BoardStatus) (entity.Mark, bool) {
	var cells [entity.GridSize]entity.Mark
	for i, boardStatus := range status {
		cells[i] = boardStatus.Winner()
	}

	return SubBoardWinner(cells)
}

// MetaIsDrawn - no meta diagonal is won and no sub-board is left open.
func MetaIsDrawn(status [entity.GridSize]entity.BoardStatus) bool {
	if _, won := MetaWinner(status); won {
		return false
	}

	for _, boardStatus := range status {
		if boardStatus.IsOpen() {
			return false
		}
	}

	return true
}

// checkGameStatus - the meta-board outcome after a move.
func checkGameStatus(status [entity.GridSize]entity.BoardStatus) entity.GameStatus {
	if winner, won := MetaWinner(status); won {
		return entity.GameWonBy(winner)
	}

	if MetaIsDrawn(status) {
		return entity.GameDrawn
	}

	return entity.GameInProgress
}
