package console

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/internal/tictactoe"
)

// boardRows - the cells of each printed row, board 1 top left and board 4 bottom right.
var boardRows = [4][2][2]entity.MoveID{
	{{{Board: 1, Cell: 1}, {Board: 1, Cell: 2}}, {{Board: 2, Cell: 1}, {Board: 2, Cell: 2}}},
	{{{Board: 1, Cell: 3}, {Board: 1, Cell: 4}}, {{Board: 2, Cell: 3}, {Board: 2, Cell: 4}}},
	{{{Board: 3, Cell: 1}, {Board: 3, Cell: 2}}, {{Board: 4, Cell: 1}, {Board: 4, Cell: 2}}},
	{{{Board: 3, Cell: 3}, {Board: 3, Cell: 4}}, {{Board: 4, Cell: 3}, {Board: 4, Cell: 4}}},
}

const boardDivider = "--+--"

// Painter colours marks for one output.
type Painter struct {
	output *termenv.Output
}

func NewPainter(output *termenv.Output) *Painter {
	return &Painter{output: output}
}

func (that *Painter) Mark(mark entity.Mark) string {
	style := that.output.String(mark.Symbol())

	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.output.Color("1")).Bold()
	case entity.PlayerO:
		style = style.Foreground(that.output.Color("4")).Bold()
	}

	return style.String()
}

// RenderBoard - draws the four sub-boards as two rows of two, e.g.
//
//	XO|X
//	 X|
//	--+--
//	  |O
//	  |
func (that *Painter) RenderBoard(game *tictactoe.Game) string {
	var builder strings.Builder

	for r, row := range boardRows {
		if r == len(boardRows)/2 {
			builder.WriteString(boardDivider)
			builder.WriteByte('\n')
		}

		for i, half := range row {
			if i > 0 {
				builder.WriteByte('|')
			}
			for _, move := range half {
				builder.WriteString(that.Mark(game.Cell(move)))
			}
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
