package engine

import (
	"strings"

	"github.com/muesli/termenv"

	"othello/game"
)

// Render draws the board as a colored grid for terminal output. Colors
// degrade gracefully on dumb terminals via the detected color profile.
func Render(b game.Board) string {
	profile := termenv.ColorProfile()
	player1 := termenv.String("●").Foreground(profile.Color("2")).String()
	player2 := termenv.String("●").Foreground(profile.Color("5")).String()

	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for row := 0; row < game.NumRows; row++ {
		sb.WriteByte('0' + byte(row))
		for column := 0; column < game.NumColumns; column++ {
			sb.WriteByte(' ')
			switch b[row][column] {
			case game.Player1:
				sb.WriteString(player1)
			case game.Player2:
				sb.WriteString(player2)
			default:
				sb.WriteString("·")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
