package game

// Surplus is bounded in [-64, 64], so the score constants below dominate it:
// a won terminal always outranks any non-terminal surplus and a lost terminal
// always ranks below one.
const (
	WinScore  = 100
	LoseScore = -100
)

// Surplus returns the material difference from the player's point of view.
func Surplus(player int, b Board) int {
	return b.Count(Cell(player)) - b.Count(Cell(Opponent(player)))
}
