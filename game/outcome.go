package game

// Outcome encodes the result of a game: Open while either player can still
// move, otherwise which side holds more pieces.
type Outcome int

const (
	Open        Outcome = 0
	Player1Wins Outcome = 1
	Player2Wins Outcome = 2
	Tie         Outcome = 3
)

func (o Outcome) String() string {
	switch o {
	case Open:
		return "open"
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// WonBy reports whether the outcome is a win for the given player.
func (o Outcome) WonBy(player int) bool {
	return int(o) == player
}

// CheckOutcome reports Open while at least one player has a legal move, and
// the final result once neither does.
func CheckOutcome(b Board) Outcome {
	if len(LegalMoves(1, b)) > 0 {
		return Open
	}
	if len(LegalMoves(2, b)) > 0 {
		return Open
	}
	return Winner(b)
}

// Winner compares piece counts: the player with strictly more pieces wins,
// equal counts tie. Only meaningful on a terminal board.
func Winner(b Board) Outcome {
	player1 := b.Count(Player1)
	player2 := b.Count(Player2)
	switch {
	case player1 > player2:
		return Player1Wins
	case player2 > player1:
		return Player2Wins
	default:
		return Tie
	}
}
