package game

// Result is the outcome of the last submitted answer.
type Result int

const (
	ResultNone Result = iota
	ResultCorrect
	ResultWrong
)

// GameState is the part of the game the screen is drawn from. Transitions
// replace it wholesale.
type GameState struct {
	Score           int
	Total           int
	Question        Question
	Mode            Mode
	LastResult      Result
	FeedbackVisible bool
}

// Stars returns how many of the StarsPerRow progress stars are lit.
func (s GameState) Stars() int {
	return s.Score % StarsPerRow
}

// Accuracy returns the share of answers that were right, in [0, 1].
func (s GameState) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total)
}
