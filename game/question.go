package game

// Mode selects which operators questions use.
type Mode int

const (
	Addition Mode = iota
	Subtraction
	Mixed
)

// Modes lists the selectable modes in display order.
var Modes = []Mode{Addition, Subtraction, Mixed}

func (m Mode) String() string {
	switch m {
	case Addition:
		return "ADDITION"
	case Subtraction:
		return "SUBTRACTION"
	case Mixed:
		return "MIXED"
	default:
		return "UNKNOWN"
	}
}

// Op is a question's operator.
type Op byte

const (
	Plus  Op = '+'
	Minus Op = '-'
)

func (o Op) String() string {
	return string(o)
}

// Question is one arithmetic problem. Answer is never negative.
type Question struct {
	Num1   int
	Num2   int
	Op     Op
	Answer int
}

// Drawer is the randomness a question needs. *common.SeededRNG satisfies it.
type Drawer interface {
	RandomInt(min, max int) int
	Random() float64
}

// GenerateQuestion draws two operands in [MinOperand, MaxOperand]. Subtraction
// swaps the operands when needed so the answer stays non-negative.
func GenerateQuestion(mode Mode, rng Drawer) Question {
	n1 := rng.RandomInt(MinOperand, MaxOperand+1)
	n2 := rng.RandomInt(MinOperand, MaxOperand+1)

	op := Plus
	switch mode {
	case Addition:
		op = Plus
	case Subtraction:
		op = Minus
	default:
		if rng.Random() <= 0.5 {
			op = Minus
		}
	}

	if op == Minus && n1 < n2 {
		n1, n2 = n2, n1
	}

	q := Question{Num1: n1, Num2: n2, Op: op}
	if op == Plus {
		q.Answer = n1 + n2
	} else {
		q.Answer = n1 - n2
	}
	return q
}

// Icon is the picture counted out under each operand.
type Icon string

// Icons is the fixed set a question's icon is drawn from.
var Icons = []Icon{"🍎", "⭐", "🦋", "🎈", "🍦", "🚗", "🐶"}

// PickIcon draws a random icon.
func PickIcon(rng Drawer) Icon {
	i := rng.RandomInt(0, len(Icons))
	if i < 0 || i >= len(Icons) {
		i = 0
	}
	return Icons[i]
}
