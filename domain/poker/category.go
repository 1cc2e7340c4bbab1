package poker

// Category is the rank class of a five card hand. Higher values beat lower
// ones regardless of the cards involved.
type Category int

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	Flush
)

func (c Category) String() string {
	switch c {
	case Flush:
		return "flush"
	case TwoPair:
		return "two pair"
	case Pair:
		return "pair"
	case HighCard:
		return "high card"
	default:
		return "unknown"
	}
}
