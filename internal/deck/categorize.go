package deck

// Category is a coarse pre-flop strength bucket for hole cards
type Category string

const (
	CategoryPremium Category = "Premium"
	CategoryStrong  Category = "Strong"
	CategoryMedium  Category = "Medium"
	CategoryWeak    Category = "Weak"
	CategoryTrash   Category = "Trash"
)

// Categorize buckets two hole cards.
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited connectors), Trash (everything else).
func Categorize(c1, c2 Card) Category {
	small, big := c1.Rank, c2.Rank
	if small > big {
		small, big = big, small
	}
	pair := small == big
	suited := c1.Suit == c2.Suit

	switch {
	case pair && small >= Jack, small == King && big == Ace:
		return CategoryPremium
	case pair && small == Ten, big == Ace && (small == Queen || small == Jack):
		return CategoryStrong
	case pair && small >= Seven, suited && small >= Ten:
		return CategoryMedium
	case pair, suited && big-small <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}
