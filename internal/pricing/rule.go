package pricing

import "github.com/vominhduc11/dealerhub/internal/domain/model"

// ConditionKind selects which cart measure a rule threshold applies to.
type ConditionKind string

const (
	ConditionSubtotalAtLeast ConditionKind = "subtotal_at_least"
	ConditionQuantityAtLeast ConditionKind = "quantity_at_least"
)

// Condition is a data-driven eligibility predicate. Keeping it as a tagged
// value instead of a closure keeps the rule table serializable and the
// evaluation auditable in one place.
type Condition struct {
	Kind      ConditionKind
	Threshold int64
}

// Eligible interprets the condition against a pricing context.
// Unknown kinds are never eligible.
func (c Condition) Eligible(ctx Context) bool {
	switch c.Kind {
	case ConditionSubtotalAtLeast:
		return ctx.Subtotal >= c.Threshold
	case ConditionQuantityAtLeast:
		return ctx.TotalQuantity >= c.Threshold
	default:
		return false
	}
}

// Rule is one tier of the wholesale discount table.
type Rule struct {
	ID        string
	Label     string
	Percent   int
	Condition Condition
}

// Context is the derived pricing input, recomputed from the cart on every
// evaluation rather than stored.
type Context struct {
	Items         []model.CartItem
	Subtotal      int64
	TotalQuantity int64
}

// ContextFor derives a pricing context from cart items.
func ContextFor(items []model.CartItem) Context {
	ctx := Context{Items: items}
	for _, item := range items {
		ctx.Subtotal += item.LineTotal()
		ctx.TotalQuantity += item.Quantity
	}
	return ctx
}

// DefaultRules is the single source of eligibility truth: it drives both the
// discount computation and the tier listing shown to dealers.
var DefaultRules = []Rule{
	{
		ID:        "wholesale-10m",
		Label:     "Wholesale order from 10,000,000",
		Percent:   2,
		Condition: Condition{Kind: ConditionSubtotalAtLeast, Threshold: 10_000_000},
	},
	{
		ID:        "wholesale-50m",
		Label:     "Wholesale order from 50,000,000",
		Percent:   3,
		Condition: Condition{Kind: ConditionSubtotalAtLeast, Threshold: 50_000_000},
	},
	{
		ID:        "wholesale-100m",
		Label:     "Wholesale order from 100,000,000",
		Percent:   5,
		Condition: Condition{Kind: ConditionSubtotalAtLeast, Threshold: 100_000_000},
	},
	{
		ID:        "wholesale-200m",
		Label:     "Wholesale order from 200,000,000",
		Percent:   7,
		Condition: Condition{Kind: ConditionSubtotalAtLeast, Threshold: 200_000_000},
	},
}
