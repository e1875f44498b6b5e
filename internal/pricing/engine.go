package pricing

import (
	"math"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
)

// NotEligibleLabel is carried by the zero result when no rule applies.
const NotEligibleLabel = "Not eligible for discount"

// Calculate selects the single best-applicable rule for the context and
// computes the discount amount. It is deterministic and side-effect free.
//
// The eligible rule with the highest percent wins; when several rules share
// the maximum, the first of them in table order is kept because the scan
// only replaces on a strictly greater percent. The single float-to-integer
// rounding of the whole engine happens here.
func Calculate(rules []Rule, ctx Context) model.DiscountResult {
	zero := model.DiscountResult{Label: NotEligibleLabel}
	if ctx.Subtotal <= 0 {
		return zero
	}

	var best *Rule
	for i := range rules {
		if !rules[i].Condition.Eligible(ctx) {
			continue
		}
		if best == nil || rules[i].Percent > best.Percent {
			best = &rules[i]
		}
	}
	if best == nil {
		return zero
	}

	amount := int64(math.Round(float64(ctx.Subtotal) * float64(best.Percent) / 100))
	return model.DiscountResult{
		RuleID:  best.ID,
		Label:   best.Label,
		Percent: best.Percent,
		Amount:  amount,
	}
}

// RuleStatus pairs a rule with its eligibility for a given context, for the
// tier overview shown alongside the cart.
type RuleStatus struct {
	Rule     Rule
	Eligible bool
}

// Statuses evaluates all rules against the context without picking a winner.
func Statuses(rules []Rule, ctx Context) []RuleStatus {
	out := make([]RuleStatus, 0, len(rules))
	for _, rule := range rules {
		out = append(out, RuleStatus{Rule: rule, Eligible: ctx.Subtotal > 0 && rule.Condition.Eligible(ctx)})
	}
	return out
}
