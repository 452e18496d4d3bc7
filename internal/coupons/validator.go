package coupons

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rule ties a recognized coupon code to the discount rate it applies
// to the cart subtotal.
type Rule struct {
	Code string
	Rate decimal.Decimal
}

// Validator resolves raw coupon input against the configured rules.
// It is pure: no expiry, no usage tracking, safe to call repeatedly.
type Validator struct {
	rules map[string]Rule
}

// NewValidator builds a validator from the provided rules. Codes are
// normalized once at construction so lookups stay case-insensitive.
func NewValidator(rules ...Rule) *Validator {
	table := make(map[string]Rule, len(rules))
	for _, rule := range rules {
		code := Normalize(rule.Code)
		if code == "" {
			continue
		}
		rule.Code = code
		table[code] = rule
	}
	return &Validator{rules: table}
}

// Validate normalizes the code and returns its rule, or no match.
func (v *Validator) Validate(code string) (Rule, bool) {
	if v == nil {
		return Rule{}, false
	}
	rule, ok := v.rules[Normalize(code)]
	return rule, ok
}

// Normalize trims surrounding whitespace and uppercases the code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
