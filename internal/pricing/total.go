package pricing

import (
	"fmt"
	"strings"

	"cartkit/internal/domain"
)

// Policy decides what happens to an item without a price.
type Policy int

const (
	// PolicyStrict fails the whole computation on the first missing price.
	PolicyStrict Policy = iota
	// PolicyZero treats a missing price as zero.
	PolicyZero
)

func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyZero:
		return "zero"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration value onto a Policy. Empty means strict.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "zero":
		return PolicyZero, nil
	default:
		return PolicyStrict, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Breakdown describes how a total was reached.
type Breakdown struct {
	Total    float64
	Counted  int
	Excluded int
	Missing  int
}

// Calculator sums item prices according to its Policy. The zero value is strict.
type Calculator struct {
	Policy Policy
}

// Total sums every strictly positive price using the strict policy.
func Total(items []domain.Item) (float64, error) {
	b, err := Calculator{}.Summarize(items)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// Summarize sums every price greater than zero and counts what was left out.
func (c Calculator) Summarize(items []domain.Item) (Breakdown, error) {
	var b Breakdown
	for i := range items {
		price := items[i].Price
		if price == nil {
			if c.Policy != PolicyZero {
				return Breakdown{}, &ItemError{Index: i, SKU: items[i].SKU, Err: ErrMissingPrice}
			}
			b.Missing++
			continue
		}
		if *price > 0 {
			b.Total += *price
			b.Counted++
			continue
		}
		b.Excluded++
	}
	return b, nil
}
