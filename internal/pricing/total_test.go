package pricing

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartkit/internal/domain"
)

func price(v float64) *float64 { return &v }

func items(prices ...*float64) []domain.Item {
	out := make([]domain.Item, len(prices))
	for i, p := range prices {
		out[i] = domain.Item{Price: p}
	}
	return out
}

func TestTotal(t *testing.T) {
	tests := map[string]struct {
		items []domain.Item
		want  float64
	}{
		"nil slice":          {items: nil, want: 0},
		"empty slice":        {items: []domain.Item{}, want: 0},
		"all positive":       {items: items(price(1.5), price(2), price(3.25)), want: 6.75},
		"mixed signs":        {items: items(price(5), price(-3), price(2)), want: 7},
		"zero excluded":      {items: items(price(0), price(4)), want: 4},
		"only non-positive":  {items: items(price(0), price(-1), price(-0.5)), want: 0},
		"tiny positive kept": {items: items(price(0.01), price(-0.01)), want: 0.01},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Total(tc.items)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestTotal_EqualsSumOfPositivePrices(t *testing.T) {
	property := func(prices []float64) bool {
		var want float64
		in := make([]domain.Item, len(prices))
		for i := range prices {
			in[i] = domain.Item{Price: &prices[i]}
			if prices[i] > 0 {
				want += prices[i]
			}
		}
		got, err := Total(in)
		return err == nil && got == want
	}
	require.NoError(t, quick.Check(property, nil))
}

func TestTotal_AllPositiveEqualsArithmeticSum(t *testing.T) {
	property := func(cents []uint16) bool {
		var want float64
		in := make([]domain.Item, len(cents))
		for i, c := range cents {
			v := float64(c) + 1
			in[i] = domain.Item{Price: &v}
			want += v
		}
		got, err := Total(in)
		return err == nil && got == want
	}
	require.NoError(t, quick.Check(property, nil))
}

func TestCalculatorSummarize_CountsPartitionInput(t *testing.T) {
	property := func(prices []float64, missing []bool) bool {
		in := make([]domain.Item, len(prices))
		for i := range prices {
			if i < len(missing) && missing[i] {
				continue
			}
			in[i].Price = &prices[i]
		}
		b, err := Calculator{Policy: PolicyZero}.Summarize(in)
		return err == nil && b.Counted+b.Excluded+b.Missing == len(in)
	}
	require.NoError(t, quick.Check(property, nil))
}

func TestTotal_MissingPriceAbortsWholeComputation(t *testing.T) {
	in := []domain.Item{
		{SKU: "a", Price: price(10)},
		{SKU: "b"},
		{SKU: "c", Price: price(3)},
	}

	got, err := Total(in)
	require.Error(t, err)
	assert.Zero(t, got)
	assert.True(t, errors.Is(err, ErrMissingPrice))

	var itemErr *ItemError
	require.True(t, errors.As(err, &itemErr))
	assert.Equal(t, 1, itemErr.Index)
	assert.Equal(t, "b", itemErr.SKU)
	assert.Contains(t, err.Error(), "item 1 (b)")
}

func TestTotal_DoesNotMutateInput(t *testing.T) {
	in := items(price(5), price(-3), price(2))
	_, err := Total(in)
	require.NoError(t, err)

	assert.Equal(t, 5.0, *in[0].Price)
	assert.Equal(t, -3.0, *in[1].Price)
	assert.Equal(t, 2.0, *in[2].Price)
}

func TestCalculatorSummarize(t *testing.T) {
	in := items(price(5), nil, price(-3), price(0), price(2), nil)

	_, err := Calculator{Policy: PolicyStrict}.Summarize(in)
	require.ErrorIs(t, err, ErrMissingPrice)

	b, err := Calculator{Policy: PolicyZero}.Summarize(in)
	require.NoError(t, err)
	assert.Equal(t, Breakdown{Total: 7, Counted: 2, Excluded: 2, Missing: 2}, b)
}

func TestParsePolicy(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Policy
		wantErr bool
	}{
		"empty":         {in: "", want: PolicyStrict},
		"strict":        {in: "strict", want: PolicyStrict},
		"zero":          {in: "zero", want: PolicyZero},
		"mixed case":    {in: "  Zero ", want: PolicyZero},
		"unknown value": {in: "lenient", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParsePolicy(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "strict", PolicyStrict.String())
	assert.Equal(t, "zero", PolicyZero.String())
	assert.Equal(t, "policy(9)", Policy(9).String())
}
