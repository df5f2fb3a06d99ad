package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingPrice indicates an item carries no price field.
	ErrMissingPrice = errors.New("item has no price")
	// ErrNonNumericPrice indicates an item's price is not a number.
	ErrNonNumericPrice = errors.New("item price is not numeric")
	// ErrPriceOutOfRange indicates a numeric price that does not fit in a float64.
	ErrPriceOutOfRange = errors.New("item price out of range")
	// ErrUnknownPolicy is returned by ParsePolicy for unrecognised policy names.
	ErrUnknownPolicy = errors.New("unknown missing-price policy")
)

// ItemError ties a pricing failure to the position of the offending item.
type ItemError struct {
	Index int
	SKU   string
	Err   error
}

func (e *ItemError) Error() string {
	if e.SKU != "" {
		return fmt.Sprintf("item %d (%s): %v", e.Index, e.SKU, e.Err)
	}
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
