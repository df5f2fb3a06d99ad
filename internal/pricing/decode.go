package pricing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"cartkit/internal/domain"
)

// DecodeItems parses a JSON array of items. Only an absent price key decodes as a nil
// Price. A null price, a null item or any other non-number aborts with
// ErrNonNumericPrice; a number beyond float64 range aborts with ErrPriceOutOfRange.
func DecodeItems(data []byte) ([]domain.Item, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	items := make([]domain.Item, len(raw))
	for i, fields := range raw {
		if fields == nil {
			return nil, &ItemError{Index: i, Err: fmt.Errorf("%w: item is null", ErrNonNumericPrice)}
		}

		var item domain.Item
		if err := decodeString(fields, "sku", &item.SKU); err != nil {
			return nil, &ItemError{Index: i, Err: err}
		}
		if err := decodeString(fields, "name", &item.Name); err != nil {
			return nil, &ItemError{Index: i, SKU: item.SKU, Err: err}
		}

		if rawPrice, ok := fields["price"]; ok {
			price, err := parsePrice(rawPrice)
			if err != nil {
				return nil, &ItemError{Index: i, SKU: item.SKU, Err: err}
			}
			item.Price = &price
		}
		items[i] = item
	}
	return items, nil
}

func decodeString(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// parsePrice accepts only JSON number literals.
func parsePrice(raw json.RawMessage) (float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return 0, fmt.Errorf("%w: %s", ErrNonNumericPrice, trimmed)
	}

	price, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrPriceOutOfRange, trimmed)
		}
		return 0, fmt.Errorf("%w: %s", ErrNonNumericPrice, trimmed)
	}
	return price, nil
}
