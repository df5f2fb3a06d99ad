package service

import (
	"encoding/json"
	"fmt"

	"cartkit/internal/domain"
	"cartkit/internal/pricing"
)

type orderDocument struct {
	User  *domain.User    `json:"user"`
	Items json.RawMessage `json:"items"`
}

// DecodeOrder parses an order document. Items go through pricing.DecodeItems so a
// non-numeric price surfaces as pricing.ErrNonNumericPrice.
func DecodeOrder(data []byte) (domain.Order, error) {
	var doc orderDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Order{}, fmt.Errorf("decode order: %w", err)
	}

	order := domain.Order{User: doc.User}
	if len(doc.Items) == 0 || string(doc.Items) == "null" {
		return order, nil
	}

	items, err := pricing.DecodeItems(doc.Items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("decode order: %w", err)
	}
	order.Items = items
	return order, nil
}
