package service

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cartkit/internal/domain"
	"cartkit/internal/pricing"
	"cartkit/internal/profile"
)

// CheckoutService turns an order into a receipt.
type CheckoutService interface {
	Checkout(order domain.Order) (*domain.Receipt, error)
}

type checkoutService struct {
	calc   pricing.Calculator
	logger logrus.FieldLogger
	newID  func() string
	now    func() time.Time
}

func NewCheckoutService(calc pricing.Calculator, logger logrus.FieldLogger) CheckoutService {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &checkoutService{
		calc:   calc,
		logger: logger,
		newID:  uuid.NewString,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *checkoutService) Checkout(order domain.Order) (*domain.Receipt, error) {
	customer := profile.DisplayName(order.User)

	breakdown, err := s.calc.Summarize(order.Items)
	if err != nil {
		return nil, fmt.Errorf("price order for %s: %w", customer, err)
	}

	if breakdown.Missing > 0 {
		s.logger.WithFields(logrus.Fields{
			"customer": customer,
			"missing":  breakdown.Missing,
		}).Warn("items without price counted as zero")
	}

	receipt := &domain.Receipt{
		ID:        s.newID(),
		Customer:  customer,
		Total:     breakdown.Total,
		Counted:   breakdown.Counted,
		Excluded:  breakdown.Excluded,
		Missing:   breakdown.Missing,
		CreatedAt: s.now(),
	}

	s.logger.WithFields(logrus.Fields{
		"receipt":  receipt.ID,
		"customer": receipt.Customer,
		"total":    receipt.Total,
		"policy":   s.calc.Policy.String(),
	}).Debug("receipt issued")

	return receipt, nil
}
