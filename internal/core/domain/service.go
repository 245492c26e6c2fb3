package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxServiceNameLen = 255
	maxPriceDigits    = 10
	priceScale        = 2
)

// Service is an entry of the catalog of billable offerings.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
}

// ServiceFields are the editable attributes of a Service.
type ServiceFields struct {
	Name        string
	Description string
	Price       string
	IsActive    bool
}

// NewService validates fields and builds a Service without an ID.
func NewService(f ServiceFields) (*Service, error) {
	s := &Service{}
	if err := s.Apply(f); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply validates fields and overwrites the editable attributes of s.
// On error s is left untouched.
func (s *Service) Apply(f ServiceFields) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return NewValidationError("name", "is required")
	}
	if utf8.RuneCountInString(name) > maxServiceNameLen {
		return NewValidationError("name", "must be at most 255 characters")
	}
	price, err := ParsePrice(f.Price)
	if err != nil {
		return err
	}

	s.Name = name
	s.Description = strings.TrimSpace(f.Description)
	s.Price = price
	s.IsActive = f.IsActive
	return nil
}

// ParsePrice accepts a non-negative decimal with at most two fractional
// digits and ten digits overall.
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, NewValidationError("price", "is required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError("price", "must be a number")
	}
	if d.IsNegative() {
		return decimal.Zero, NewValidationError("price", "must not be negative")
	}
	if !d.Equal(d.Round(priceScale)) {
		return decimal.Zero, NewValidationError("price", "must have at most 2 decimal places")
	}
	if len(d.Truncate(0).String()) > maxPriceDigits-priceScale {
		return decimal.Zero, NewValidationError("price", "must have at most 10 digits")
	}
	return d.Round(priceScale), nil
}

// PriceString renders the price with exactly two decimal places.
func (s *Service) PriceString() string {
	return s.Price.StringFixed(priceScale)
}
