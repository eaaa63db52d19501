// Package product defines the record produced by a page extraction.
package product

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Confidence is a coarse reliability tag attached to a strategy's
// output. Downstream consumers use it to prioritize manual review.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Field length caps applied at construction sites.
const (
	MaxNameLen        = 200
	MaxDescriptionLen = 500
)

// Product is the sole output entity of an extraction. A record is
// built fresh on every call and holds no references back into the
// page it came from.
//
// Price 0 means "no price found" and is a completeness signal, not an
// error state. Negative prices never occur.
type Product struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description,omitempty" validate:"max=500"`
	Price       float64    `json:"price" validate:"gte=0"`
	Image       string     `json:"image,omitempty"`
	SKU         string     `json:"sku,omitempty"`
	Brand       string     `json:"brand,omitempty"`
	Category    string     `json:"category,omitempty"`
	SourceURL   string     `json:"sourceUrl" validate:"required,url"`
	SiteHost    string     `json:"siteHost" validate:"required"`
	Strategy    string     `json:"strategy" validate:"required"`
	Confidence  Confidence `json:"confidence" validate:"required,oneof=high medium low"`
}

var validate = validator.New()

// Validate checks the record against its struct tags. Records are
// validated before being handed to the transport layer.
func (p *Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid product record: %w", err)
	}
	return nil
}

// Truncate trims a string to max characters. Used for names and
// descriptions pulled from unbounded page text.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
