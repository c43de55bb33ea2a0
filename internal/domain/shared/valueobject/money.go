package valueobject

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	GBP Currency = "GBP" // British Pound (default)
	EUR Currency = "EUR" // Euro
	USD Currency = "USD" // US Dollar
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = GBP

var currencySymbols = map[Currency]string{
	GBP: "£",
	EUR: "€",
	USD: "$",
}

// IsValid reports whether c is one of the supported currencies
func (c Currency) IsValid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display symbol of the currency, or the code itself
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return string(c)
}

// ErrInvalidAmount is returned when text does not contain a usable amount
var ErrInvalidAmount = errors.New("invalid amount")

// Money is a value object representing monetary amounts
// It is immutable - all operations return new Money instances
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

var nonAmountChars = regexp.MustCompile(`[^0-9.\-]`)

// ParseLenient reads an amount out of free text such as "12.5 GBP" or
// "£1,200". Everything except digits, '.' and '-' is discarded first.
func ParseLenient(text string, currency Currency) (Money, error) {
	cleaned := nonAmountChars.ReplaceAllString(text, "")
	if cleaned == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return NewMoney(d, currency)
}

var leadingAmount = regexp.MustCompile(`^\s*[-+]?(\d+\.?\d*|\.\d+)`)

// ParseLeading reads the numeric prefix of text, e.g. "350 approx" is 350.
// Text without a numeric prefix is an error.
func ParseLeading(text string, currency Currency) (Money, error) {
	prefix := strings.TrimSpace(leadingAmount.FindString(text))
	if prefix == "" {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	prefix = strings.TrimSuffix(strings.TrimPrefix(prefix, "+"), ".")
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return NewMoney(d, currency)
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// Display renders the amount with two decimals behind a symbol. An empty
// symbol falls back to the currency's own symbol. Negative amounts keep the
// sign in front of the symbol: -£5.00.
func (m Money) Display(symbol string) string {
	if symbol == "" {
		symbol = m.currency.Symbol()
	}
	fixed := m.amount.StringFixed(2)
	if strings.HasPrefix(fixed, "-") {
		return "-" + symbol + strings.TrimPrefix(fixed, "-")
	}
	return symbol + fixed
}

// Float64 returns the amount as a float64 (may lose precision)
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}
