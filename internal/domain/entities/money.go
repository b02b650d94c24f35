package entities

import (
	"errors"
	"fmt"
)

// Currency identifies the currency of a monetary amount.

type Currency string

const (
	CurrencyBRL Currency = "BRL"
)

var ErrNegativeAmount = errors.New("money amount cannot be negative")

// Money is an integer amount of minor units (centavos for BRL).
//
// Monetary representation:
//   - Amount is always in minor units; never a float.
//   - All arithmetic is integer arithmetic. Conversion to the float amounts
//     expected by the Mercado Pago SDK happens only at the gateway boundary.
//
// The zero value is a valid R$ 0,00 in an unset currency; use BRL() for
// storefront amounts.

type Money struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

func NewMoney(amount int64, currency Currency) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// BRL builds a BRL amount from minor units (centavos).
func BRL(amount int64) Money {
	return Money{Amount: amount, Currency: CurrencyBRL}
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}
}

// MulQty multiplies a unit price by an item quantity.
func (m Money) MulQty(qty int) Money {
	return Money{Amount: m.Amount * int64(qty), Currency: m.Currency}
}

// SubClamped subtracts other, never going below zero.
func (m Money) SubClamped(other Money) Money {
	amount := m.Amount - other.Amount
	if amount < 0 {
		amount = 0
	}
	return Money{Amount: amount, Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

// Float64 converts to major units for gateway boundaries only.
func (m Money) Float64() float64 {
	return float64(m.Amount) / 100
}

// String formats the amount for human-readable summaries, e.g. "R$ 400,00".
func (m Money) String() string {
	prefix := string(m.Currency)
	if m.Currency == CurrencyBRL {
		prefix = "R$"
	}
	return fmt.Sprintf("%s %d,%02d", prefix, m.Amount/100, m.Amount%100)
}
