// Package core holds the domain model: transaction records, money amounts
// and ledger summaries. It has no dependencies beyond the standard library.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is a positive monetary amount stored in integer cents. Amounts in
// this system come from a grammar that allows at most two fractional digits,
// so cents are always exact.
type Money struct {
	Cents int64
}

// ParseDecimalToCents converts a decimal string to cents.
//
// It accepts plain digit sequences with an optional dot and up to two
// fractional digits at the wire; a third fractional digit is rounded
// half-up. Negative, zero and malformed values are rejected.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// IsZero reports whether no amount is present.
func (m Money) IsZero() bool {
	return m.Cents == 0
}

// Float64 returns the amount as a float for display and JSON boundaries.
// Keep calculations in cents.
func (m Money) Float64() float64 {
	return float64(m.Cents) / 100.0
}

// DecimalString renders the amount with two fractional digits ("150.00").
// ParseDecimalToCents round-trips this exactly.
func (m Money) DecimalString() string {
	return fmt.Sprintf("%d.%02d", m.Cents/100, m.Cents%100)
}

// Format renders the amount as a rupee string with thousands grouping,
// e.g. ₹1,250.00.
func (m Money) Format() string {
	whole := strconv.FormatInt(m.Cents/100, 10)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("₹%s.%02d", b.String(), m.Cents%100)
}
