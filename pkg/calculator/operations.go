// Package calculator provides the four basic arithmetic operations over
// decimal values and a Calculation type that defers running one of them.
package calculator

import (
	"errors"
	"math/big"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// DefaultDivisionPrecision is the number of significant digits kept by
// Divide unless changed with SetDivisionPrecision.
const DefaultDivisionPrecision = 28

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("Cannot divide by zero")

var divisionPrecision atomic.Int32

func init() {
	divisionPrecision.Store(DefaultDivisionPrecision)
}

// Operation is a binary arithmetic function over decimals.
type Operation func(a, b decimal.Decimal) (decimal.Decimal, error)

// SetDivisionPrecision sets the significant digits kept by Divide.
// Values below 1 are ignored.
func SetDivisionPrecision(digits int) {
	if digits < 1 {
		return
	}
	divisionPrecision.Store(int32(digits))
}

// DivisionPrecision returns the significant digits currently kept by Divide.
func DivisionPrecision() int {
	return int(divisionPrecision.Load())
}

// Add returns a + b.
func Add(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Add(b), nil
}

// Subtract returns a - b.
func Subtract(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Sub(b), nil
}

// Multiply returns a * b.
func Multiply(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Mul(b), nil
}

// Divide returns a / b rounded half to even to DivisionPrecision significant
// digits, with trailing zeros removed. It returns ErrDivideByZero if b is zero.
func Divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivideByZero
	}
	if a.IsZero() {
		return decimal.Zero, nil
	}

	prec := int(divisionPrecision.Load())

	// Truncate with at least two digits beyond prec, then fold any remainder
	// into a sticky last digit so the final rounding sees exact halves only
	// when the quotient really is a half.
	scale := prec - adjusted(a) + adjusted(b) + 2
	if scale < 0 {
		scale = 0
	}
	q, r := a.QuoRem(b, int32(scale))
	if !r.IsZero() {
		sign := int64(a.Sign() * b.Sign())
		q = q.Add(decimal.New(sign, -int32(scale+1)))
	}

	places := prec - 1 - adjusted(q)
	return normalize(q.RoundBank(int32(places))), nil
}

// Format renders d keeping its scale, so 1.10 + 2.20 prints as 3.30.
func Format(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// adjusted is the power of ten of the most significant digit of d.
func adjusted(d decimal.Decimal) int {
	return d.NumDigits() + int(d.Exponent()) - 1
}

// normalize strips trailing fractional zeros from the coefficient of d.
func normalize(d decimal.Decimal) decimal.Decimal {
	coef := d.Coefficient()
	exp := d.Exponent()
	if coef.Sign() == 0 {
		return decimal.Zero
	}
	ten := big.NewInt(10)
	q, m := new(big.Int), new(big.Int)
	for exp < 0 {
		q.QuoRem(coef, ten, m)
		if m.Sign() != 0 {
			break
		}
		coef.Set(q)
		exp++
	}
	return decimal.NewFromBigInt(coef, exp)
}
