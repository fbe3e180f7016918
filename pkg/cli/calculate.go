// Package cli turns raw string arguments into calculations and renders
// their outcome as a single line of text.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

// Operands are limited in size because aligning exponents for arithmetic
// costs memory proportional to the exponent difference.
const (
	// MaxOperandExponent bounds the magnitude of an operand's exponent.
	MaxOperandExponent = 1000
	// MaxOperandDigits bounds the number of digits in an operand's coefficient.
	MaxOperandDigits = 1000
)

// InvalidNumberError reports operands that do not parse as decimals.
type InvalidNumberError struct {
	A, B string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("Invalid number input: %s or %s is not a valid number.", e.A, e.B)
}

// ParseOperands parses both operand strings as decimals. Operands outside
// MaxOperandExponent or MaxOperandDigits are reported as invalid.
func ParseOperands(a, b string) (decimal.Decimal, decimal.Decimal, error) {
	da, okA := parseOperand(a)
	db, okB := parseOperand(b)
	if !okA || !okB {
		return decimal.Zero, decimal.Zero, &InvalidNumberError{A: a, B: b}
	}
	return da, db, nil
}

func parseOperand(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 2*MaxOperandDigits {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > MaxOperandExponent || exp < -MaxOperandExponent {
		return decimal.Zero, false
	}
	if d.NumDigits() > MaxOperandDigits {
		return decimal.Zero, false
	}
	return d, true
}

// Calculate parses the operands, resolves the operation and performs it.
// Errors are *InvalidNumberError, *calculator.UnknownOperationError or
// calculator.ErrDivideByZero.
func Calculate(a, b, op string) (*types.CalculationResponse, error) {
	da, db, err := ParseOperands(a, b)
	if err != nil {
		return nil, err
	}

	calc, err := calculator.Create(da, db, op)
	if err != nil {
		return nil, err
	}

	result, err := calc.Perform()
	if err != nil {
		return nil, fmt.Errorf("perform %s: %w", op, err)
	}

	return &types.CalculationResponse{
		ID:        uuid.NewString(),
		Status:    "success",
		A:         a,
		B:         b,
		Operation: op,
		Result:    calculator.Format(result),
		Summary:   resultLine(a, b, op, calculator.Format(result)),
		Timestamp: time.Now(),
	}, nil
}

// Message renders the outcome of Calculate as one line of text.
func Message(resp *types.CalculationResponse, err error) string {
	if err == nil {
		return resp.Summary
	}

	var invalid *InvalidNumberError
	var unknown *calculator.UnknownOperationError
	switch {
	case errors.As(err, &invalid):
		return invalid.Error()
	case errors.As(err, &unknown):
		return unknown.Error()
	case errors.Is(err, calculator.ErrDivideByZero):
		return "An error occurred: " + calculator.ErrDivideByZero.Error()
	default:
		return "An error occurred: " + err.Error()
	}
}

// CalculateAndPrint writes the result line, or the error line, for one calculation to w.
func CalculateAndPrint(w io.Writer, a, b, op string) error {
	resp, err := Calculate(a, b, op)
	if err != nil {
		logger.Debug("Calculation failed", "a", a, "b", b, "operation", op, "error", err)
	}
	_, werr := fmt.Fprintln(w, Message(resp, err))
	return werr
}

func resultLine(a, b, op, result string) string {
	return fmt.Sprintf("The result of %s %s %s is equal to %s", a, op, b, result)
}
