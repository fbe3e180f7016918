package calculator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownOperation is wrapped by every UnknownOperationError.
	ErrUnknownOperation = errors.New("unknown operation")

	errNoOperation = errors.New("calculation has no operation")
)

// UnknownOperationError reports an operation name missing from the lookup table.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("Unknown operation: %s", e.Name)
}

func (e *UnknownOperationError) Unwrap() error {
	return ErrUnknownOperation
}

var operations = map[string]Operation{
	"add":      Add,
	"subtract": Subtract,
	"multiply": Multiply,
	"divide":   Divide,
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, bool) {
	op, ok := operations[name]
	return op, ok
}

// Operations returns the recognized operation names in sorted order.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calculation binds two operands to an operation. Nothing is computed
// until Perform is called.
type Calculation struct {
	a, b      decimal.Decimal
	operation Operation
	name      string
}

// NewCalculation wraps an arbitrary operation function.
func NewCalculation(a, b decimal.Decimal, operation Operation) *Calculation {
	return &Calculation{a: a, b: b, operation: operation}
}

// Create resolves name through the operation table and returns a new
// Calculation. It fails with an *UnknownOperationError for unrecognized names.
func Create(a, b decimal.Decimal, name string) (*Calculation, error) {
	op, ok := Lookup(name)
	if !ok {
		return nil, &UnknownOperationError{Name: name}
	}
	return &Calculation{a: a, b: b, operation: op, name: name}, nil
}

// A returns the first operand.
func (c *Calculation) A() decimal.Decimal { return c.a }

// B returns the second operand.
func (c *Calculation) B() decimal.Decimal { return c.b }

// Name returns the operation name, or "" when built with NewCalculation.
func (c *Calculation) Name() string { return c.name }

// Perform runs the stored operation on the stored operands.
func (c *Calculation) Perform() (decimal.Decimal, error) {
	if c.operation == nil {
		return decimal.Zero, errNoOperation
	}
	return c.operation(c.a, c.b)
}

func (c *Calculation) String() string {
	name := c.name
	if name == "" {
		name = "custom"
	}
	return fmt.Sprintf("Calculation(%s, %s, %s)", c.a, c.b, name)
}
