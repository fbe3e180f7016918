package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/calculator/calctest"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

func getTextContent(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	if tc, ok := mcp.AsTextContent(result.Content[0]); ok {
		return tc.Text
	}

	return ""
}

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func TestPingCommand(t *testing.T) {
	server := NewMCPCalculatorServer("test-version")

	result, err := server.Ping(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.Equal(t, "pong - MCP Go Calculator is connected!", getTextContent(result))
}

func TestStatusCommand(t *testing.T) {
	server := NewMCPCalculatorServer("test-version")

	result, err := server.Status(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)

	var status types.StatusResponse
	require.NoError(t, json.Unmarshal([]byte(getTextContent(result)), &status))

	assert.Equal(t, "Go Calculator MCP", status.Server.Name)
	assert.Equal(t, "test-version", status.Server.Version)
	assert.Equal(t, calculator.Operations(), status.Calculator.Operations)
	assert.Equal(t, calculator.DivisionPrecision(), status.Calculator.DivisionPrecision)
}

func TestListOperationsCommand(t *testing.T) {
	server := NewMCPCalculatorServer("test-version")

	result, err := server.ListOperations(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)

	var ops types.OperationsResponse
	require.NoError(t, json.Unmarshal([]byte(getTextContent(result)), &ops))
	assert.Equal(t, "success", ops.Status)
	assert.Equal(t, []string{"add", "divide", "multiply", "subtract"}, ops.Operations)
}

func TestCalculateCommand(t *testing.T) {
	server := NewMCPCalculatorServer("test-version")

	result, err := server.Calculate(context.Background(), newRequest(map[string]interface{}{
		"a":         "5",
		"b":         "3",
		"operation": "add",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var response types.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(getTextContent(result)), &response))
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, "8", response.Result)
	assert.Equal(t, "The result of 5 add 3 is equal to 8", response.Summary)
	assert.NotEmpty(t, response.ID)
}

func TestCalculateCommandNumericOperands(t *testing.T) {
	server := NewMCPCalculatorServer("test-version")

	result, err := server.Calculate(context.Background(), newRequest(map[string]interface{}{
		"a":         1.5,
		"b":         float64(2),
		"operation": "multiply",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, getTextContent(result))

	var response types.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(getTextContent(result)), &response))
	assert.Equal(t, "3.0", response.Result)
}

func TestCalculateCommandErrors(t *testing.T) {
	server := NewMCPCalculatorServer("test-version")

	cases := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{
			name: "divide by zero",
			args: map[string]interface{}{"a": "1", "b": "0", "operation": "divide"},
			want: "An error occurred: Cannot divide by zero",
		},
		{
			name: "unknown operation",
			args: map[string]interface{}{"a": "9", "b": "3", "operation": "unknown"},
			want: "Unknown operation: unknown",
		},
		{
			name: "invalid number",
			args: map[string]interface{}{"a": "a", "b": "3", "operation": "add"},
			want: "Invalid number input: a or 3 is not a valid number.",
		},
		{
			name: "missing argument",
			args: map[string]interface{}{"a": "1", "operation": "add"},
			want: `Error: missing required argument "b"`,
		},
		{
			name: "wrong argument type",
			args: map[string]interface{}{"a": "1", "b": "2", "operation": true},
			want: `Error: argument "operation" must be a string`,
		},
		{
			name: "numeric operation",
			args: map[string]interface{}{"a": "1", "b": "2", "operation": float64(1)},
			want: `Error: argument "operation" must be a string`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := server.Calculate(context.Background(), newRequest(tc.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Equal(t, tc.want, getTextContent(result))
		})
	}
}

func TestCalculateTextCommand(t *testing.T) {
	server := NewMCPCalculatorServer("test-version")

	result, err := server.CalculateText(context.Background(), newRequest(map[string]interface{}{
		"a":         "20",
		"b":         "4",
		"operation": "divide",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "The result of 20 divide 4 is equal to 5", getTextContent(result))

	result, err = server.CalculateText(context.Background(), newRequest(map[string]interface{}{
		"a":         "1",
		"b":         "0",
		"operation": "divide",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "An error occurred: Cannot divide by zero", getTextContent(result))
}

// TestCalculateMatchesCalculation checks the tool against the Calculation
// type on generated records.
func TestCalculateMatchesCalculation(t *testing.T) {
	server := NewMCPCalculatorServer("test-version")

	for _, rec := range calctest.GenerateTestData(20, calctest.Seed(t)) {
		result, err := server.Calculate(context.Background(), newRequest(map[string]interface{}{
			"a":         rec.A.String(),
			"b":         rec.B.String(),
			"operation": rec.OperationName,
		}))
		require.NoError(t, err)
		require.False(t, result.IsError, getTextContent(result))

		var response types.CalculationResponse
		require.NoError(t, json.Unmarshal([]byte(getTextContent(result)), &response))
		assert.Equal(t, calculator.Format(rec.Expected), response.Result, "%s %s %s", rec.A, rec.OperationName, rec.B)
	}
}
