package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/cli"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

const serverName = "Go Calculator MCP"

// MCPCalculatorServer encapsulates the MCP server with calculator tools
type MCPCalculatorServer struct {
	server  *server.MCPServer
	version string
}

// NewMCPCalculatorServer creates a new MCP server with all calculator tools registered
func NewMCPCalculatorServer(version string) *MCPCalculatorServer {
	s := &MCPCalculatorServer{
		server:  server.NewMCPServer(serverName, version),
		version: version,
	}

	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *MCPCalculatorServer) Server() *server.MCPServer {
	return s.server
}

func (s *MCPCalculatorServer) registerTools() {
	s.addPingTool()
	s.addStatusTool()
	s.addListOperationsTool()
	s.addCalculateTool()
	s.addCalculateTextTool()
}

func (s *MCPCalculatorServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

func (s *MCPCalculatorServer) addStatusTool() {
	statusTool := mcp.NewTool("status",
		mcp.WithDescription("Report server version and calculator settings"),
	)

	s.server.AddTool(statusTool, s.Status)
}

func (s *MCPCalculatorServer) addListOperationsTool() {
	listTool := mcp.NewTool("list_operations",
		mcp.WithDescription("List the operations the calculator understands"),
	)

	s.server.AddTool(listTool, s.ListOperations)
}

// operandOptions are shared by the calculate tools
func operandOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("First operand as a decimal string, e.g. \"5\" or \"1.25\""),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("Second operand as a decimal string"),
		),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("One of: add, subtract, multiply, divide"),
		),
	}
}

func (s *MCPCalculatorServer) addCalculateTool() {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Perform a decimal calculation and return the result as JSON"),
	}, operandOptions()...)

	s.server.AddTool(mcp.NewTool("calculate", opts...), s.Calculate)
}

func (s *MCPCalculatorServer) addCalculateTextTool() {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Perform a decimal calculation and return a one line sentence"),
	}, operandOptions()...)

	s.server.AddTool(mcp.NewTool("calculate_text", opts...), s.CalculateText)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf(format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *MCPCalculatorServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong - MCP Go Calculator is connected!"), nil
}

// Status handles the status command
func (s *MCPCalculatorServer) Status(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received status request")

	response := types.StatusResponse{
		Server: types.ServerInfo{
			Name:    serverName,
			Version: s.version,
		},
		Calculator: types.CalculatorInfo{
			Operations:        calculator.Operations(),
			DivisionPrecision: calculator.DivisionPrecision(),
		},
	}

	return newToolResultJSON(response)
}

// ListOperations handles the list_operations command
func (s *MCPCalculatorServer) ListOperations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received list_operations request")

	return newToolResultJSON(types.OperationsResponse{
		Status:     "success",
		Operations: calculator.Operations(),
	})
}

// Calculate handles the calculate command
func (s *MCPCalculatorServer) Calculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received calculate request")

	a, b, op, errResult := operands(request)
	if errResult != nil {
		return errResult, nil
	}

	response, err := cli.Calculate(a, b, op)
	if err != nil {
		logger.Error("Calculation failed", "error", err, "a", a, "b", b, "operation", op)
		return newErrorResult("%s", cli.Message(nil, err)), nil
	}

	logger.Debug("Calculation succeeded", "id", response.ID, "result", response.Result)
	return newToolResultJSON(response)
}

// CalculateText handles the calculate_text command
func (s *MCPCalculatorServer) CalculateText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received calculate_text request")

	a, b, op, errResult := operands(request)
	if errResult != nil {
		return errResult, nil
	}

	response, err := cli.Calculate(a, b, op)
	if err != nil {
		logger.Error("Calculation failed", "error", err, "a", a, "b", b, "operation", op)
		return newErrorResult("%s", cli.Message(nil, err)), nil
	}

	return mcp.NewToolResultText(cli.Message(response, nil)), nil
}

// operands extracts the three string arguments shared by the calculate tools
func operands(request mcp.CallToolRequest) (a, b, op string, errResult *mcp.CallToolResult) {
	values := make([]string, 3)
	for i, key := range []string{"a", "b", "operation"} {
		raw, ok := request.Params.Arguments[key]
		if !ok || raw == nil {
			return "", "", "", newErrorResult("Error: missing required argument %q", key)
		}
		switch v := raw.(type) {
		case string:
			values[i] = v
		case float64:
			if key == "operation" {
				return "", "", "", newErrorResult("Error: argument %q must be a string", key)
			}
			// Clients sometimes send operands as JSON numbers.
			values[i] = fmt.Sprintf("%v", v)
		default:
			return "", "", "", newErrorResult("Error: argument %q must be a string", key)
		}
	}
	return values[0], values[1], values[2], nil
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("Error: failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
