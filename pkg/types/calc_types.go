package types

import "time"

// CalculationResponse is the JSON form of a completed calculation
type CalculationResponse struct {
	ID        string    `json:"id"`                // Request identifier
	Status    string    `json:"status"`            // "success" or "error"
	A         string    `json:"a"`                 // First operand as given
	B         string    `json:"b"`                 // Second operand as given
	Operation string    `json:"operation"`         // Operation name
	Result    string    `json:"result,omitempty"`  // Decimal result in canonical form
	Summary   string    `json:"summary,omitempty"` // Human-readable result line
	Timestamp time.Time `json:"timestamp"`
}

// OperationsResponse lists the operations a calculation can use
type OperationsResponse struct {
	Status     string   `json:"status"`
	Operations []string `json:"operations"`
}

// ServerInfo identifies the running server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CalculatorInfo describes the arithmetic settings in effect
type CalculatorInfo struct {
	Operations        []string `json:"operations"`
	DivisionPrecision int      `json:"divisionPrecision"`
}

// StatusResponse is returned by the status tool
type StatusResponse struct {
	Server     ServerInfo     `json:"server"`
	Calculator CalculatorInfo `json:"calculator"`
}
