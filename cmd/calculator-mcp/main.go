package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/sunfmin/mcp-go-calculator/pkg/config"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/mcp"
)

// Version is set during build
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.SetDebug(cfg.Debug)
	cfg.Apply()

	logger.Info("Starting MCP Go Calculator", "version", Version, "divisionPrecision", cfg.DivisionPrecision)

	calcServer := mcp.NewMCPCalculatorServer(Version)

	logger.Info("Starting MCP server...")
	if err := server.ServeStdio(calcServer.Server()); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
