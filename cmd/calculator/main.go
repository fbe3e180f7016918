package main

import (
	"os"

	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

// Version is set during build
var Version = "dev"

func main() {
	cmd := newRootCmd(Version)
	setArgs(cmd, os.Args[1:])
	if err := cmd.Execute(); err != nil {
		logger.Debug("Command failed", "error", err)
		os.Exit(1)
	}
}
