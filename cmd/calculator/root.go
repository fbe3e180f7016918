package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/cli"
	"github.com/sunfmin/mcp-go-calculator/pkg/config"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

func newRootCmd(version string) *cobra.Command {
	var (
		precision int
		debug     bool
	)

	root := &cobra.Command{
		Use:   "calculator <a> <b> <operation>",
		Short: "Add, subtract, multiply or divide two decimal numbers",
		Long: "Performs one decimal calculation and prints the result.\n\n" +
			"Operations: " + strings.Join(calculator.Operations(), ", ") + "\n" +
			"Negative operands may be given directly, e.g. calculator 5 -3 subtract",
		Example: "  calculator 5 3 add\n  calculator 1 3 divide --precision 4",
		Version: version,
		Args:    cobra.ExactArgs(3),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("precision") {
				if precision < 1 {
					return fmt.Errorf("--precision must be at least 1")
				}
				cfg.DivisionPrecision = precision
			}
			if debug {
				cfg.Debug = true
			}
			logger.SetDebug(cfg.Debug)
			cfg.Apply()
			logger.Debug("Configuration loaded", "divisionPrecision", cfg.DivisionPrecision)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.CalculateAndPrint(cmd.OutOrStdout(), args[0], args[1], args[2])
		},
	}

	root.PersistentFlags().IntVar(&precision, "precision", calculator.DefaultDivisionPrecision,
		"significant digits kept by divide (overrides "+config.EnvDivisionPrecision+")")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	root.AddCommand(&cobra.Command{
		Use:   "operations",
		Short: "List the supported operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range calculator.Operations() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})

	return root
}
