package main

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setArgs hands args to cmd, moving negative numbers behind a "--" so
// pflag does not read "-3" as a shorthand flag.
func setArgs(cmd *cobra.Command, args []string) {
	cmd.SetArgs(separateNegativeNumbers(cmd, args))
}

func separateNegativeNumbers(cmd *cobra.Command, args []string) []string {
	var flags, positionals []string
	negative := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			for _, rest := range args[i+1:] {
				negative = negative || isNegativeNumber(rest)
				positionals = append(positionals, rest)
			}
			i = len(args)
		case isNegativeNumber(arg):
			negative = true
			positionals = append(positionals, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			if takesValue(cmd, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positionals = append(positionals, arg)
		}
	}

	if !negative {
		return args
	}
	out := append(flags, "--")
	return append(out, positionals...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := decimal.NewFromString(arg)
	return err == nil
}

// takesValue reports whether arg is a flag, given without "=", whose value
// is the next argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = lookup(cmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) })
	} else if len(arg) == 2 {
		f = lookup(cmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(arg[1:]) })
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookup(cmd *cobra.Command, find func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	if f := find(cmd.PersistentFlags()); f != nil {
		return f
	}
	return find(cmd.Flags())
}
