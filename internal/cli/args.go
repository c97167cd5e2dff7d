package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NormalizeArgs lets negative numbers be used as positional values.
//
// Only "--" prefixed arguments are options to this program, but pflag reads
// "-0.25" as a cluster of shorthand flags. Every argument that parses as a
// number, starts with "-" and is not the value of the preceding flag is moved
// behind a "--" terminator so cobra sees it as positional.
func NormalizeArgs(root *cobra.Command, args []string) []string {
	target := root
	if found, _, err := root.Find(args); err == nil && found != nil {
		target = found
	}

	var (
		kept       = make([]string, 0, len(args))
		positional []string
		terminated []string
	)
	for i, arg := range args {
		if arg == "--" {
			terminated = args[i+1:]
			break
		}
		if isNegativeNumber(arg) && (i == 0 || !takesValue(target, args[i-1])) {
			positional = append(positional, arg)
			continue
		}
		kept = append(kept, arg)
	}
	if len(positional) == 0 && terminated == nil {
		return args
	}

	normalized := append(kept, "--")
	normalized = append(normalized, positional...)
	return append(normalized, terminated...)
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// takesValue reports whether arg is a flag that consumes the next argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		name := strings.TrimPrefix(arg, "--")
		if name == "" || strings.Contains(name, "=") {
			return false
		}
		flag = lookupFlag(cmd, func(flags *pflag.FlagSet) *pflag.Flag { return flags.Lookup(name) })
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		shorthand := arg[1:]
		flag = lookupFlag(cmd, func(flags *pflag.FlagSet) *pflag.Flag { return flags.ShorthandLookup(shorthand) })
	default:
		return false
	}
	return flag != nil && flag.NoOptDefVal == ""
}

// lookupFlag searches local, persistent, and inherited flags. Cobra merges
// them lazily, so before parsing none of the sets is complete on its own.
func lookupFlag(cmd *cobra.Command, lookup func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	for _, flags := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()} {
		if flag := lookup(flags); flag != nil {
			return flag
		}
	}
	return nil
}
