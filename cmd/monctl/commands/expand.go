package commands

import (
	"strings"

	"github.com/concave-dev/monctl/internal/action"
	monerrors "github.com/concave-dev/monctl/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ExpandArgs rewrites an abbreviated command name in args to its full name so
// cobra can dispatch it. Global flags before the command, and their values,
// are skipped. Unknown names are left for the root command to report; an
// ambiguous prefix is an error. Raw mode arguments are never rewritten.
func ExpandArgs(rootCmd *cobra.Command, reg *action.Registry, args []string) ([]string, error) {
	flags := rootCmd.PersistentFlags()
	if hasRawFlag(args) {
		return args, nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args, nil
		case strings.HasPrefix(arg, "-") && arg != "-":
			if takesValue(flags, arg) {
				i++
			}
			continue
		}

		if isBuiltin(rootCmd, arg) {
			return args, nil
		}

		spec, err := reg.Lookup(arg)
		if err != nil {
			if monerrors.IsKind(err, monerrors.AmbiguousCommand) {
				return nil, err
			}
			return args, nil
		}

		expanded := make([]string, len(args))
		copy(expanded, args)
		expanded[i] = spec.Name
		return expanded, nil
	}
	return args, nil
}

// hasRawFlag reports whether --raw appears anywhere before a "--" terminator.
func hasRawFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--raw" || arg == "--raw=true" {
			return true
		}
	}
	return false
}

// takesValue reports whether a flag token consumes the following argument:
// a known non-boolean flag given without "=value".
func takesValue(flags *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = flags.Lookup(name)
	} else {
		short := strings.TrimPrefix(arg, "-")
		if len(short) != 1 {
			// -ojson style: value attached.
			return false
		}
		f = flags.ShorthandLookup(short)
	}
	return f != nil && f.NoOptDefVal == ""
}

// isBuiltin reports commands cobra adds on its own, such as help and
// completion, that must not be treated as prefixes.
func isBuiltin(rootCmd *cobra.Command, arg string) bool {
	if arg == "help" || arg == "completion" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == arg {
			return true
		}
	}
	return false
}
