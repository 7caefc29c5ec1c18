// Package flagx contains helpers for working with command-line arguments.
package flagx

import (
	"strings"
)

// FilterArgs returns the subset of args that belongs to the flags listed in
// allowedFlags, preserving the original order. Everything else is dropped,
// including flags registered by other packages, so the caller can hand the
// result to its own flag.FlagSet without tripping over unknown flags.
//
// Two argument shapes are recognized:
//  1. flag and value as separate arguments:  -a :8080
//  2. flag and value joined with '=':        --address=:8080
//
// allowedFlags holds the literal spellings to keep, e.g. []string{"-a", "--address"}.
// The returned slice is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "--flag=value" form: keep the whole argument if the name part matches.
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		// "-flag value" form: keep the flag, and if the next argument is not
		// itself a flag, keep it too as the value.
		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
