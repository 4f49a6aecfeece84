// Package flagx helps several flag sets share one command line: each
// component parses only the flags it owns.
package flagx

import (
	"os"
	"slices"
	"strings"
)

// FilterArgs returns the subset of args that belong to the allowed flags.
// Both "-a value" and "-a=value" forms are kept; a leading "--" is treated
// like "-". A flag followed by another flag (or nothing) is kept alone so
// boolean flags keep working.
func FilterArgs(args []string, allowed []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name := "-" + strings.TrimLeft(arg, "-")
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			if slices.Contains(allowed, name[:eq]) {
				out = append(out, name)
			}
			continue
		}

		if !slices.Contains(allowed, name) {
			continue
		}
		out = append(out, name)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigFileFlag returns the config file path given with -c or -config on
// the process command line, or "".
func ConfigFileFlag() string {
	return configFileFrom(os.Args[1:])
}

func configFileFrom(args []string) string {
	filtered := FilterArgs(args, []string{"-c", "-config"})
	path := ""
	for i := 0; i < len(filtered); i++ {
		name, value, hasValue := strings.Cut(filtered[i], "=")
		if name != "-c" && name != "-config" {
			continue
		}
		if hasValue {
			path = value
			continue
		}
		if i+1 < len(filtered) && !strings.HasPrefix(filtered[i+1], "-") {
			path = filtered[i+1]
			i++
		}
	}
	return path
}
