// File: caep/resolve.go
package caep

import "strings"

// snapshot captures the raw inputs for one resolution pass: the selected
// file section merged over its DEFAULT layer, the environment values keyed
// by canonical field name, and the command-line tokens left after the
// early --config extraction. Built once per Load, read-only afterwards.
type snapshot struct {
	section map[string]string
	env     map[string]string
	args    []string
}

// resolveDefault computes the effective default for one field by layering
// the file section value and the environment value over the declared
// default, in that order. The result becomes the flag surface's default,
// so anything actually typed on the command line still wins during Parse.
//
// List and map fields are left as raw strings here; splitting happens
// after the command line is parsed so that every source takes the same
// path. Returns nil when no source supplied a value.
func resolveDefault(f *Field, envVal string, haveEnv bool, secVal string, haveSec bool) (any, error) {
	cur := f.Default
	if haveSec {
		cur = secVal
	}
	if haveEnv {
		// Environment outranks the file section.
		cur = envVal
	}

	if f.Kind == KindBool {
		if s, ok := cur.(string); ok {
			switch strings.ToLower(s) {
			case "true", "yes":
				cur = true
			case "false", "no":
				cur = false
			}
			// Any other string is left as-is; the coercion below
			// rejects it loudly instead of guessing.
		}
	}

	if f.Kind == KindList || f.Kind == KindMap {
		return cur, nil
	}

	if cur == nil {
		return nil, nil
	}
	return coerceScalar(f.Kind, cur)
}
