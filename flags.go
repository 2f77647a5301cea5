// File: caep/flags.go
package caep

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// buildFlagSet registers one long-form flag per field. pflag only matches
// flags exactly, so file, environment and command-line names stay
// unambiguous without any abbreviation handling.
func buildFlagSet(name string, fields []*Field) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	for _, f := range fields {
		switch f.Kind {
		case KindBool:
			def, _ := f.Default.(bool)
			fs.Bool(f.Flag, def, f.Help)
			// A bare flag flips the declared default: --enabled sets a
			// default-false field, and clears a default-true one.
			fs.Lookup(f.Flag).NoOptDefVal = strconv.FormatBool(!def)
		case KindInt:
			fs.Int(f.Flag, 0, f.Help)
		case KindFloat:
			fs.Float64(f.Flag, 0, f.Help)
		default:
			// Strings, lists and maps. Collections arrive as raw
			// delimited strings and are split after parsing.
			fs.String(f.Flag, "", f.Help)
		}
	}

	return fs
}

// applyResolved injects resolved defaults into the flag set. Values set
// here do not mark the flag as changed, so anything typed on the command
// line overrides them during Parse.
func applyResolved(fs *pflag.FlagSet, fields []*Field, resolved map[string]any) error {
	for _, f := range fields {
		v, ok := resolved[f.Name]
		if !ok || v == nil {
			continue
		}

		fl := fs.Lookup(f.Flag)
		s := formatValue(v)
		if err := fl.Value.Set(s); err != nil {
			return fmt.Errorf("invalid default %q for --%s: %w", s, f.Flag, err)
		}
		fl.DefValue = s
	}
	return nil
}

// usageText renders the full help output: description, flag usage, epilog.
func usageText(fs *pflag.FlagSet, description, epilog string) string {
	var b strings.Builder
	if description != "" {
		b.WriteString(description)
		b.WriteString("\n\n")
	}
	b.WriteString("Usage of ")
	b.WriteString(fs.Name())
	b.WriteString(":\n")
	b.WriteString(fs.FlagUsages())
	if epilog != "" {
		b.WriteString("\n")
		b.WriteString(epilog)
		b.WriteString("\n")
	}
	return b.String()
}
