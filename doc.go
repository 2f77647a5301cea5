// File: caep/doc.go

// Package caep merges command-line arguments, environment variables, an
// INI-style configuration file and declared defaults into a single
// validated struct, driven by one declarative schema.
//
// Precedence (lowest to highest):
//  1. Declared defaults (the values held by the target struct)
//  2. Configuration file ([DEFAULT] section, overridden by the named section)
//  3. Environment variables (FOO_BAR for a field named foo_bar)
//  4. Command-line arguments (--foo-bar)
//
// Quick Start:
//
//	type Config struct {
//		StrArg  string         `caep:"str_arg" help:"Required string argument" validate:"required"`
//		Number  int            `caep:"number" help:"Integer with default value"`
//		Enabled bool           `caep:"enabled" help:"Boolean, defaults to false"`
//		Hosts   []string       `caep:"hosts" help:"Comma separated list" min:"1"`
//		Limits  map[string]int `caep:"limits" help:"name:value pairs"`
//	}
//
//	cfg := Config{Number: 1}
//	if err := caep.Quick(&cfg, "My program", "myprog", "myprog.ini", "myprog"); err != nil {
//		log.Fatal(err)
//	}
//
// Configuration file:
//
// The file is located as ~/.config/<configID>/<configName> (honoring
// XDG_CONFIG_HOME) or /etc/<configName>, and can be overridden with
// --config <path>. A [DEFAULT] section provides fallback values for every
// section. TOML and YAML files are also accepted, selected by extension,
// with top-level keys as the fallback layer and a table named after the
// section as the overlay.
//
// Collections:
//
// List and map fields are written as a single delimited string in any
// source ("a,b,c" or "key:1,other:2"). Delimiters can be escaped with a
// backslash and configured per field with the split and kvsplit tags; the
// min tag enforces a minimum element count.
//
// Booleans:
//
// File and environment values true/yes and false/no are accepted. On the
// command line a bare flag flips the declared default: --enabled sets a
// default-false field to true, and clears a default-true field to false.
//
// Validation:
//
// The merge itself treats every field as optional. Required fields and
// other constraints are expressed with `validate` tags and enforced after
// the merge; failures are printed per field together with the usage text
// before exiting, or returned as a *ValidationError when
// Options.RaiseOnValidationError is set.
package caep
