// File: caep/load.go
package caep

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

// Options controls one configuration resolution pass.
type Options struct {
	// Name is the program name shown in usage output. Defaults to the
	// base name of os.Args[0].
	Name string

	// Description is printed above the flag usage.
	Description string

	// Epilog is appended below the flag usage.
	Epilog string

	// ConfigID and ConfigName locate the default configuration file as
	// $XDG_CONFIG_HOME/<ConfigID>/<ConfigName> (~/.config when unset),
	// falling back to /etc/<ConfigName>. Both must be given together;
	// an explicit --config argument overrides the search. Leave both
	// empty to skip file loading.
	ConfigID   string
	ConfigName string

	// Section selects the file section layered over [DEFAULT]. Without
	// a section name the file is not consulted at all.
	Section string

	// Args are the raw command-line tokens. nil means os.Args[1:]; pass
	// an empty slice to parse nothing.
	Args []string

	// Environ is the environment snapshot consulted for overrides.
	// nil means the current process environment. Presence of a key
	// counts as an override, even with an empty value.
	Environ map[string]string

	// RaiseOnValidationError returns validation failures as a
	// *ValidationError instead of printing them with usage and exiting.
	RaiseOnValidationError bool

	// Output receives error and usage text. Defaults to os.Stderr.
	Output io.Writer
}

// exit is swapped out in tests.
var exit = os.Exit

// Load resolves the configuration for target by merging its declared
// defaults, the configuration file, environment variables and command-line
// arguments, in that order of increasing precedence, then validates the
// result.
//
// target must be a non-nil pointer to a flat struct; its field values are
// the declared defaults. Field names, collection delimiters and help text
// come from struct tags (`caep`, `split`, `kvsplit`, `min`, `help`), and
// `validate` tags are enforced after the merge.
//
// On validation failure Load prints one line per invalid field followed by
// the usage text and exits with status 1, unless
// Options.RaiseOnValidationError is set, in which case the
// *ValidationError is returned for the caller to handle.
func Load(target any, opts Options) error {
	if (opts.ConfigID == "") != (opts.ConfigName == "") {
		return fmt.Errorf("%w: config ID and config name must be specified together", ErrArgument)
	}
	if opts.Args == nil {
		opts.Args = os.Args[1:]
	}
	if opts.Environ == nil {
		opts.Environ = environMap()
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Name == "" {
		opts.Name = filepath.Base(os.Args[0])
	}

	fields, err := fieldsFromStruct(target)
	if err != nil {
		return err
	}

	fs := buildFlagSet(opts.Name, fields)
	fs.SetOutput(opts.Output)
	fs.Usage = func() {
		fmt.Fprint(opts.Output, usageText(fs, opts.Description, opts.Epilog))
	}

	snap, err := loadSources(fields, opts)
	if err != nil {
		return err
	}

	resolved := make(map[string]any, len(fields))
	for _, f := range fields {
		envVal, haveEnv := snap.env[f.Name]
		secVal, haveSec := snap.section[f.Name]

		v, err := resolveDefault(f, envVal, haveEnv, secVal, haveSec)
		if err != nil {
			return err
		}
		if v != nil {
			resolved[f.Name] = v
		}
	}
	if err := applyResolved(fs, fields, resolved); err != nil {
		return err
	}

	if err := fs.Parse(snap.args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			exit(0)
			return nil
		}
		return fmt.Errorf("%w: %w", ErrCLIParse, err)
	}

	final, err := finalValues(fs, fields, resolved)
	if err != nil {
		return err
	}
	if err := decodeInto(final, target); err != nil {
		return err
	}

	if verr := validateFinal(target, fields); verr != nil {
		if opts.RaiseOnValidationError {
			return verr
		}
		for _, f := range verr.Fields {
			fmt.Fprintf(opts.Output, "%s for --%s\n\n", f.Message, f.Flag)
		}
		fs.Usage()
		exit(1)
		return verr
	}

	return nil
}

// loadSources builds the source snapshot for one resolution pass: the file
// section (located via --config or the default search), and the
// environment values for declared fields.
func loadSources(fields []*Field, opts Options) (*snapshot, error) {
	path, rest := extractConfigFlag(opts.Args)
	if path == "" && opts.ConfigID != "" {
		path = findDefaultFile(opts.ConfigID, opts.ConfigName)
	}

	snap := &snapshot{
		section: make(map[string]string),
		env:     make(map[string]string),
		args:    rest,
	}

	if path != "" && opts.Section != "" {
		section, err := loadSection(path, opts.Section)
		if err != nil {
			return nil, err
		}
		snap.section = section
	}

	for _, f := range fields {
		if v, ok := opts.Environ[envKey(f.Name)]; ok {
			snap.env[f.Name] = v
		}
	}

	return snap, nil
}

// finalValues assembles the fully-typed value for every field. Collection
// fields are split here regardless of which source supplied them, so a raw
// string typed on the command line takes the exact same path as a file or
// environment value.
func finalValues(fs *pflag.FlagSet, fields []*Field, resolved map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		fl := fs.Lookup(f.Flag)

		switch f.Kind {
		case KindList:
			vals, err := splitList(f.Name, fl.Value.String(), f.Elem, f.Split, f.MinSize)
			if err != nil {
				return nil, err
			}
			out[f.Name] = vals

		case KindMap:
			vals, err := splitMap(f.Name, fl.Value.String(), f.Elem, f.Split, f.KVSplit, f.MinSize)
			if err != nil {
				return nil, err
			}
			out[f.Name] = vals

		default:
			if !fl.Changed {
				if _, ok := resolved[f.Name]; !ok {
					// No source supplied a value; leave the field
					// alone for post-merge validation to judge.
					continue
				}
			}
			v, err := coerceScalar(f.Kind, fl.Value.String())
			if err != nil {
				return nil, err
			}
			out[f.Name] = v
		}
	}
	return out, nil
}
