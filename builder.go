// File: caep/builder.go
package caep

import "io"

// Builder provides a fluent interface for assembling Load options.
type Builder struct {
	opts Options
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithName sets the program name used in usage output.
func (b *Builder) WithName(name string) *Builder {
	b.opts.Name = name
	return b
}

// WithDescription sets the description shown above the flag usage.
func (b *Builder) WithDescription(description string) *Builder {
	b.opts.Description = description
	return b
}

// WithEpilog appends text below the flag usage.
func (b *Builder) WithEpilog(epilog string) *Builder {
	b.opts.Epilog = epilog
	return b
}

// WithConfigFile sets the ID and file name used for the default
// configuration file search.
func (b *Builder) WithConfigFile(configID, configName string) *Builder {
	b.opts.ConfigID = configID
	b.opts.ConfigName = configName
	return b
}

// WithSection selects the configuration file section.
func (b *Builder) WithSection(section string) *Builder {
	b.opts.Section = section
	return b
}

// WithArgs sets the command-line arguments to parse.
func (b *Builder) WithArgs(args []string) *Builder {
	if args == nil {
		args = []string{}
	}
	b.opts.Args = args
	return b
}

// WithEnviron injects an explicit environment snapshot.
func (b *Builder) WithEnviron(environ map[string]string) *Builder {
	if environ == nil {
		environ = map[string]string{}
	}
	b.opts.Environ = environ
	return b
}

// WithOutput redirects error and usage text.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.opts.Output = w
	return b
}

// RaiseOnValidationError makes Load return validation failures as a
// *ValidationError instead of printing usage and exiting.
func (b *Builder) RaiseOnValidationError() *Builder {
	b.opts.RaiseOnValidationError = true
	return b
}

// Load resolves the configuration for target with the accumulated options.
func (b *Builder) Load(target any) error {
	return Load(target, b.opts)
}
