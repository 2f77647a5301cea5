// File: caep/convenience.go
package caep

// Quick resolves configuration for target with the standard file search
// locations and the exit-on-validation-error policy. This is the
// recommended entry point for command-line programs.
func Quick(target any, description, configID, configName, section string) error {
	return Load(target, Options{
		Description: description,
		ConfigID:    configID,
		ConfigName:  configName,
		Section:     section,
	})
}
