// File: caep/source.go
package caep

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// extractConfigFlag pulls an optional --config argument out of args before
// the main flag surface exists. Both "--config path" and "--config=path"
// forms are accepted; the remaining tokens are returned for the main pass.
func extractConfigFlag(args []string) (string, []string) {
	rest := make([]string, 0, len(args))
	path := ""
	for i := 0; i < len(args); i++ {
		if args[i] == "--config" && i+1 < len(args) {
			path = args[i+1]
			i++
			continue
		}
		if strings.HasPrefix(args[i], "--config=") {
			path = strings.TrimPrefix(args[i], "--config=")
			continue
		}
		rest = append(rest, args[i])
	}
	return path, rest
}

// envKey returns the environment variable consulted for a field name:
// uppercase, with hyphens replaced by underscores.
func envKey(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// environMap snapshots the process environment as a plain map, so the
// resolver only ever sees an explicit read-only input.
func environMap() map[string]string {
	environ := os.Environ()
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}

// detectFileFormat determines the file format from the extension.
// INI is the primary format and the fallback.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "ini"
	}
}

// loadSection reads the configuration file and returns the named section
// merged over the file's DEFAULT layer, with section keys winning.
func loadSection(path, section string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	switch detectFileFormat(path) {
	case "toml":
		return tomlSection(data, path, section)
	case "yaml":
		return yamlSection(data, path, section)
	default:
		return iniSection(data, path, section)
	}
}

// iniSection merges the [DEFAULT] section with the named section.
func iniSection(data []byte, path, section string) (map[string]string, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ini config file %q: %w", path, err)
	}

	out := make(map[string]string)
	for _, key := range file.Section(ini.DefaultSection).Keys() {
		out[key.Name()] = key.Value()
	}
	if sec, err := file.GetSection(section); err == nil {
		for _, key := range sec.Keys() {
			out[key.Name()] = key.Value()
		}
	}
	return out, nil
}

// tomlSection treats top-level scalar keys as the DEFAULT layer and a
// table named after the section as the overlay.
func tomlSection(data []byte, path, section string) (map[string]string, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse toml config file %q: %w", path, err)
	}
	return sectionFromMap(raw, section), nil
}

// yamlSection mirrors tomlSection for YAML documents.
func yamlSection(data []byte, path, section string) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml config file %q: %w", path, err)
	}
	return sectionFromMap(raw, section), nil
}

// sectionFromMap flattens top-level scalars as the fallback layer and
// overlays the named sub-table. Values are rendered to strings so they
// follow the same coercion path as ini and environment values.
func sectionFromMap(raw map[string]any, section string) map[string]string {
	out := make(map[string]string)
	for k, v := range raw {
		if _, isMap := v.(map[string]any); isMap {
			continue
		}
		out[k] = formatValue(v)
	}
	if tbl, ok := raw[section].(map[string]any); ok {
		for k, v := range tbl {
			if _, isMap := v.(map[string]any); isMap {
				continue
			}
			out[k] = formatValue(v)
		}
	}
	return out
}
