package config

import "path/filepath"

// ModuleConfig holds module-specific configuration for documentation files
// under one directory. This allows relaxing the convention for individual
// module families without weakening validation everywhere.
type ModuleConfig struct {
	// IgnoredRules are validation rule identifiers suppressed for this module.
	IgnoredRules []string `yaml:"ignoredRules,omitempty"`

	// IgnorePatterns are path patterns to skip during discovery under this
	// module's directory. Patterns use glob syntax.
	IgnorePatterns []string `yaml:"ignorePatterns,omitempty"`
}

// File represents the structure of the .a11ydoc configuration file.
type File struct {
	// Modules maps directory paths to their module-specific configurations.
	// Keys are paths relative to the scan root (e.g., "tests/images").
	Modules map[string]ModuleConfig `yaml:"modules,omitempty"`

	// Defaults contains default module configuration applied to all modules
	// unless overridden in the module-specific configuration.
	Defaults ModuleConfig `yaml:"defaults,omitempty"`
}

// GetModuleConfig returns the configuration for a documentation file path.
// It merges the configuration of the deepest matching directory with the
// defaults.
func (cf *File) GetModuleConfig(path string) ModuleConfig {
	// Start with defaults
	result := cf.Defaults

	// Find the deepest configured directory containing the path
	dir := filepath.ToSlash(filepath.Dir(path))
	bestLen := -1
	var best ModuleConfig
	for key, mc := range cf.Modules {
		key = filepath.ToSlash(key)
		if dir != key && !hasPathPrefix(dir, key) {
			continue
		}
		if len(key) > bestLen {
			bestLen = len(key)
			best = mc
		}
	}
	if bestLen < 0 {
		return result
	}

	if len(best.IgnoredRules) > 0 {
		result.IgnoredRules = best.IgnoredRules
	}
	if len(best.IgnorePatterns) > 0 {
		result.IgnorePatterns = best.IgnorePatterns
	}
	return result
}

// IgnoredRulesFor returns the combined ignored rules for a path: the global
// list plus the module-specific list, deduplicated.
func (cf *File) IgnoredRulesFor(path string, global []string) []string {
	mc := cf.GetModuleConfig(path)

	seen := make(map[string]bool, len(global)+len(mc.IgnoredRules))
	var rules []string
	for _, r := range append(append([]string{}, global...), mc.IgnoredRules...) {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		rules = append(rules, r)
	}
	return rules
}

// hasPathPrefix reports whether path is inside the directory dir.
// Both arguments must use forward slashes.
func hasPathPrefix(path, dir string) bool {
	if dir == "." || dir == "" {
		return true
	}
	if len(path) <= len(dir) {
		return false
	}
	return path[:len(dir)] == dir && path[len(dir)] == '/'
}
