package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const gradlePropertiesFile = "gradle.properties"

// FindGradleProperties walks up from startDir looking for a gradle.properties file.
// Returns the path to the file if found, or empty string and nil if not found.
func FindGradleProperties(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, gradlePropertiesFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// UserGradleProperties returns the path of the user-wide gradle.properties:
// $GRADLE_USER_HOME/gradle.properties, else ~/.gradle/gradle.properties.
// The file may not exist.
func UserGradleProperties() string {
	if v := os.Getenv("GRADLE_USER_HOME"); v != "" {
		return filepath.Join(v, gradlePropertiesFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gradle", gradlePropertiesFile)
}

// WriteGradleProperty sets name=value in dir/gradle.properties, replacing an
// existing assignment of name or appending one, and returns the file path.
func WriteGradleProperty(dir, name, value string) (string, error) {
	path := filepath.Join(dir, gradlePropertiesFile)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	// Backslash is the properties escape character.
	line := name + "=" + strings.ReplaceAll(value, `\`, `\\`)
	var lines []string
	if trimmed := strings.TrimRight(string(data), "\n"); trimmed != "" {
		lines = strings.Split(trimmed, "\n")
	}
	replaced := false
	for i, l := range lines {
		key, _, ok := strings.Cut(l, "=")
		if ok && strings.TrimSpace(key) == name {
			lines[i] = line
			replaced = true
		}
	}
	if !replaced {
		lines = append(lines, line)
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
