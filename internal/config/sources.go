package config

import (
	"os"

	"github.com/dsmmcken/jdkfind/internal/hints"
	"github.com/sirupsen/logrus"
)

// HintSources returns the hint sources in precedence order:
//  1. flags (from --jdk NAME=PATH)
//  2. environment (NAME, then ORG_GRADLE_PROJECT_NAME)
//  3. gradle.properties walk-up from cwd
//  4. user gradle.properties
//  5. config.toml [hints]
//
// Unreadable properties files are logged and skipped.
func HintSources(flags hints.MapSource, cfg *Config, log logrus.FieldLogger) []hints.Source {
	sources := []hints.Source{flags, hints.EnvSource{}}

	var propertyFiles []string
	if cwd, err := os.Getwd(); err == nil {
		if p, err := FindGradleProperties(cwd); err == nil && p != "" {
			propertyFiles = append(propertyFiles, p)
		}
	}
	if p := UserGradleProperties(); p != "" {
		propertyFiles = append(propertyFiles, p)
	}
	for _, p := range propertyFiles {
		src, err := hints.LoadProperties(p)
		if err != nil {
			if !os.IsNotExist(err) {
				log.WithField("file", p).Warn("ignoring gradle.properties: ", err)
			}
			continue
		}
		sources = append(sources, src)
	}

	if cfg != nil {
		sources = append(sources, hints.MapSource{Label: ConfigPath(), Values: cfg.Hints})
	}
	return sources
}
