// Package hints collects explicit JDK locations from the places a build
// configures them: command-line flags, the environment, gradle.properties
// files and the jdkfind config file.
package hints

import (
	"fmt"
	"os"
	"strings"

	"github.com/magiconair/properties"
)

// Source looks up raw hint values by name.
type Source interface {
	Name() string
	Lookup(name string) (string, bool)
}

// Hint is a collected hint value and the source it came from.
type Hint struct {
	Value  string `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

// Set maps hint names to collected hints.
type Set map[string]Hint

// Values returns the bare name → path mapping.
func (s Set) Values() map[string]string {
	out := make(map[string]string, len(s))
	for name, h := range s {
		out[name] = h.Value
	}
	return out
}

// Collect looks up every name in the sources, in order. The first source
// holding a non-empty value for a name wins.
func Collect(names []string, sources ...Source) Set {
	set := make(Set)
	for _, name := range names {
		for _, src := range sources {
			if src == nil {
				continue
			}
			v, ok := src.Lookup(name)
			if !ok || strings.TrimSpace(v) == "" {
				continue
			}
			set[name] = Hint{Value: v, Source: src.Name()}
			break
		}
	}
	return set
}

// gradleEnvPrefix is how Gradle exposes project properties via the environment.
const gradleEnvPrefix = "ORG_GRADLE_PROJECT_"

// EnvSource reads the process environment. A name is looked up as is,
// then with the ORG_GRADLE_PROJECT_ prefix.
type EnvSource struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

func (EnvSource) Name() string { return "env" }

func (e EnvSource) Lookup(name string) (string, bool) {
	lookup := e.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(name); ok && v != "" {
		return v, true
	}
	return lookup(gradleEnvPrefix + name)
}

// MapSource is a fixed set of values, such as parsed flags or the config
// file's [hints] table.
type MapSource struct {
	Label  string
	Values map[string]string
}

func (m MapSource) Name() string { return m.Label }

func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m.Values[name]
	return v, ok
}

// ParseFlags turns NAME=PATH pairs into a MapSource labelled "flag".
func ParseFlags(pairs []string) (MapSource, error) {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, path, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return MapSource{}, fmt.Errorf("invalid hint %q: expected NAME=PATH", p)
		}
		values[name] = path
	}
	return MapSource{Label: "flag", Values: values}, nil
}

// PropertiesSource reads a Java properties file such as gradle.properties.
type PropertiesSource struct {
	path  string
	props *properties.Properties
}

// LoadProperties parses the properties file at path. ${...} references are
// left as written.
func LoadProperties(path string) (*PropertiesSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := l.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &PropertiesSource{path: path, props: props}, nil
}

func (p *PropertiesSource) Name() string { return p.path }

func (p *PropertiesSource) Lookup(name string) (string, bool) {
	return p.props.Get(name)
}
