// Package probe lists JDK installations from the conventional locations of
// each operating system. Probes never fail as a whole: an unreadable
// source contributes no installations and the scan continues.
package probe

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Installation is one JDK found by a probe.
type Installation struct {
	Version string `json:"version" yaml:"version"`
	ID      string `json:"id" yaml:"id"`
	Home    string `json:"home" yaml:"home"`
}

// Prober enumerates the JDK installations visible from one kind of source.
// Order of the result is not significant.
type Prober interface {
	Name() string
	Enumerate() []Installation
}

// Options configures the probes returned by ForOS.
type Options struct {
	// Log receives per-entry diagnostics. Nil discards them.
	Log logrus.FieldLogger

	// ExtraRoots are scanned after the conventional Unix roots.
	ExtraRoots []string

	// Registry overrides the Windows registry reader.
	Registry RegistryReader

	// JavaHomeCommand overrides the macOS java_home utility path.
	JavaHomeCommand string
}

func (o Options) logger() logrus.FieldLogger {
	if o.Log != nil {
		return o.Log
	}
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

// ForOS returns the prober for the given GOOS value.
func ForOS(goos string, opts Options) Prober {
	switch goos {
	case "windows":
		return NewWindows(opts)
	case "darwin":
		return NewMacOS(opts)
	default:
		return NewUnix(opts)
	}
}

// ForHost returns the prober for the running operating system.
func ForHost(opts Options) Prober {
	return ForOS(runtime.GOOS, opts)
}

// Static is a prober over a fixed list of installations.
type Static []Installation

func (s Static) Name() string { return "static" }

func (s Static) Enumerate() []Installation {
	out := make([]Installation, len(s))
	copy(out, s)
	return out
}

// Disabled is a prober that finds nothing. It is used when discovery is
// turned off and only explicit hints count.
type Disabled struct{}

func (Disabled) Name() string { return "disabled" }

func (Disabled) Enumerate() []Installation { return nil }

// javaBinary returns the java executable under home, or "" if neither
// bin/java nor bin/java.exe is a regular file.
func javaBinary(home string) string {
	for _, name := range []string{"java", "java.exe"} {
		p := filepath.Join(home, "bin", name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
