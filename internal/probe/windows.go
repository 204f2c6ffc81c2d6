package probe

import (
	"errors"

	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/sirupsen/logrus"
)

// WindowsRegistryPaths are the HKEY_LOCAL_MACHINE subtrees JDK installers
// register under.
var WindowsRegistryPaths = []string{
	`SOFTWARE\JavaSoft\Java Development Kit`,
	`SOFTWARE\Wow6432Node\JavaSoft\Java Development Kit`,
	`SOFTWARE\JavaSoft\JDK`,
	`SOFTWARE\Wow6432Node\JavaSoft\JDK`,
}

// ErrRegistryUnavailable is returned by the registry reader on hosts
// without a Windows registry.
var ErrRegistryUnavailable = errors.New("windows registry is not available on this platform")

// RegistryReader reads keys under HKEY_LOCAL_MACHINE.
type RegistryReader interface {
	SubKeys(path string) ([]string, error)
	StringValue(path, name string) (string, error)
}

// Windows reads JDK homes from the registry.
type Windows struct {
	Paths    []string
	registry RegistryReader
	log      logrus.FieldLogger
}

// NewWindows returns a prober over WindowsRegistryPaths using
// opts.Registry, or the host registry when it is nil.
func NewWindows(opts Options) *Windows {
	reg := opts.Registry
	if reg == nil {
		reg = systemRegistry{}
	}
	return &Windows{
		Paths:    append([]string{}, WindowsRegistryPaths...),
		registry: reg,
		log:      opts.logger(),
	}
}

func (w *Windows) Name() string { return "windows" }

// Enumerate emits each subkey whose JavaHome value names an existing
// directory with a java executable in bin. Missing paths and unreadable
// keys are skipped.
func (w *Windows) Enumerate() []Installation {
	var found []Installation
	for _, regPath := range w.Paths {
		keys, err := w.registry.SubKeys(regPath)
		if err != nil {
			// missing nodes are expected on most machines
			w.log.WithField("path", regPath).Info("registry path unavailable: ", err)
			continue
		}
		for _, key := range keys {
			if inst, ok := w.readKey(regPath, key); ok {
				found = append(found, inst)
			}
		}
	}
	return found
}

func (w *Windows) readKey(regPath, key string) (Installation, bool) {
	log := w.log.WithFields(logrus.Fields{"path": regPath, "key": key})
	javaHome, err := w.registry.StringValue(regPath+`\`+key, "JavaHome")
	if err != nil {
		log.Debug("no JavaHome value: ", err)
		return Installation{}, false
	}
	version := jdk.FindVersion(key)
	if version == "" {
		log.Infof("unable to extract version from possible JDK location: %s (%s)", javaHome, key)
		return Installation{}, false
	}
	if javaHome == "" || !isDir(javaHome) || javaBinary(javaHome) == "" {
		return Installation{}, false
	}
	return Installation{Version: version, ID: key, Home: javaHome}, true
}
