package probe

import (
	"errors"
	"os/exec"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultJavaHomeCommand lists installed JVMs on macOS.
const DefaultJavaHomeCommand = "/usr/libexec/java_home"

// Line formats printed by `java_home -V`, oldest first:
//
//	1.8.0_292, x86_64:	"AdoptOpenJDK 8"	/Library/Java/JavaVirtualMachines/adoptopenjdk-8.jdk/Contents/Home
//	1.6.0_65-b14-468 (x86_64): /System/Library/Java/JavaVirtualMachines/1.6.0.jdk/Contents/Home
//	17.0.1 (x86_64) "Oracle Corporation" - "Java SE 17.0.1" /Library/Java/JavaVirtualMachines/jdk-17.0.1.jdk/Contents/Home
var javaHomeLineRes = []*regexp.Regexp{
	regexp.MustCompile(`^\s+(\S+),\s+(\S+):\s+".*?"\s+(.+)$`),
	regexp.MustCompile(`^\s+(\S+)\s+\((.*?)\):\s+(.+)$`),
	regexp.MustCompile(`^\s+(\S+)\s+\((.*?)\)\s+".*?"\s+-\s+".*?"\s+(.+)$`),
}

// MacOS asks the java_home utility for installed JVMs.
type MacOS struct {
	Command string
	log     logrus.FieldLogger
}

// NewMacOS returns a prober that runs opts.JavaHomeCommand, or
// DefaultJavaHomeCommand when it is empty.
func NewMacOS(opts Options) *MacOS {
	cmd := opts.JavaHomeCommand
	if cmd == "" {
		cmd = DefaultJavaHomeCommand
	}
	return &MacOS{Command: cmd, log: opts.logger()}
}

func (m *MacOS) Name() string { return "macos" }

func (m *MacOS) Enumerate() []Installation {
	// java_home writes the list to stderr and exits 1 when it is empty.
	out, err := exec.Command(m.Command, "-V").CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			m.log.WithField("command", m.Command).Debug("java_home unavailable: ", err)
			return nil
		}
	}
	return ParseJavaHomeOutput(string(out))
}

// ParseJavaHomeOutput parses `java_home -V` output. Lines in none of the
// known formats, such as the "Matching Java Virtual Machines" header, are
// skipped.
func ParseJavaHomeOutput(content string) []Installation {
	var found []Installation
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		for _, re := range javaHomeLineRes {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			found = append(found, Installation{
				Version: m[1],
				ID:      m[1] + " " + m[2],
				Home:    strings.TrimSpace(m[3]),
			})
			break
		}
	}
	return found
}
