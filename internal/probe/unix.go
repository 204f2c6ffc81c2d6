package probe

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/sirupsen/logrus"
)

// UnixRoots are the conventional JDK parent directories, scanned in order.
var UnixRoots = []string{
	"/usr/lib/jvm",       // deb, Arch
	"/opt",               // rpm, Gentoo, HP/UX
	"/usr/lib",           // Slackware 32
	"/usr/lib64",         // Slackware 64
	"/usr/local",         // OpenBSD, FreeBSD
	"/usr/pkg/java",      // NetBSD
	"/usr/jdk/instances", // Solaris
}

var unixJDKDirRe = regexp.MustCompile(`(?i)jdk|jre|java|zulu`)

// Unix scans immediate subdirectories of a list of roots.
type Unix struct {
	Roots []string
	log   logrus.FieldLogger
}

// NewUnix returns a prober over UnixRoots followed by opts.ExtraRoots.
func NewUnix(opts Options) *Unix {
	roots := append([]string{}, UnixRoots...)
	roots = append(roots, opts.ExtraRoots...)
	return &Unix{Roots: roots, log: opts.logger()}
}

func (u *Unix) Name() string { return "unix" }

// Enumerate returns one installation per distinct real home directory.
// A directory qualifies when its name looks like a JDK and it contains
// bin/java.
func (u *Unix) Enumerate() []Installation {
	var found []Installation
	seen := make(map[string]bool)

	for _, root := range u.Roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			u.log.WithField("root", root).Info("skipping JDK root: ", err)
			continue
		}
		for _, e := range entries {
			if !unixJDKDirRe.MatchString(e.Name()) {
				continue
			}
			home := filepath.Join(root, e.Name())
			if !isDir(home) {
				continue
			}
			real, err := filepath.EvalSymlinks(home)
			if err != nil || seen[real] {
				continue
			}
			javaPath := javaBinary(home)
			if javaPath == "" {
				continue
			}
			version := u.versionOf(home, e.Name(), javaPath)
			if version == "" {
				u.log.WithField("home", home).Info("unable to determine version of possible JDK location")
				continue
			}
			seen[real] = true
			found = append(found, Installation{Version: version, ID: e.Name(), Home: home})
		}
	}
	return found
}

// versionOf tries the release file, then the directory name, then the
// java binary itself.
func (u *Unix) versionOf(home, dirName, javaPath string) string {
	if v, err := jdk.ReadReleaseVersion(home); err == nil {
		return v
	}
	if v := jdk.FindVersion(dirName); v != "" {
		if _, err := jdk.ExtractMajorBucket(v); err == nil {
			return v
		}
	}
	v, err := runJavaVersion(javaPath)
	if err != nil {
		u.log.WithField("java", javaPath).Debug("java -version failed: ", err)
		return ""
	}
	return v
}
