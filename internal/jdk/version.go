package jdk

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// See JEP 223. Both patterns strip the historical "1." epoch.
var (
	majorVersionRe = regexp.MustCompile(`^(?:1\.)?(\d+).*$`)
	versionRe      = regexp.MustCompile(`^(?:1\.)?(\d+)(\.\d+)?([.+_-]\w+)?([.+_-]\w+)?([.+_-]\w+)?$`)

	// embeddedVersionRe finds a version inside a directory or registry key name.
	embeddedVersionRe = regexp.MustCompile(`\d+(?:\.\d+)*(?:_\d+)?(?:[+-]\d+)?`)

	// versionBannerRe matches the first line of a `java -version` banner:
	// java version "1.6.0_45" from Sun and Oracle builds, openjdk version
	// "11.0.2" 2019-01-15 from OpenJDK builds.
	versionBannerRe = regexp.MustCompile(`(?m)^(?:openjdk|java) version "([^"]+)"`)
)

// ParseError reports a version string that does not map to a known bucket.
type ParseError struct {
	Raw   string
	Match string // captured major, empty when the pattern did not match
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot recognize version string '%s' (found version '%s')", e.Raw, e.Match)
}

// ExtractMajorBucket classifies a raw version string into its bucket.
// "1.8.0_231" and "8u231" both land in JDK_8; "11.0.2+9" in JDK_11.
func ExtractMajorBucket(raw string) (Bucket, error) {
	m := majorVersionRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, &ParseError{Raw: raw}
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &ParseError{Raw: raw, Match: m[1]}
	}
	b, ok := BucketForMajor(major)
	if !ok {
		return 0, &ParseError{Raw: raw, Match: m[1]}
	}
	return b, nil
}

// ExtractNumericComponents returns the comparable numeric form of raw:
// the major, then the minor and up to three qualifier groups when present.
// A group without digits counts as 0. A string that does not match yields nil.
func ExtractNumericComponents(raw string) []int {
	idx := versionRe.FindStringSubmatchIndex(raw)
	if idx == nil {
		return nil
	}
	var out []int
	for g := 1; g*2 < len(idx); g++ {
		start, end := idx[g*2], idx[g*2+1]
		if start < 0 {
			continue
		}
		out = append(out, digitsOf(raw[start:end]))
	}
	return out
}

func digitsOf(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// CompareVersions orders two raw version strings, returning -1, 0 or 1.
//
// Components are compared position by position. When one sequence is a
// prefix of the other the longer one is greater, so "1.8.0" < "1.8.0_1".
func CompareVersions(left, right string) int {
	if left == right {
		return 0
	}
	l := ExtractNumericComponents(left)
	r := ExtractNumericComponents(right)
	for i := 0; i < len(l) && i < len(r); i++ {
		switch {
		case l[i] < r[i]:
			return -1
		case l[i] > r[i]:
			return 1
		}
	}
	switch {
	case len(r) > len(l):
		return -1
	case len(l) > len(r):
		return 1
	}
	return 0
}

// FindVersion returns the leftmost version-like substring of text, or ""
// if there is none. "jdk1.8.0_231" gives "1.8.0_231", "java-9-openjdk" gives "9".
func FindVersion(text string) string {
	return embeddedVersionRe.FindString(text)
}

// ParseVersionOutput returns the quoted version of a `java -version` banner,
// which the JVM prints on stderr. The runtime and VM lines that follow it are
// ignored.
func ParseVersionOutput(output string) (string, error) {
	m := versionBannerRe.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("no java version banner in output: %q", strings.TrimSpace(output))
	}
	return m[1], nil
}

// ReadReleaseVersion reads JAVA_VERSION from the release file at the root
// of a JDK home.
func ReadReleaseVersion(home string) (string, error) {
	path := filepath.Join(home, "release")
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	version := strings.Trim(v.GetString("JAVA_VERSION"), `"`)
	if version == "" {
		return "", fmt.Errorf("no JAVA_VERSION in %s", path)
	}
	return version, nil
}
