package jdk

import "strings"

// Bucket is one recognized major Java version slot in a resolution result.
type Bucket int

const (
	JDK6 Bucket = iota + 1
	JDK7
	JDK8
	JDK9
	JDK10
	JDK11
)

type bucketInfo struct {
	name      string
	major     int
	mandatory bool
	hintNames []string // canonical name first, then aliases
}

var bucketTable = map[Bucket]bucketInfo{
	JDK6:  {name: "JDK_6", major: 6, mandatory: true, hintNames: []string{"JDK_6", "JDK_16"}},
	JDK7:  {name: "JDK_7", major: 7, mandatory: true, hintNames: []string{"JDK_7", "JDK_17"}},
	JDK8:  {name: "JDK_8", major: 8, mandatory: true, hintNames: []string{"JDK_8", "JDK_18", "JAVA_HOME"}},
	JDK9:  {name: "JDK_9", major: 9, mandatory: true, hintNames: []string{"JDK_9", "JDK_19"}},
	JDK10: {name: "JDK_10", major: 10, hintNames: []string{"JDK_10"}},
	JDK11: {name: "JDK_11", major: 11, hintNames: []string{"JDK_11"}},
}

var allBuckets = []Bucket{JDK6, JDK7, JDK8, JDK9, JDK10, JDK11}

// hintIndex maps every hint name (canonical or alias) to its bucket.
var hintIndex = func() map[string]Bucket {
	idx := make(map[string]Bucket)
	for _, b := range allBuckets {
		for _, n := range bucketTable[b].hintNames {
			idx[n] = b
		}
	}
	return idx
}()

// Buckets returns every known bucket in ascending major order.
func Buckets() []Bucket {
	out := make([]Bucket, len(allBuckets))
	copy(out, allBuckets)
	return out
}

func (b Bucket) String() string {
	if info, ok := bucketTable[b]; ok {
		return info.name
	}
	return "JDK_UNKNOWN"
}

// Major returns the Java feature release number of the bucket.
func (b Bucket) Major() int { return bucketTable[b].major }

// Mandatory reports whether resolution must produce a candidate for b.
func (b Bucket) Mandatory() bool { return bucketTable[b].mandatory }

// HintNames returns the hint names that satisfy b, in precedence order.
func (b Bucket) HintNames() []string {
	names := bucketTable[b].hintNames
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// MarshalText renders the bucket by name so maps keyed by Bucket encode
// as JSON objects.
func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// BucketForMajor returns the bucket holding the given major version.
func BucketForMajor(major int) (Bucket, bool) {
	for _, b := range allBuckets {
		if bucketTable[b].major == major {
			return b, true
		}
	}
	return 0, false
}

// LookupHint returns the bucket a hint name refers to.
func LookupHint(name string) (Bucket, bool) {
	b, ok := hintIndex[name]
	return b, ok
}

// ParseBucket accepts a canonical bucket name, an alias, or a bare major
// number ("8").
func ParseBucket(s string) (Bucket, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if b, ok := LookupHint(s); ok {
		return b, true
	}
	for _, b := range allBuckets {
		if s == strings.TrimPrefix(bucketTable[b].name, "JDK_") {
			return b, true
		}
	}
	return 0, false
}

// HintNames returns every recognized hint name across all buckets.
func HintNames() []string {
	var names []string
	for _, b := range allBuckets {
		names = append(names, bucketTable[b].hintNames...)
	}
	return names
}
