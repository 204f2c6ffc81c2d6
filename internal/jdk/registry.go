package jdk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Candidate is the installation selected for one bucket.
type Candidate struct {
	Explicit bool   `json:"explicit" yaml:"explicit"`
	Bucket   Bucket `json:"bucket" yaml:"bucket"`
	Version  string `json:"version" yaml:"version"`
	ID       string `json:"id" yaml:"id"`
	Home     string `json:"home" yaml:"home"`
}

// Registry accumulates candidates for one resolution run, keeping at most
// one candidate per bucket. It is not safe for concurrent use.
type Registry struct {
	log      logrus.FieldLogger
	byBucket map[Bucket]*Candidate
}

// NewRegistry returns an empty registry that reports diagnostics to log.
// A nil log discards them.
func NewRegistry(log logrus.FieldLogger) *Registry {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Registry{
		log:      log,
		byBucket: make(map[Bucket]*Candidate),
	}
}

// SeedExplicit inserts an explicit candidate for every bucket named by a
// non-empty hint. Every present hint is resolved, and when several of a
// bucket's hint names are present the earliest in HintNames fills the slot.
// A hint path that cannot be resolved to an existing directory aborts
// seeding with ErrHintResolution.
func (r *Registry) SeedExplicit(hints map[string]string) error {
	for name := range hints {
		if _, ok := LookupHint(name); !ok {
			r.log.WithField("hint", name).Debug("ignoring unrecognized JDK hint")
		}
	}

	for _, b := range allBuckets {
		for _, name := range bucketTable[b].hintNames {
			path := strings.TrimSpace(hints[name])
			if path == "" {
				continue
			}
			home, err := realPath(path)
			if err != nil {
				return hintResolutionError(err, name, path)
			}
			if prev, ok := r.byBucket[b]; ok && prev.Explicit {
				r.log.WithFields(logrus.Fields{"bucket": b, "hint": name, "winner": prev.ID}).Debug("shadowed JDK hint")
				continue
			}
			version, _ := ReadReleaseVersion(home)
			r.byBucket[b] = &Candidate{
				Explicit: true,
				Bucket:   b,
				Version:  version,
				ID:       name,
				Home:     home,
			}
			r.log.WithFields(logrus.Fields{"bucket": b, "hint": name, "home": home}).Debug("explicit JDK")
		}
	}
	return nil
}

// AddIfBetter offers a discovered installation to the registry and reports
// whether it was stored. It is stored when its bucket is empty, or when the
// bucket holds a non-explicit candidate that it beats: a strictly greater
// version, or an equal version where the new id marks a 64-bit build and
// the stored one does not. A tie between two 64-bit ids keeps the stored
// candidate, so the first 64-bit build seen for a version wins.
func (r *Registry) AddIfBetter(version, id, home string) bool {
	b, err := ExtractMajorBucket(version)
	if err != nil {
		r.log.WithField("home", home).Info(err.Error())
		return false
	}

	prev, ok := r.byBucket[b]
	if !ok {
		r.byBucket[b] = &Candidate{Bucket: b, Version: version, ID: id, Home: home}
		return true
	}
	if prev.Explicit {
		return false
	}

	cmp := CompareVersions(prev.Version, version)
	if cmp < 0 || (cmp == 0 && is64Bit(id) && !is64Bit(prev.ID)) {
		prev.Version = version
		prev.ID = id
		prev.Home = home
		return true
	}
	return false
}

func is64Bit(id string) bool {
	return strings.Contains(id, "64")
}

// Resolve returns a snapshot of the registry. Later calls to AddIfBetter
// do not affect a returned Resolution.
func (r *Registry) Resolve() Resolution {
	res := make(Resolution, len(r.byBucket))
	for b, c := range r.byBucket {
		res[b] = *c
	}
	return res
}

// Resolution maps each resolved bucket to its candidate.
type Resolution map[Bucket]Candidate

// Missing returns the mandatory buckets absent from res, in bucket order.
func (res Resolution) Missing() []Bucket {
	var missing []Bucket
	for _, b := range allBuckets {
		if _, ok := res[b]; !ok && b.Mandatory() {
			missing = append(missing, b)
		}
	}
	return missing
}

// Check returns an ErrMandatoryMissing error wrapping a *MissingError when
// a mandatory bucket is absent. Missing optional buckets are not an error.
func (res Resolution) Check() error {
	missing := res.Missing()
	if len(missing) == 0 {
		return nil
	}
	return missingError(missing)
}

// Sorted returns the candidates in bucket order.
func (res Resolution) Sorted() []Candidate {
	var out []Candidate
	for _, b := range allBuckets {
		if c, ok := res[b]; ok {
			out = append(out, c)
		}
	}
	return out
}

func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(real)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", real)
	}
	return real, nil
}
