// Package resolve runs one JDK resolution pass: explicit hints are seeded
// first, then every installation the prober finds is offered to the
// registry.
package resolve

import (
	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/probe"
	"github.com/sirupsen/logrus"
)

// Options configures a resolution pass.
type Options struct {
	// Hints maps hint names (JDK_8, JAVA_HOME, ...) to paths.
	Hints map[string]string

	// Prober lists discovered installations. Nil means no discovery.
	Prober probe.Prober

	Log logrus.FieldLogger
}

// Result is the outcome of a resolution pass.
type Result struct {
	Resolution jdk.Resolution       `json:"resolution" yaml:"resolution"`
	Prober     string               `json:"prober" yaml:"prober"`
	Discovered []probe.Installation `json:"discovered" yaml:"discovered"`
}

// Run resolves one candidate per bucket. It fails only when an explicit
// hint cannot be resolved; mandatory buckets are checked by the caller
// with Result.Resolution.Check.
func Run(opts Options) (*Result, error) {
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}

	reg := jdk.NewRegistry(log)
	if err := reg.SeedExplicit(opts.Hints); err != nil {
		return nil, err
	}

	prober := opts.Prober
	if prober == nil {
		prober = probe.Disabled{}
	}

	found := prober.Enumerate()
	for _, inst := range found {
		if reg.AddIfBetter(inst.Version, inst.ID, inst.Home) {
			log.WithFields(logrus.Fields{"version": inst.Version, "home": inst.Home}).Debug("candidate accepted")
		}
	}
	log.WithFields(logrus.Fields{"prober": prober.Name(), "found": len(found)}).Debug("discovery finished")

	return &Result{
		Resolution: reg.Resolve(),
		Prober:     prober.Name(),
		Discovered: found,
	}, nil
}
