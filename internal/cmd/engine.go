package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/dsmmcken/jdkfind/internal/config"
	"github.com/dsmmcken/jdkfind/internal/hints"
	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/logging"
	"github.com/dsmmcken/jdkfind/internal/probe"
	"github.com/dsmmcken/jdkfind/internal/resolve"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ProberFactory builds the discovery prober for a run. Replaceable in tests.
var ProberFactory = probe.ForHost

// session bundles the per-invocation config and logger.
type session struct {
	cfg *config.Config
	log *logrus.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	log := logging.New(cmd.ErrOrStderr(), verboseFlag, quietFlag, noColorFlag)
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Mark(err, ErrConfig)
	}
	return &session{cfg: cfg, log: log}, nil
}

// prober returns the host prober, or a disabled one when discovery is
// switched off by flag or config.
func (s *session) prober(noProbe bool) probe.Prober {
	if noProbe || s.cfg.Probe.Disabled {
		return probe.Disabled{}
	}
	return ProberFactory(probe.Options{
		Log:        s.log,
		ExtraRoots: s.cfg.Probe.ExtraRoots,
	})
}

// hints collects every known hint name across all sources.
func (s *session) hints(pairs []string) (hints.Set, error) {
	flags, err := hints.ParseFlags(pairs)
	if err != nil {
		return nil, errors.Mark(err, ErrConfig)
	}
	return hints.Collect(jdk.HintNames(), config.HintSources(flags, s.cfg, s.log)...), nil
}

// resolve runs one resolution pass.
func (s *session) resolve(pairs []string, noProbe bool) (*resolve.Result, hints.Set, error) {
	set, err := s.hints(pairs)
	if err != nil {
		return nil, nil, err
	}
	res, err := resolve.Run(resolve.Options{
		Hints:  set.Values(),
		Prober: s.prober(noProbe),
		Log:    s.log,
	})
	if err != nil {
		return nil, set, err
	}
	return res, set, nil
}
