// Package tui is an interactive browser of one resolution pass: a spinner
// while the probes run, then one row per version bucket.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/resolve"
)

// ResolveFunc runs one resolution pass.
type ResolveFunc func() (*resolve.Result, error)

type resolvedMsg struct {
	result *resolve.Result
	err    error
}

type App struct {
	keys     NavigationKeyMap
	help     help.Model
	spinner  spinner.Model
	run      ResolveFunc
	buckets  []jdk.Bucket
	loading  bool
	result   *resolve.Result
	err      error
	cursor   int
	expanded bool
	width    int
	height   int
}

func NewApp(run ResolveFunc) App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return App{
		keys:    DefaultNavKeyMap(),
		help:    help.New(),
		spinner: s,
		run:     run,
		buckets: jdk.Buckets(),
		loading: true,
	}
}

// Cursor returns the index of the selected bucket.
func (m App) Cursor() int { return m.cursor }

// Loading reports whether a resolution pass is in flight.
func (m App) Loading() bool { return m.loading }

func (m App) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.resolve())
}

func (m App) resolve() tea.Cmd {
	run := m.run
	return func() tea.Msg {
		res, err := run()
		return resolvedMsg{result: res, err: err}
	}
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case resolvedMsg:
		m.loading = false
		m.result = msg.result
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.buckets) - 1
			}
		case key.Matches(msg, m.keys.Down):
			m.cursor++
			if m.cursor >= len(m.buckets) {
				m.cursor = 0
			}
		case key.Matches(msg, m.keys.Enter):
			m.expanded = !m.expanded
		case key.Matches(msg, m.keys.Back):
			m.expanded = false
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Rescan):
			m.loading = true
			m.result = nil
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.resolve())
		}
	}
	return m, nil
}

func (m App) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("  jdkfind"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("  Looking for JDKs...  %s\n", m.spinner.View()))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(StyleMissing.Render(fmt.Sprintf("  Error: %s", m.err)))
		b.WriteString("\n\n")
		b.WriteString(StyleOptional.Render("  r rescan • q quit"))
		return b.String()
	}

	var res jdk.Resolution
	prober := ""
	if m.result != nil {
		res = m.result.Resolution
		prober = m.result.Prober
	}

	for i, bucket := range m.buckets {
		c, ok := res[bucket]
		mark, version := StyleFound.Render("✓"), c.Version
		switch {
		case !ok && bucket.Mandatory():
			mark, version = StyleMissing.Render("✗"), "missing"
		case !ok:
			mark, version = StyleOptional.Render("-"), "not found"
		case version == "":
			version = "unknown version"
		}

		line := fmt.Sprintf("%-7s %s", bucket, version)
		if i == m.cursor {
			b.WriteString("  " + mark + " " + styleSelected.Render("> "+line))
		} else {
			b.WriteString("  " + mark + "   " + line)
		}
		b.WriteString("\n")

		if i == m.cursor && m.expanded {
			b.WriteString(styleDetail.Render(detail(bucket, c, ok, prober)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if missing := res.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, mb := range missing {
			names[i] = mb.String()
		}
		b.WriteString(StyleWarning.Render("  Missing mandatory: " + strings.Join(names, ", ")))
	} else {
		b.WriteString(StyleFound.Render("  All mandatory JDKs resolved"))
	}
	b.WriteString("\n\n")
	b.WriteString("  " + m.help.View(m.keys))

	return b.String()
}

func detail(b jdk.Bucket, c jdk.Candidate, ok bool, prober string) string {
	if !ok {
		return fmt.Sprintf("set %s to a JDK home, or run 'jdkfind pin %s <PATH>'", b.HintNames()[0], b)
	}
	source := "discovered by " + prober
	if c.Explicit {
		source = "explicit hint " + c.ID
	}
	return fmt.Sprintf("home: %s\nid:   %s\nfrom: %s", c.Home, c.ID, source)
}
