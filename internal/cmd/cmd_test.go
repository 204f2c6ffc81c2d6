package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/dsmmcken/jdkfind/internal/cmd"
	"github.com/dsmmcken/jdkfind/internal/config"
	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/dsmmcken/jdkfind/internal/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every hint and config source at empty temp locations and
// returns the config dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("JDKFIND_HOME", home)
	t.Setenv("JDKFIND_JSON", "")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("GRADLE_USER_HOME", t.TempDir())
	for _, name := range jdk.HintNames() {
		t.Setenv(name, "")
		t.Setenv("ORG_GRADLE_PROJECT_"+name, "")
	}
	t.Chdir(t.TempDir())
	t.Cleanup(func() { config.SetConfigDir("") })
	return home
}

func useProber(t *testing.T, p probe.Prober) {
	t.Helper()
	orig := cmd.ProberFactory
	cmd.ProberFactory = func(probe.Options) probe.Prober { return p }
	t.Cleanup(func() { cmd.ProberFactory = orig })
}

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func jdkHome(t *testing.T, name, version string) string {
	t.Helper()
	home := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "bin"), 0o755))
	if version != "" {
		release := "JAVA_VERSION=\"" + version + "\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(home, "release"), []byte(release), 0o644))
	}
	real, err := filepath.EvalSymlinks(home)
	require.NoError(t, err)
	return real
}

var discovered = probe.Static{
	{Version: "1.6.0_45", ID: "jdk1.6.0_45", Home: "/opt/jdk1.6.0_45"},
	{Version: "1.7.0_80", ID: "jdk1.7.0_80", Home: "/opt/jdk1.7.0_80"},
	{Version: "1.7.0_79", ID: "jdk1.7.0_79", Home: "/opt/jdk1.7.0_79"},
	{Version: "9.0.4", ID: "java-9-openjdk", Home: "/usr/lib/jvm/java-9-openjdk"},
	{Version: "11.0.2+9", ID: "jdk-11.0.2", Home: "/opt/jdk-11.0.2"},
	{Version: "weird", ID: "mystery", Home: "/opt/mystery"},
}

func TestCommandsRegistered(t *testing.T) {
	root := cmd.NewRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"resolve", "scan", "buckets", "compare", "pin", "config", "doctor"} {
		assert.True(t, names[name], "missing command %s", name)
	}
}

func TestVerboseQuietExclusive(t *testing.T) {
	isolate(t)
	_, err := execRoot(t, "buckets", "--verbose", "--quiet")
	assert.Error(t, err)
}

func TestBuckets_JSON(t *testing.T) {
	isolate(t)
	out, err := execRoot(t, "buckets", "--json")
	require.NoError(t, err)

	var infos []cmd.BucketInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 6)
	assert.Equal(t, "JDK_8", infos[2].Name)
	assert.Equal(t, []string{"JDK_8", "JDK_18", "JAVA_HOME"}, infos[2].Hints)
	assert.False(t, infos[5].Mandatory)
}

func TestResolve_JSON(t *testing.T) {
	isolate(t)
	useProber(t, discovered)
	jdk8 := jdkHome(t, "jdk8", "1.8.0_292")

	out, err := execRoot(t, "resolve", "--json", "--jdk", "JDK_8="+jdk8)
	require.NoError(t, err)

	var report cmd.ResolveReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "static", report.Prober)
	assert.True(t, report.Complete)
	assert.Empty(t, report.Missing)
	require.Len(t, report.Buckets, 6)

	byName := map[string]cmd.BucketReport{}
	for _, b := range report.Buckets {
		byName[b.Bucket] = b
	}
	assert.Equal(t, "1.7.0_80", byName["JDK_7"].Version)
	assert.Equal(t, "explicit", byName["JDK_8"].Status)
	assert.Equal(t, jdk8, byName["JDK_8"].Home)
	assert.Equal(t, "1.8.0_292", byName["JDK_8"].Version)
	assert.Equal(t, "flag", byName["JDK_8"].Source)
	assert.Equal(t, "not found", byName["JDK_10"].Status)
	assert.Equal(t, "11.0.2+9", byName["JDK_11"].Version)
}

func TestResolve_EnvHintAlias(t *testing.T) {
	isolate(t)
	useProber(t, probe.Static{})
	jdk8 := jdkHome(t, "jdk8", "")
	t.Setenv("JAVA_HOME", jdk8)

	out, err := execRoot(t, "resolve", "--json")
	require.NoError(t, err)

	var report cmd.ResolveReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []string{"JDK_6", "JDK_7", "JDK_9"}, report.Missing)
	assert.Equal(t, "env", report.Buckets[2].Source)
	assert.Equal(t, "JAVA_HOME", report.Buckets[2].ID)
}

func TestExpandArgs(t *testing.T) {
	assert.Equal(t, []string{"resolve", "--jdk", "JDK_8=/x"}, cmd.ExpandArgs([]string{"--jdk", "JDK_8=/x"}))
	assert.Equal(t, []string{"resolve", "--jdk=JDK_8=/x"}, cmd.ExpandArgs([]string{"--jdk=JDK_8=/x"}))
	assert.Equal(t, []string{"scan", "--json"}, cmd.ExpandArgs([]string{"scan", "--json"}))
	assert.Empty(t, cmd.ExpandArgs(nil))
}

func TestResolve_Shorthand(t *testing.T) {
	isolate(t)
	useProber(t, probe.Static{})
	jdk8 := jdkHome(t, "jdk8", "")

	out, err := execRoot(t, cmd.ExpandArgs([]string{"--jdk", "JDK_8=" + jdk8, "--json"})...)
	require.NoError(t, err)

	var report cmd.ResolveReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "flag", report.Buckets[2].Source)
	assert.Equal(t, jdk8, report.Buckets[2].Home)
}

func TestResolve_StrictMissing(t *testing.T) {
	isolate(t)
	useProber(t, probe.Static{discovered[3]})

	out, err := execRoot(t, "resolve", "--strict")
	require.Error(t, err)
	assert.True(t, errors.Is(err, jdk.ErrMandatoryMissing))
	assert.Equal(t, output.ExitNotFound, cmd.ExitCode(err))
	assert.Contains(t, out, "Missing mandatory JDKs: JDK_6, JDK_7, JDK_8")
}

func TestResolve_NotStrictSucceeds(t *testing.T) {
	isolate(t)
	useProber(t, probe.Static{})
	_, err := execRoot(t, "resolve")
	assert.NoError(t, err)
}

func TestResolve_BadHintAborts(t *testing.T) {
	isolate(t)
	useProber(t, discovered)

	_, err := execRoot(t, "resolve", "--jdk", "JDK_8=/does/not/exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, jdk.ErrHintResolution))
	assert.Equal(t, output.ExitConfig, cmd.ExitCode(err))
}

func TestResolve_MalformedFlag(t *testing.T) {
	isolate(t)
	_, err := execRoot(t, "resolve", "--jdk", "JDK_8")
	require.Error(t, err)
	assert.Equal(t, output.ExitConfig, cmd.ExitCode(err))
}

func TestResolve_NoProbe(t *testing.T) {
	isolate(t)
	useProber(t, discovered)

	out, err := execRoot(t, "resolve", "--no-probe", "--json")
	require.NoError(t, err)
	var report cmd.ResolveReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "disabled", report.Prober)
	assert.Len(t, report.Missing, 4)
}

func TestResolve_YAML(t *testing.T) {
	isolate(t)
	useProber(t, discovered)

	out, err := execRoot(t, "resolve", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "prober: static")
	assert.Contains(t, out, "bucket: JDK_9")
}

func TestScan_JSON(t *testing.T) {
	isolate(t)
	useProber(t, discovered)

	out, err := execRoot(t, "scan", "--json")
	require.NoError(t, err)

	var report cmd.ScanReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Installations, len(discovered))
	assert.Equal(t, "JDK_6", report.Installations[0].Bucket)
	assert.Equal(t, "/opt/jdk1.6.0_45", report.Installations[0].Home)
	assert.Empty(t, report.Installations[5].Bucket)
}

func TestScan_ProbeDisabledInConfig(t *testing.T) {
	isolate(t)
	useProber(t, discovered)
	require.NoError(t, config.Set("probe.disabled", "true"))

	out, err := execRoot(t, "scan")
	require.NoError(t, err)
	assert.Contains(t, out, "No JDK installations found (probe: disabled)")
}

func TestCompare(t *testing.T) {
	isolate(t)
	out, err := execRoot(t, "compare", "1.8.0_151", "1.8.0_161", "--json")
	require.NoError(t, err)

	var report cmd.CompareReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, -1, report.Result)
	assert.Equal(t, []int{8, 0, 151}, report.Left.Components)
	assert.Equal(t, "JDK_8", report.Right.Bucket)

	out, err = execRoot(t, "compare", "10.0.1", "1.8.0")
	require.NoError(t, err)
	assert.Contains(t, out, "10.0.1 > 1.8.0")
}

func TestPin_Global(t *testing.T) {
	isolate(t)
	home := jdkHome(t, "jdk9", "9.0.4")

	out, err := execRoot(t, "pin", "9", home)
	require.NoError(t, err)
	assert.Contains(t, out, "Pinned JDK_9 to "+home+" (9.0.4)")

	v, err := config.Get("hints.JDK_9")
	require.NoError(t, err)
	assert.Equal(t, home, v)
}

func TestPin_AliasKeepsName(t *testing.T) {
	isolate(t)
	home := jdkHome(t, "jdk8", "")

	_, err := execRoot(t, "pin", "JAVA_HOME", home)
	require.NoError(t, err)
	v, err := config.Get("hints.JAVA_HOME")
	require.NoError(t, err)
	assert.Equal(t, home, v)
}

func TestPin_Local(t *testing.T) {
	isolate(t)
	home := jdkHome(t, "jdk7", "")

	_, err := execRoot(t, "pin", "--local", "JDK_7", home)
	require.NoError(t, err)

	data, err := os.ReadFile("gradle.properties")
	require.NoError(t, err)
	assert.Contains(t, string(data), "JDK_7=")
}

func TestPin_Errors(t *testing.T) {
	isolate(t)
	_, err := execRoot(t, "pin", "JDK_42", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, output.ExitConfig, cmd.ExitCode(err))

	_, err = execRoot(t, "pin", "JDK_8", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, jdk.ErrHintResolution))
}

func TestConfigSetGetList(t *testing.T) {
	isolate(t)
	_, err := execRoot(t, "config", "set", "probe.extra_roots", "/a,/b")
	require.NoError(t, err)

	out, err := execRoot(t, "config", "get", "probe.extra_roots")
	require.NoError(t, err)
	assert.Equal(t, "/a,/b\n", out)

	out, err = execRoot(t, "config", "list", "--json")
	require.NoError(t, err)
	var values map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, "false", values["probe.disabled"])

	_, err = execRoot(t, "config", "get", "default_version")
	require.Error(t, err)
	assert.Equal(t, output.ExitConfig, cmd.ExitCode(err))
}

func TestDoctor_Healthy(t *testing.T) {
	isolate(t)
	useProber(t, discovered)
	jdk8 := jdkHome(t, "jdk8", "1.8.0_292")
	t.Setenv("JDK_8", jdk8)

	out, err := execRoot(t, "doctor", "--json")
	require.NoError(t, err)

	var report cmd.DoctorReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Healthy)

	statuses := map[string]string{}
	for _, c := range report.Checks {
		statuses[c.Name] = c.Status
	}
	assert.Equal(t, "ok", statuses["Hint JDK_8"])
	assert.Equal(t, "ok", statuses["Probe"])
	assert.Equal(t, "ok", statuses["JDK_8"])
	assert.Equal(t, "warning", statuses["JDK_10"])
}

func TestDoctor_MissingMandatory(t *testing.T) {
	isolate(t)
	useProber(t, probe.Static{})

	out, err := execRoot(t, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Problems found (4 errors, 3 warnings).")
}

func TestDoctor_BrokenShadowedHintIsError(t *testing.T) {
	isolate(t)
	useProber(t, discovered)
	t.Setenv("JDK_8", jdkHome(t, "jdk8", ""))
	t.Setenv("JAVA_HOME", "/does/not/exist")

	out, err := execRoot(t, "doctor", "--json")
	require.NoError(t, err)

	var report cmd.DoctorReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Healthy)

	statuses := map[string]string{}
	details := map[string]string{}
	for _, c := range report.Checks {
		statuses[c.Name] = c.Status
		details[c.Name] = c.Detail
	}
	assert.Equal(t, "ok", statuses["Hint JDK_8"])
	assert.Equal(t, "error", statuses["Hint JAVA_HOME"])
	assert.Contains(t, details["Hint JAVA_HOME"], "shadowed by JDK_8")
}

func TestDoctor_ValidShadowedHintIsWarning(t *testing.T) {
	isolate(t)
	useProber(t, discovered)
	t.Setenv("JDK_8", jdkHome(t, "jdk8", ""))
	t.Setenv("JAVA_HOME", jdkHome(t, "javahome", ""))

	out, err := execRoot(t, "doctor", "--json")
	require.NoError(t, err)

	var report cmd.DoctorReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Healthy)

	for _, c := range report.Checks {
		if c.Name == "Hint JAVA_HOME" {
			assert.Equal(t, "warning", c.Status)
			assert.Contains(t, c.Detail, "JDK_8 takes precedence")
		}
	}
}

func TestDoctor_FixRemovesBrokenConfigHint(t *testing.T) {
	isolate(t)
	useProber(t, discovered)
	require.NoError(t, config.Set("hints.JDK_8", "/does/not/exist"))

	out, err := execRoot(t, "doctor", "--fix")
	require.NoError(t, err)
	assert.Contains(t, out, "Hint JDK_8")
	assert.Contains(t, out, "Removed broken hint JDK_8 from config.toml")

	v, err := config.Get("hints.JDK_8")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, output.ExitSuccess, cmd.ExitCode(nil))
	assert.Equal(t, output.ExitError, cmd.ExitCode(errors.New("boom")))
	missing := jdk.Resolution{}.Check()
	assert.Equal(t, output.ExitNotFound, cmd.ExitCode(errors.Wrap(missing, "resolving")))
}

func TestReportError_IncludesHint(t *testing.T) {
	output.SetFlags(false, false, false, false)
	var buf bytes.Buffer
	err := errors.WithHint(errors.New("mandatory JDKs not found: JDK_7"), "set JDK_7=<path>")
	cmd.ReportError(&buf, err)
	assert.Contains(t, buf.String(), "Error: mandatory JDKs not found: JDK_7")
	assert.Contains(t, buf.String(), "Hint: set JDK_7=<path>")
}

func TestReportError_JSON(t *testing.T) {
	output.SetFlags(true, false, true, false)
	t.Cleanup(func() { output.SetFlags(false, false, false, false) })

	var buf bytes.Buffer
	cmd.ReportError(&buf, errors.Mark(errors.New("bad"), cmd.ErrConfig))

	var env map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, "config", env["error"])
	assert.Equal(t, "bad", env["message"])
}
