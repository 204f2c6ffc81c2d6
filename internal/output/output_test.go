package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dsmmcken/jdkfind/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Bucket string `json:"bucket" yaml:"bucket"`
	Home   string `json:"home" yaml:"home"`
}

func TestPrintStructured_JSONByDefault(t *testing.T) {
	output.SetFlags(true, false, true, false)
	t.Cleanup(func() { output.SetFlags(false, false, false, false) })
	assert.True(t, output.IsJSON())
	assert.True(t, output.IsStructured())

	var buf bytes.Buffer
	require.NoError(t, output.PrintStructured(&buf, sample{Bucket: "JDK_8", Home: "/opt/jdk8"}))

	var got sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/opt/jdk8", got.Home)
}

func TestPrintStructured_YAML(t *testing.T) {
	output.SetFlags(false, true, true, false)
	t.Cleanup(func() { output.SetFlags(false, false, false, false) })
	assert.True(t, output.IsYAML())

	var buf bytes.Buffer
	require.NoError(t, output.PrintStructured(&buf, sample{Bucket: "JDK_9", Home: "/usr/lib/jvm/java-9"}))
	assert.Equal(t, "bucket: JDK_9\nhome: /usr/lib/jvm/java-9\n", buf.String())
}

func TestPrintError(t *testing.T) {
	output.SetFlags(true, false, true, false)
	t.Cleanup(func() { output.SetFlags(false, false, false, false) })

	var buf bytes.Buffer
	require.NoError(t, output.PrintError(&buf, "mandatory_missing", "mandatory JDKs not found: JDK_7"))
	var env map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, "mandatory_missing", env["error"])
}

func TestFlagsDefaultOff(t *testing.T) {
	output.SetFlags(false, false, false, false)
	assert.False(t, output.IsStructured())
	assert.False(t, output.IsQuiet())
	assert.False(t, output.IsVerbose())
}
