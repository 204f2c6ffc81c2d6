package probe

import (
	"os/exec"

	"github.com/dsmmcken/jdkfind/internal/jdk"
)

// runJavaVersion executes `java -version` and parses the version string.
func runJavaVersion(javaPath string) (string, error) {
	cmd := exec.Command(javaPath, "-version")
	// java -version writes to stderr
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", err
	}
	return jdk.ParseVersionOutput(string(out))
}
