package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateEnv clears every variable the config loader reads and points the
// .env lookup at an empty directory.
func isolateEnv(t *testing.T) string {
	t.Helper()
	for _, k := range []string{
		"LWC_DB_ADAPTER", "LWC_DB_PATH", "LWC_DB_HOST", "LWC_DB_PORT", "LWC_DB_NAME",
		"LWC_DB_USER", "LWC_DB_PASSWORD", "LWC_DB_SSLMODE", "LOG_LEVEL", "LISTEN_ADDR",
		"LWC_DB_PREFIX",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return t.TempDir()
}

// writeFile writes body to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(dir, ".env")}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
