package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harrison/civicmap/internal/config"
)

// execute runs the root command with an isolated civicmap home
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.HomeEnv, t.TempDir())
	t.Setenv("NO_COLOR", "")

	root := NewRootCommand()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeSheet writes a YAML sheet answering questions 1..40 with option,
// except ids present in overrides (a negative override leaves it out).
func writeSheet(t *testing.T, dir, name string, option int, overrides map[int]int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("answers:\n")
	for id := 1; id <= 40; id++ {
		opt := option
		if o, ok := overrides[id]; ok {
			opt = o
		}
		if opt < 0 {
			continue
		}
		fmt.Fprintf(&sb, "  %d: %d\n", id, opt)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

// repeatAnswer builds interactive input answering every question with choice
func repeatAnswer(choice string, n int) string {
	return strings.Repeat(choice+"\n", n)
}
