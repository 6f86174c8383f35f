package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEmptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textstyle.yaml")
	if err := os.WriteFile(path, []byte("theme:\n  name: default\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
