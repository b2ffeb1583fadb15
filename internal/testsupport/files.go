package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// TouchFiles creates empty files with the given names inside dir.
func TouchFiles(t testing.TB, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("touch %s: %v", name, err)
		}
	}
}
