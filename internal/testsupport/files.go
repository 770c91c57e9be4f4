package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteSCC writes a Scenarist file containing the magic header and the
// provided caption lines, returning its path.
func WriteSCC(t testing.TB, dir, name string, lines ...string) string {
	t.Helper()

	content := "Scenarist_SCC V1.0\n\n" + strings.Join(lines, "\n\n")
	if len(lines) > 0 {
		content += "\n"
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
