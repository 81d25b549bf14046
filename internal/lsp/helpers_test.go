package lsp

import (
	"strings"
	"testing"

	"coral66/internal/analysis"
)

func testSnapshot(t *testing.T, src string) *analysis.Snapshot {
	t.Helper()
	return analysis.Analyze("test.cor", []byte(src), analysis.Options{MaxDiagnostics: 64})
}

// posAt converts the n-th occurrence (0-based) of needle in src, plus a byte
// delta within it, to a protocol position.
func posAt(t *testing.T, snap *analysis.Snapshot, src, needle string, n int) position {
	t.Helper()
	off := 0
	for {
		idx := strings.Index(src[off:], needle)
		if idx < 0 {
			t.Fatalf("occurrence %d of %q not found", n, needle)
		}
		off += idx
		if n == 0 {
			return positionForOffsetInFile(snap.File, uint32(off))
		}
		n--
		off += len(needle)
	}
}
