package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"coral66/internal/diag"
)

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func openTestCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("coral66-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	return cache
}

func TestListSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.cor", "BEGIN END")
	writeFile(t, dir, "a.c66", "BEGIN END")
	writeFile(t, dir, "notes.txt", "not source")
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "c.cor", "BEGIN END")

	files, err := ListSourceFiles(dir)
	if err != nil {
		t.Fatalf("ListSourceFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("found %d files, want 3: %v", len(files), files)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Errorf("files not sorted: %v", files)
		}
	}
}

func TestListSourceFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "prog.cor", "BEGIN END")

	files, err := ListSourceFiles(path)
	if err != nil {
		t.Fatalf("ListSourceFiles: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("files = %v, want [%s]", files, path)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)

	key := HashContent([]byte("INTEGER x;"))
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        "prog.cor",
		ContentHash: key,
		Diagnostics: []DiagRecord{{
			Severity: uint8(diag.SevWarning),
			Code:     uint16(diag.SemaUnresolvedReference),
			Message:  "unresolved",
			Start:    3,
			End:      7,
			Notes:    []NoteRecord{{Message: "note", Start: 0, End: 1}},
		}},
		SymbolCount:    4,
		ReferenceCount: 9,
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if got.SymbolCount != 4 || got.ReferenceCount != 9 {
		t.Errorf("counts = %d/%d, want 4/9", got.SymbolCount, got.ReferenceCount)
	}
	if len(got.Diagnostics) != 1 || got.Diagnostics[0].Message != "unresolved" {
		t.Errorf("diagnostics = %+v", got.Diagnostics)
	}
	if len(got.Diagnostics[0].Notes) != 1 || got.Diagnostics[0].Notes[0].Message != "note" {
		t.Errorf("notes = %+v", got.Diagnostics[0].Notes)
	}
}

func TestDiskCacheMissOnUnknownKey(t *testing.T) {
	cache := openTestCache(t)

	var got DiskPayload
	hit, err := cache.Get(HashContent([]byte("never stored")), &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("expected a miss for an unknown key")
	}
}

func TestDiskCacheRejectsStaleSchema(t *testing.T) {
	cache := openTestCache(t)

	key := HashContent([]byte("old"))
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("stale schema must read as a miss")
	}
}

func TestAnalyzeAllReportsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "prog.cor", "BEGIN\nINTEGER count;\ncount := missing;\nEND\n")

	results, err := AnalyzeAll(context.Background(), []string{path}, Options{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("AnalyzeAll: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}

	res := results[0]
	if res.Err != nil {
		t.Fatalf("result error: %v", res.Err)
	}
	if res.FromCache {
		t.Error("no cache was configured, FromCache must be false")
	}
	if res.Snapshot == nil {
		t.Fatal("fresh analysis must carry a snapshot")
	}
	if res.SymbolCount == 0 {
		t.Error("count should have been declared")
	}
	if !res.Bag.HasWarnings() {
		t.Error("missing reference should produce a warning")
	}
	if res.Digest.IsZero() {
		t.Error("digest not computed")
	}
}

func TestAnalyzeAllUsesCacheOnSecondRun(t *testing.T) {
	cache := openTestCache(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "prog.cor", "INTEGER x;\nx := y;\n")

	opts := Options{MaxDiagnostics: 10, Cache: cache}

	first, err := AnalyzeAll(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first[0].FromCache {
		t.Fatal("first run must be a miss")
	}

	second, err := AnalyzeAll(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	res := second[0]
	if !res.FromCache {
		t.Fatal("second run must hit the cache")
	}
	if res.Snapshot != nil {
		t.Error("cached results do not rebuild snapshots")
	}
	if res.SymbolCount != first[0].SymbolCount || res.ReferenceCount != first[0].ReferenceCount {
		t.Errorf("cached counts %d/%d differ from fresh %d/%d",
			res.SymbolCount, res.ReferenceCount, first[0].SymbolCount, first[0].ReferenceCount)
	}
	if res.Bag.Len() != first[0].Bag.Len() {
		t.Errorf("cached bag has %d diagnostics, fresh had %d", res.Bag.Len(), first[0].Bag.Len())
	}
}

func TestAnalyzeAllInvalidatesOnEdit(t *testing.T) {
	cache := openTestCache(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "prog.cor", "INTEGER x;\n")

	opts := Options{MaxDiagnostics: 10, Cache: cache}
	if _, err := AnalyzeAll(context.Background(), []string{path}, opts); err != nil {
		t.Fatalf("first run: %v", err)
	}

	writeFile(t, dir, "prog.cor", "INTEGER x;\nFLOATING y;\n")
	results, err := AnalyzeAll(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if results[0].FromCache {
		t.Error("changed content must not hit the cache")
	}
	if results[0].SymbolCount != 2 {
		t.Errorf("SymbolCount = %d, want 2", results[0].SymbolCount)
	}
}

func TestAnalyzeAllReadFailure(t *testing.T) {
	results, err := AnalyzeAll(context.Background(), []string{filepath.Join(t.TempDir(), "absent.cor")}, Options{})
	if err != nil {
		t.Fatalf("AnalyzeAll: %v", err)
	}
	if results[0].Err == nil {
		t.Error("missing file must surface a read error")
	}
}

func TestAnalyzeAllEmitsProgressEvents(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.cor", "INTEGER x;\n")
	b := writeFile(t, dir, "b.cor", "INTEGER y;\n")

	events := make(chan Event, 16)
	_, err := AnalyzeAll(context.Background(), []string{a, b}, Options{
		Jobs:     1,
		Progress: ChannelSink{Ch: events},
	})
	if err != nil {
		t.Fatalf("AnalyzeAll: %v", err)
	}
	close(events)

	var working, done int
	for ev := range events {
		switch ev.Status {
		case StatusWorking:
			working++
		case StatusDone:
			done++
		}
	}
	if working != 2 || done != 2 {
		t.Errorf("events working/done = %d/%d, want 2/2", working, done)
	}
}
