package driver

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"coral66/internal/analysis"
	"coral66/internal/diag"
	"coral66/internal/source"
)

// Bump when the DiskPayload format changes; stale entries are ignored.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores per-file analysis results keyed by content digest.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// NoteRecord is a cached secondary annotation.
type NoteRecord struct {
	Message string
	Start   uint32
	End     uint32
}

// DiagRecord is one cached diagnostic. Spans are byte offsets into the file
// the digest was computed from, so a hit can reproduce exact positions.
type DiagRecord struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []NoteRecord
}

// DiskPayload is the serialized result of analyzing one file.
type DiskPayload struct {
	Schema uint16

	Path        string
	ContentHash Digest

	Diagnostics    []DiagRecord
	SymbolCount    uint32
	ReferenceCount uint32
}

// OpenDiskCache initializes a cache under $XDG_CACHE_HOME/<app> (or
// ~/.cache/<app> when unset).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "files", key.String()+".mp")
}

// Put serializes and writes a payload, replacing any entry atomically.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. The boolean reports whether a usable entry existed;
// entries with a different schema version count as misses.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// snapshotToPayload flattens a snapshot into its cacheable form. Only what
// batch output needs survives; symbol tables are rebuilt on demand.
func snapshotToPayload(path string, key Digest, snap *analysis.Snapshot) *DiskPayload {
	payload := &DiskPayload{
		Schema:         diskCacheSchemaVersion,
		Path:           path,
		ContentHash:    key,
		SymbolCount:    countUint32(snap.Table.Symbols.Len()),
		ReferenceCount: countUint32(len(snap.Refs)),
	}
	for _, d := range snap.Bag.Items() {
		rec := DiagRecord{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, note := range d.Notes {
			rec.Notes = append(rec.Notes, NoteRecord{
				Message: note.Msg,
				Start:   note.Span.Start,
				End:     note.Span.End,
			})
		}
		payload.Diagnostics = append(payload.Diagnostics, rec)
	}
	return payload
}

func countUint32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0
	}
	return v
}

// payloadToBag reconstructs the diagnostics bag from a cached payload.
func payloadToBag(payload *DiskPayload, fileID source.FileID, max int) *diag.Bag {
	bag := diag.NewBag(max)
	for _, rec := range payload.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(rec.Severity),
			Code:     diag.Code(rec.Code),
			Message:  rec.Message,
			Primary:  source.Span{File: fileID, Start: rec.Start, End: rec.End},
		}
		for _, note := range rec.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: note.Start, End: note.End},
				Msg:  note.Message,
			})
		}
		bag.Add(d)
	}
	return bag
}
