package analysis

import (
	"sync"
)

// Document is one tracked file: its latest text plus the snapshot produced
// from that text. Snapshots are immutable; an edit produces a new one.
type Document struct {
	URI     string
	Version int
	Text    string

	mu   sync.RWMutex
	snap *Snapshot
}

// Snapshot returns the document's current analysis result.
func (d *Document) Snapshot() *Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snap
}

// Session owns all open documents. Each URI carries independent state, so
// concurrent queries against different documents never contend, and a query
// running against a snapshot keeps seeing that snapshot even while a newer
// edit is being analyzed.
type Session struct {
	mu   sync.RWMutex
	docs map[string]*Document
	opts Options
}

// NewSession creates an empty session.
func NewSession(opts Options) *Session {
	return &Session{
		docs: make(map[string]*Document),
		opts: opts,
	}
}

// Open tracks a document and analyzes its initial text.
func (s *Session) Open(uri string, version int, text string) *Document {
	doc := &Document{URI: uri, Version: version, Text: text}
	doc.snap = Analyze(uri, []byte(text), s.opts)

	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

// Change replaces a document's text and reanalyzes it from scratch. There is
// no incremental path: a full pass over an editor-sized file is cheap, and
// rebuilding keeps every snapshot internally consistent.
func (s *Session) Change(uri string, version int, text string) *Document {
	s.mu.RLock()
	doc := s.docs[uri]
	s.mu.RUnlock()
	if doc == nil {
		return s.Open(uri, version, text)
	}

	snap := Analyze(uri, []byte(text), s.opts)
	doc.mu.Lock()
	doc.Version = version
	doc.Text = text
	doc.snap = snap
	doc.mu.Unlock()
	return doc
}

// Close forgets a document. All of its state is dropped; nothing about the
// file survives outside the session.
func (s *Session) Close(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

// Get returns the tracked document for uri, or nil when it is not open.
func (s *Session) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// Snapshot returns the current snapshot for uri, or nil when it is not open.
func (s *Session) Snapshot(uri string) *Snapshot {
	if doc := s.Get(uri); doc != nil {
		return doc.Snapshot()
	}
	return nil
}
