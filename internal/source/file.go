package source

// NewVirtualFile builds a File from an in-memory buffer, normalizing CRLF and
// stripping a UTF-8 BOM so byte offsets are stable across platforms. The
// document model is one file per analysis, so the ID is fixed.
func NewVirtualFile(path string, content []byte) *File {
	flags := FileVirtual
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	content, changed := normalizeCRLF(content)
	if changed {
		flags |= FileNormalizedCRLF
	}
	return &File{
		ID:      1,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	}
}

// Resolve converts a byte offset into a 1-based line/column pair.
func (f *File) Resolve(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// ResolveSpan returns the start and end positions of a span.
func (f *File) ResolveSpan(sp Span) (LineCol, LineCol) {
	return f.Resolve(sp.Start), f.Resolve(sp.End)
}

// Text returns the source text covered by the span, clamped to the content.
func (f *File) Text(sp Span) string {
	start, end := sp.Start, sp.End
	if n := uint32(len(f.Content)); end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return string(f.Content[start:end])
}
