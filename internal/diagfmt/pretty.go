package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"coral66/internal/diag"
	"coral66/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty renders each diagnostic as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline, then any
// notes in the same shape. Expects the bag to be sorted already.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, file, d.Primary, d.Severity, d.Code.String(), d.Message, opts)
		writeUnderline(w, file, d.Primary, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeading(w, file, note.Span, diag.SevInfo, "note", note.Msg, opts)
				writeUnderline(w, file, note.Span, opts)
			}
		}
	}
}

func writeHeading(w io.Writer, file *source.File, sp source.Span, sev diag.Severity, code, msg string, opts PrettyOpts) {
	lc := file.Resolve(sp.Start)
	label := sev.String()
	if opts.Color {
		label = severityPainter(sev).Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", file.Path, lc.Line, lc.Col, label, code, msg)
}

// writeUnderline prints the source line and a caret marker under the span.
// Columns are measured in display cells so wide runes stay aligned.
func writeUnderline(w io.Writer, file *source.File, sp source.Span, opts PrettyOpts) {
	lineText, lineStart := lineAt(file, sp.Start)
	if lineText == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", lineText)

	prefixEnd := int(sp.Start - lineStart)
	if prefixEnd > len(lineText) {
		prefixEnd = len(lineText)
	}
	pad := runewidth.StringWidth(lineText[:prefixEnd])

	spanLen := int(sp.Len())
	if spanLen < 1 {
		spanLen = 1
	}
	if prefixEnd+spanLen > len(lineText) {
		spanLen = len(lineText) - prefixEnd
		if spanLen < 1 {
			spanLen = 1
		}
	}
	width := runewidth.StringWidth(lineText[prefixEnd : prefixEnd+spanLen])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

// lineAt returns the full text of the line containing off and the byte
// offset at which that line starts.
func lineAt(file *source.File, off uint32) (string, uint32) {
	content := file.Content
	if len(content) == 0 {
		return "", 0
	}
	if off > uint32(len(content)) {
		off = uint32(len(content))
	}
	start := off
	for start > 0 && content[start-1] != '\n' {
		start--
	}
	end := off
	for end < uint32(len(content)) && content[end] != '\n' {
		end++
	}
	return string(content[start:end]), start
}

func severityPainter(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
