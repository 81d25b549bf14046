package lsp

import (
	"coral66/internal/analysis"
	"coral66/internal/diag"
)

const diagnosticSource = "coral66"

func severityCode(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return 1
	case diag.SevWarning:
		return 2
	default:
		return 3
	}
}

// buildDiagnostics converts the snapshot's diagnostic bag into protocol
// diagnostics, in the bag's sorted order.
func buildDiagnostics(snap *analysis.Snapshot) []lspDiagnostic {
	items := snap.Bag.Items()
	out := make([]lspDiagnostic, 0, len(items))
	for _, d := range items {
		out = append(out, lspDiagnostic{
			Range:    rangeForSpan(snap.File, d.Primary),
			Severity: severityCode(d.Severity),
			Code:     d.Code.String(),
			Source:   diagnosticSource,
			Message:  d.Message,
		})
	}
	return out
}
