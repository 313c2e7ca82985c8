package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"monkey/internal/errors"
)

// diagnosticSource labels every diagnostic this server publishes.
const diagnosticSource = "monkey"

// ConvertDiagnostics transforms parser diagnostics for text into LSP diagnostics. LSP
// positions are 0-based and count UTF-16 units, while token positions are 1-based byte
// columns. The range covers Length bytes (at least one) on the diagnostic's line.
func ConvertDiagnostics(text string, diags []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(diags))
	lines := strings.Split(text, "\n")

	for _, d := range diags {
		line := max(d.Position.Line-1, 0)
		lineText := ""
		if line < len(lines) {
			lineText = lines[line]
		}
		startCol := max(d.Position.Column-1, 0)
		start := utf16Column(lineText, startCol)
		end := max(utf16Column(lineText, startCol+max(d.Length, 1)), start+1)

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: start},
				End:   protocol.Position{Line: uint32(line), Character: end},
			},
			Severity: ptrSeverity(severityOf(d.Level)),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString(diagnosticSource),
			Message:  d.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func severityOf(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
