package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"monkey/internal/ast"
	"monkey/internal/parser"
	"monkey/internal/token"
)

var log = commonlog.GetLogger("monkey.lsp")

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// MonkeyHandler implements the LSP server handlers for Monkey. Documents are keyed by URI
// and hold the text last sent by the editor.
type MonkeyHandler struct {
	mu       sync.RWMutex
	modes    []parser.Mode
	content  map[protocol.DocumentUri]string
	programs map[protocol.DocumentUri]*ast.Program
}

// NewMonkeyHandler creates a handler that parses documents with the given parser modes.
func NewMonkeyHandler(modes ...parser.Mode) *MonkeyHandler {
	return &MonkeyHandler{
		modes:    modes,
		content:  make(map[protocol.DocumentUri]string),
		programs: make(map[protocol.DocumentUri]*ast.Program),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *MonkeyHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *MonkeyHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("Monkey LSP Initialized")
	return nil
}

func (h *MonkeyHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("Monkey LSP Shutdown")
	return nil
}

func (h *MonkeyHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *MonkeyHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("Opened file: %s", params.TextDocument.URI)

	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *MonkeyHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("Closed file: %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.content, params.TextDocument.URI)
	delete(h.programs, params.TextDocument.URI)
	h.mu.Unlock()

	// Clear the problems panel for the closed file.
	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *MonkeyHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("Changed file: %s", params.TextDocument.URI)

	h.mu.RLock()
	text := h.content[params.TextDocument.URI]
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			var err error
			if text, err = applyChange(text, c); err != nil {
				return fmt.Errorf("failed to apply change to %s: %w", params.TextDocument.URI, err)
			}
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	h.update(ctx, params.TextDocument.URI, text)
	return nil
}

// TextDocumentCompletion offers the keywords plus every name bound by let in the document
func (h *MonkeyHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	keywordKind := protocol.CompletionItemKindKeyword
	variableKind := protocol.CompletionItemKindVariable

	items := []protocol.CompletionItem{}
	for _, kw := range token.Keywords() {
		items = append(items, protocol.CompletionItem{Label: kw, Kind: &keywordKind})
	}

	program, err := h.getOrUpdateProgram(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, decl := range letDeclarations(program) {
		if !slices.Contains(names, decl.Value) {
			names = append(names, decl.Value)
		}
	}
	for _, name := range names {
		items = append(items, protocol.CompletionItem{Label: name, Kind: &variableKind, Detail: ptrString("let")})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *MonkeyHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("TextDocumentSemanticTokensFull called for: %s", params.TextDocument.URI)

	program, err := h.getOrUpdateProgram(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	text := h.content[params.TextDocument.URI]
	h.mu.RUnlock()

	tokens := collectSemanticTokens(text, program)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// getOrUpdateProgram returns the parsed document, reading it from disk when the editor
// has not opened it.
func (h *MonkeyHandler) getOrUpdateProgram(ctx *glsp.Context, uri protocol.DocumentUri) (*ast.Program, error) {
	h.mu.RLock()
	program, ok := h.programs[uri]
	h.mu.RUnlock()
	if ok {
		return program, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return h.update(ctx, uri, string(content)), nil
}

// update reparses text, stores it for uri and publishes the resulting diagnostics. An
// empty list is published too so that fixed errors disappear from the editor.
func (h *MonkeyHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) *ast.Program {
	program, diags := parser.ParseSource(text, h.modes...)

	h.mu.Lock()
	h.content[uri] = text
	h.programs[uri] = program
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, ConvertDiagnostics(text, diags))
	return program
}

// applyChange replaces the range of c in text. Range characters are UTF-16 code units.
func applyChange(text string, c protocol.TextDocumentContentChangeEvent) (string, error) {
	if c.Range == nil {
		return c.Text, nil
	}
	start, err := offsetOf(text, c.Range.Start)
	if err != nil {
		return "", err
	}
	end, err := offsetOf(text, c.Range.End)
	if err != nil {
		return "", err
	}
	if end < start {
		return "", fmt.Errorf("range end %d before start %d", end, start)
	}
	return text[:start] + c.Text + text[end:], nil
}

func offsetOf(text string, pos protocol.Position) (int, error) {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return 0, fmt.Errorf("line %d out of range", pos.Line)
		}
		offset += i + 1
	}
	lineEnd := len(text)
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		lineEnd = offset + i
	}
	return offset + byteColumn(text[offset:lineEnd], pos.Character), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	log.Debugf("Sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// letDeclarations returns the identifiers bound by let statements, in source order.
func letDeclarations(program *ast.Program) []*ast.Identifier {
	var names []*ast.Identifier
	for _, node := range ast.CollectAllNodes(program) {
		if let, ok := node.(*ast.LetStatement); ok && let.Name != nil {
			names = append(names, let.Name)
		}
	}
	return names
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrString(s string) *string {
	return &s
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
