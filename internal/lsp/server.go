// Package lsp implements a stdio language server for Zast. Documents are
// tracked with full-content synchronization; every open or change runs the
// front-end pipeline and publishes the resulting diagnostics, and hover
// reports the declared type of global symbols.
package lsp

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/zast-lang/zast/internal/driver"
	"github.com/zast-lang/zast/internal/position"

	_ "github.com/tliron/commonlog/simple"
)

const serverName = "zast-lsp"

// Server bridges LSP editor features to the Zast front end.
type Server struct {
	mu   sync.Mutex
	docs map[string]string // URI to full document content

	handler protocol.Handler
	server  *glspserver.Server
	version string
}

// NewServer creates a language server.
func NewServer(version string) *Server {
	s := &Server{
		docs:    make(map[string]string),
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		SetTrace:    s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentHover: s.textDocumentHover,
	}

	s.server = glspserver.NewServer(&s.handler, serverName, false)

	return s
}

// Run starts the server on stdio. Blocks until the client disconnects.
func (s *Server) Run() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	commonlog.NewInfoMessage(0, "Zast LSP initializing")

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
	}
	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	text := params.TextDocument.Text

	s.mu.Lock()
	s.docs[string(uri)] = text
	s.mu.Unlock()

	s.publishDiagnostics(ctx, uri, text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	// With full sync, the last change event contains the whole text.
	if len(params.ContentChanges) > 0 {
		last := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := last.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.mu.Lock()
			s.docs[string(uri)] = whole.Text
			text := whole.Text
			s.mu.Unlock()

			s.publishDiagnostics(ctx, uri, text)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI

	s.mu.Lock()
	delete(s.docs, string(uri))
	s.mu.Unlock()

	go ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI

	s.mu.Lock()
	text, ok := s.docs[string(uri)]
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}

	word := extractWord(text, params.Position)
	if word == "" {
		return nil, nil
	}

	table := check(text).Table
	if table == nil {
		return nil, nil
	}

	sym := table.Resolve(word)
	if sym == nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("```zast\n%s %s: %s\n```", sym.Kind, sym.Name, sym.Type),
		},
	}, nil
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	res := check(text)

	lspDiags := make([]protocol.Diagnostic, 0, len(res.Diagnostics))
	severity := protocol.DiagnosticSeverityError
	source := serverName

	for _, d := range res.Diagnostics {
		lspDiags = append(lspDiags, protocol.Diagnostic{
			Range:    spanToRange(d.Span()),
			Severity: &severity,
			Source:   &source,
			Message:  d.Error(),
		})
	}

	go ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: lspDiags,
	})
}

// check runs the pipeline, converting a pipeline panic into an empty result.
// The resolver treats unknown primitive names as an internal violation, but
// an editor buffer mid-edit can reach that state.
func check(text string) (res driver.Result) {
	defer func() {
		if r := recover(); r != nil {
			commonlog.NewErrorMessage(0, fmt.Sprintf("pipeline panic: %v", r))
			res = driver.Result{}
		}
	}()
	return driver.Check(text)
}

// spanToRange converts a 1-based, end-inclusive source span to a 0-based,
// end-exclusive LSP range.
func spanToRange(span position.Span) protocol.Range {
	if !span.IsValid() {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: protocol.Position{
			Line:      protocol.UInteger(span.LnStart - 1),
			Character: protocol.UInteger(span.ColStart - 1),
		},
		End: protocol.Position{
			Line:      protocol.UInteger(span.LnEnd - 1),
			Character: protocol.UInteger(span.ColEnd),
		},
	}
}

func extractWord(text string, pos protocol.Position) string {
	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	line := lines[pos.Line]
	col := int(pos.Character)
	if col > len(line) {
		col = len(line)
	}

	start := col
	for start > 0 {
		ch := rune(line[start-1])
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' {
			start--
		} else {
			break
		}
	}

	end := col
	for end < len(line) {
		ch := rune(line[end])
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' {
			end++
		} else {
			break
		}
	}

	if start == end {
		return ""
	}
	return line[start:end]
}

func boolPtr(b bool) *bool {
	return &b
}
