package workspace

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/norg/org"
	"github.com/dhamidi/norg/org/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "norg"

// LSPServer serves the tracked workspace over the Language Server
// Protocol: full-sync document tracking plus outline document symbols.
type LSPServer struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
	rootDir   string
}

func NewLSPServer(config parser.Config, version string) *LSPServer {
	ls := &LSPServer{
		workspace: New(config),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}
	ls.rootDir = rootDir

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.workspace.ScanAll(ls.rootDir)
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.UpdateFile(path, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.workspace.UpdateFile(path, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.workspace.UpdateFile(path, []byte(*params.Text))
	} else {
		ls.workspace.ScanFile(path)
	}
	return nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.workspace.GetFile(path)
	if file == nil {
		file = ls.workspace.ScanFile(path)
	}
	if file == nil || file.Doc == nil {
		return nil, nil
	}

	var symbols []protocol.DocumentSymbol
	for _, entry := range file.Doc.Headlines {
		symbols = append(symbols, file.outlineSymbol(entry))
	}
	return symbols, nil
}

func (f *File) outlineSymbol(entry *org.Outline) protocol.DocumentSymbol {
	h := entry.Headline
	name := h.RawValue
	if name == "" {
		name = "(untitled)"
	}

	var details []string
	if h.TodoKeyword != "" {
		details = append(details, h.TodoKeyword)
	}
	if len(h.Tags) > 0 {
		details = append(details, ":"+strings.Join(h.Tags, ":")+":")
	}

	kind := protocol.SymbolKindString
	if len(entry.Children) > 0 {
		kind = protocol.SymbolKindNamespace
	}

	symbol := protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          f.spanRange(entry.Node.Begin, entry.Node.End),
		SelectionRange: f.spanRange(entry.Node.Begin, lineEndOffset(f.Content, entry.Node.Begin)),
	}
	if len(details) > 0 {
		detail := strings.Join(details, " ")
		symbol.Detail = &detail
	}
	for _, child := range entry.Children {
		symbol.Children = append(symbol.Children, f.outlineSymbol(child))
	}
	return symbol
}

func (f *File) spanRange(begin, end int) protocol.Range {
	startLine, startCol := f.Position(begin)
	endLine, endCol := f.Position(end)
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(startLine), Character: protocol.UInteger(startCol)},
		End:   protocol.Position{Line: protocol.UInteger(endLine), Character: protocol.UInteger(endCol)},
	}
}

func lineEndOffset(content []byte, pos int) int {
	for pos < len(content) && content[pos] != '\n' {
		pos++
	}
	return pos
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
