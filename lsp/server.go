// Package lsp serves Mermaid completion, hover and document symbols over the
// Language Server Protocol.
package lsp

import (
	"fmt"

	"github.com/dhamidi/graphlet/completion"
	"github.com/dhamidi/graphlet/config"
	"github.com/dhamidi/graphlet/diagram"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

type LSPServer struct {
	documents *Documents
	handler   protocol.Handler
	server    *server.Server
	settings  config.LSP
	version   string
	log       commonlog.Logger
}

func NewLSPServer(version string, settings config.LSP) *LSPServer {
	if settings.Name == "" {
		settings.Name = config.Default().LSP.Name
	}
	ls := &LSPServer{
		documents: NewDocuments(),
		settings:  settings,
		version:   version,
		log:       commonlog.GetLogger("graphlet.lsp"),
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
		TextDocumentCompletion:     ls.textDocumentCompletion,
		TextDocumentHover:          ls.textDocumentHover,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, settings.Name, false)

	return ls
}

// Run serves on the transport named in the settings.
func (ls *LSPServer) Run() error {
	switch ls.settings.Transport {
	case "", config.TransportStdio:
		return ls.RunStdio()
	case config.TransportTCP:
		return ls.RunTCP(ls.settings.Address)
	case config.TransportWebSocket:
		return ls.RunWebSocket(ls.settings.Address)
	default:
		return fmt.Errorf("unknown transport %q", ls.settings.Transport)
	}
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) RunTCP(address string) error {
	return ls.server.RunTCP(address)
}

func (ls *LSPServer) RunWebSocket(address string) error {
	return ls.server.RunWebSocket(address)
}

func (ls *LSPServer) Documents() *Documents {
	return ls.documents
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: ls.settings.TriggerCharacters,
	}

	if params.ClientInfo != nil {
		ls.log.Infof("initialize from %s", params.ClientInfo.Name)
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ls.settings.Name,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := params.TextDocument
	ls.documents.Open(doc.URI, doc.Text, doc.Version)
	ls.log.Debugf("opened %s (version %d)", doc.URI, doc.Version)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		ls.log.Warningf("ignoring incremental change for %s", params.TextDocument.URI)
		return nil
	}
	if !ls.documents.Update(params.TextDocument.URI, textChange.Text, params.TextDocument.Version) {
		ls.log.Debugf("stale change for %s (version %d)", params.TextDocument.URI, params.TextDocument.Version)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.documents.Close(params.TextDocument.URI)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.documents.Save(params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, ok := ls.documents.Get(params.TextDocument.URI)
	if !ok {
		ls.log.Debugf("completion for unknown document %s", params.TextDocument.URI)
		return nil, nil
	}

	line, column := fromProtocolPosition(doc.Text, params.Position)
	result := completion.Complete(doc.Text, line, column)
	ls.log.Debugf("completion at %d:%d word=%q candidates=%d", line, column, result.Word.Text, len(result.Candidates))

	return toCompletionList(doc.Text, result), nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := ls.documents.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	line, column := fromProtocolPosition(doc.Text, params.Position)
	id, span, ok := diagram.IdentAt(doc.Text, line, column)
	if !ok {
		return nil, nil
	}
	label, ok := diagram.BuildSymbolTable(doc.Text).Label(id)
	if !ok {
		return nil, nil
	}

	kind := diagram.DetectType(doc.Text)
	rng := toProtocolRange(doc.Text, span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("**%s**: %s\n\nNode in %s diagram", id, label, kind.Label),
		},
		Range: &rng,
	}, nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, ok := ls.documents.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return toDocumentSymbols(doc.Text, diagram.ExtractDeclarations(doc.Text)), nil
}
