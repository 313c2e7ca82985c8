// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"monkey/internal/config"
	"monkey/internal/lsp"
	"monkey/internal/parser"
)

const lsName = "monkey" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
	log     = commonlog.GetLogger("monkey.lsp")
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	cfg, path, err := config.Resolve(".")
	if err != nil {
		log.Errorf("failed to load config: %s", err)
		os.Exit(1)
	}
	if path != "" {
		log.Infof("using config %s", path)
	}

	var modes []parser.Mode
	if cfg.Parser.StatementValues {
		modes = append(modes, parser.StatementValues)
	}

	monkeyHandler := lsp.NewMonkeyHandler(modes...)

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     monkeyHandler.Initialize,
		Initialized:                    monkeyHandler.Initialized,
		Shutdown:                       monkeyHandler.Shutdown,
		SetTrace:                       monkeyHandler.SetTrace,
		TextDocumentDidOpen:            monkeyHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           monkeyHandler.TextDocumentDidClose,
		TextDocumentDidChange:          monkeyHandler.TextDocumentDidChange,
		TextDocumentCompletion:         monkeyHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: monkeyHandler.TextDocumentSemanticTokensFull,
	}

	// - debug: whether to enable internal GLSP debug logs
	s := server.NewServer(&handler, lsName, false)

	log.Infof("Starting Monkey LSP server %s...", version)

	// Start the server over standard input/output (used by most editors for LSP)
	if err := s.RunStdio(); err != nil {
		log.Errorf("Error starting Monkey LSP server: %s", err)
		os.Exit(1)
	}
}
