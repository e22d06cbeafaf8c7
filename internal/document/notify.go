package document

import (
	lspproto "go.lsp.dev/protocol"

	"github.com/woxQAQ/copilot-bridge/internal/editor"
)

// DidOpenParams assembles the standard didOpen payload for a buffer,
// for hosts that keep the server's open-document set in sync around
// attach.
func (b *Builder) DidOpenParams(buf editor.Buffer) (lspproto.DidOpenTextDocumentParams, error) {
	_, docURI, err := b.documentURI(buf)
	if err != nil {
		return lspproto.DidOpenTextDocumentParams{}, err
	}

	return lspproto.DidOpenTextDocumentParams{
		TextDocument: lspproto.TextDocumentItem{
			URI:        lspproto.DocumentURI(docURI),
			LanguageID: lspproto.LanguageIdentifier(b.filetypes.LanguageID(buf.Filetype())),
			Version:    buf.Version(),
			Text:       buf.Text(),
		},
	}, nil
}

// DidCloseParams assembles the standard didClose payload for a buffer.
func (b *Builder) DidCloseParams(buf editor.Buffer) (lspproto.DidCloseTextDocumentParams, error) {
	_, docURI, err := b.documentURI(buf)
	if err != nil {
		return lspproto.DidCloseTextDocumentParams{}, err
	}

	return lspproto.DidCloseTextDocumentParams{
		TextDocument: lspproto.TextDocumentIdentifier{URI: lspproto.DocumentURI(docURI)},
	}, nil
}
