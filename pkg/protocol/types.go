package protocol

// Wire shapes exchanged with the copilot language server that are not
// part of the standard LSP surface. Standard types (Position,
// TextDocumentItem, ...) come from go.lsp.dev/protocol; this package
// only declares the copilot-specific request envelopes.

import (
	lsp "go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// DocumentDescriptor identifies the protocol-facing state of a single
// buffer: where it lives, how far its edits have advanced, and where
// the cursor sits. Built fresh for every request, never persisted.
type DocumentDescriptor struct {
	URI          uri.URI      `json:"uri"`
	Version      int32        `json:"version"`
	RelativePath string       `json:"relativePath"`
	InsertSpaces bool         `json:"insertSpaces"`
	TabSize      int          `json:"tabSize"`
	IndentSize   int          `json:"indentSize"`
	Position     lsp.Position `json:"position"`
}

// TextDocumentRef is the identity subset of a descriptor promoted to
// the top level of a request.
type TextDocumentRef struct {
	URI          uri.URI `json:"uri"`
	Version      int32   `json:"version"`
	RelativePath string  `json:"relativePath"`
}

// RequestParams is the envelope downstream request builders consume:
// the full descriptor under "doc" plus the document reference and
// position hoisted to the top level.
type RequestParams struct {
	Doc          DocumentDescriptor `json:"doc"`
	TextDocument TextDocumentRef    `json:"textDocument"`
	Position     lsp.Position       `json:"position"`
}

// DescriptorOverrides carries caller-supplied per-key overrides for a
// freshly built descriptor. Nil fields leave the built value in place.
type DescriptorOverrides struct {
	URI          *uri.URI      `json:"uri,omitempty"`
	Version      *int32        `json:"version,omitempty"`
	RelativePath *string       `json:"relativePath,omitempty"`
	InsertSpaces *bool         `json:"insertSpaces,omitempty"`
	TabSize      *int          `json:"tabSize,omitempty"`
	IndentSize   *int          `json:"indentSize,omitempty"`
	Position     *lsp.Position `json:"position,omitempty"`
}

// EditorInfo reports the host editor identity for the handshake.
type EditorInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// EditorPluginInfo reports the plugin identity for the handshake.
type EditorPluginInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// SetEditorInfoParams is the payload of the setEditorInfo call sent
// once after the client starts.
type SetEditorInfoParams struct {
	EditorInfo       EditorInfo       `json:"editorInfo"`
	EditorPluginInfo EditorPluginInfo `json:"editorPluginInfo"`
}
