package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lspproto "go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"

	"github.com/woxQAQ/copilot-bridge/internal/editor"
	"github.com/woxQAQ/copilot-bridge/internal/filetype"
	"github.com/woxQAQ/copilot-bridge/internal/lsp"
	"github.com/woxQAQ/copilot-bridge/pkg/protocol"
)

// Builder derives document descriptors for protocol requests. It holds
// no per-buffer state; every Build reads the buffer fresh.
type Builder struct {
	host      editor.Host
	notifier  lsp.Notifier
	filetypes *filetype.Registry
	logger    *zap.Logger
}

// NewBuilder creates a descriptor builder. The notifier may be nil
// when no client is running; building then fails for unsaved buffers,
// which need a didOpen before they can be queried.
func NewBuilder(host editor.Host, notifier lsp.Notifier, filetypes *filetype.Registry, logger *zap.Logger) *Builder {
	return &Builder{
		host:      host,
		notifier:  notifier,
		filetypes: filetypes,
		logger:    logger.With(zap.String("component", "document")),
	}
}

// Build assembles the descriptor for a buffer. Unsaved buffers get a
// deterministic untitled URI under the working directory and a
// fire-and-forget didOpen so the server has their content. Any failure
// is logged and terminal for this call; the caller retries on the next
// editor event.
func (b *Builder) Build(ctx context.Context, buf editor.Buffer) (*protocol.DocumentDescriptor, error) {
	absPath, docURI, err := b.documentURI(buf)
	if err != nil {
		b.logger.Error("Failed to resolve document URI",
			zap.Int("buffer", buf.ID()),
			zap.Error(err),
		)
		return nil, err
	}

	// The server only knows about documents it has been told about.
	// Anything not readable on disk (unsaved, or not yet flushed) is
	// pushed as a full-content didOpen before we hand out its URI.
	if !fileReadable(absPath) {
		if err := b.syncOpen(ctx, buf, docURI); err != nil {
			b.logger.Error("Failed to sync document content",
				zap.Int("buffer", buf.ID()),
				zap.String("uri", string(docURI)),
				zap.Error(err),
			)
			return nil, err
		}
	}

	pos, err := editor.CursorPosition(buf)
	if err != nil {
		perr := &PositionError{Buffer: buf.ID(), Err: err}
		b.logger.Error("Failed to compute cursor position",
			zap.Int("buffer", buf.ID()),
			zap.Error(err),
		)
		return nil, perr
	}

	ind := buf.Indent()
	indentSize := ind.IndentSize
	if indentSize <= 0 {
		indentSize = ind.TabSize
	}

	return &protocol.DocumentDescriptor{
		URI:          docURI,
		Version:      buf.Version(),
		RelativePath: b.relativePath(absPath),
		InsertSpaces: ind.InsertSpaces,
		TabSize:      ind.TabSize,
		IndentSize:   indentSize,
		Position:     pos,
	}, nil
}

// documentURI resolves the buffer's absolute path and file URI. For
// unsaved buffers the name is synthesized from the buffer id and the
// filetype's extension, so the same buffer in the same working
// directory always maps to the same URI.
func (b *Builder) documentURI(buf editor.Buffer) (string, uri.URI, error) {
	path := buf.Path()

	if path == "" {
		cwd, err := b.host.WorkingDir()
		if err != nil {
			return "", "", &URIError{Buffer: buf.ID(), Err: err}
		}
		name := fmt.Sprintf("untitled-%d%s", buf.ID(), b.filetypes.Extension(buf.Filetype()))
		path = filepath.Join(cwd, name)
		return path, uri.File(path), nil
	}

	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", "", &URIError{Buffer: buf.ID(), Err: err}
		}
		path = abs
	}

	return path, uri.File(path), nil
}

// syncOpen sends the one-way didOpen carrying the buffer's full
// content. Best effort: no retry, no queue, no acknowledgment.
func (b *Builder) syncOpen(ctx context.Context, buf editor.Buffer, docURI uri.URI) error {
	if b.notifier == nil {
		return &SyncError{URI: docURI, Err: lsp.ErrNoClient}
	}

	params := lspproto.DidOpenTextDocumentParams{
		TextDocument: lspproto.TextDocumentItem{
			URI:        lspproto.DocumentURI(docURI),
			LanguageID: lspproto.LanguageIdentifier(b.filetypes.LanguageID(buf.Filetype())),
			Version:    buf.Version(),
			Text:       buf.Text(),
		},
	}

	if err := b.notifier.Notify(ctx, lspproto.MethodTextDocumentDidOpen, params); err != nil {
		return &SyncError{URI: docURI, Err: err}
	}
	return nil
}

// relativePath relativizes the path against the workspace root,
// falling back to the basename when the path lives outside the root.
func (b *Builder) relativePath(absPath string) string {
	root := b.host.WorkspaceRoot()
	if root == "" {
		var err error
		if root, err = b.host.WorkingDir(); err != nil {
			return filepath.Base(absPath)
		}
	}

	rel, err := filepath.Rel(root, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(absPath)
	}
	return filepath.ToSlash(rel)
}

func fileReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
