// Package bridge is the public surface of the module: it wires the
// attach policies and the document descriptor builder together for an
// editor host embedding the copilot client.
package bridge

import (
	"context"

	"go.uber.org/zap"

	"github.com/woxQAQ/copilot-bridge/internal/attach"
	"github.com/woxQAQ/copilot-bridge/internal/config"
	"github.com/woxQAQ/copilot-bridge/internal/document"
	"github.com/woxQAQ/copilot-bridge/internal/editor"
	"github.com/woxQAQ/copilot-bridge/internal/filetype"
	"github.com/woxQAQ/copilot-bridge/internal/lsp"
	"github.com/woxQAQ/copilot-bridge/internal/plugin"
	"github.com/woxQAQ/copilot-bridge/pkg/protocol"
)

// Buffer re-exports the buffer view hosts implement.
type Buffer = editor.Buffer

// Host re-exports the editor surface hosts implement.
type Host = editor.Host

// Notifier re-exports the fire-and-forget client contract.
type Notifier = lsp.Notifier

// Decision re-exports the attach outcome.
type Decision = attach.Decision

// InclusionPolicy re-exports the per-buffer policy collaborator.
type InclusionPolicy = attach.InclusionPolicy

// IncludeFunc re-exports the closure adapter for inclusion policies.
type IncludeFunc = attach.IncludeFunc

// Options configures a Bridge.
type Options struct {
	// ConfigPath is an optional yaml configuration file; empty loads
	// defaults.
	ConfigPath string

	// Inclusion is the per-buffer policy collaborator. Nil means
	// "include everything the config allows".
	Inclusion InclusionPolicy

	// Logger defaults to zap.NewNop() when nil.
	Logger *zap.Logger
}

// Bridge evaluates attachment and builds request parameters for a
// running language-server client owned by the host.
type Bridge struct {
	host      editor.Host
	cfg       *config.Config
	evaluator *attach.Evaluator
	builder   *document.Builder
	logger    *zap.Logger
}

// New creates a Bridge around the host and an established client
// connection. The notifier may be nil while no client is running;
// descriptor construction for unsaved buffers will fail until one is
// supplied (see document.SyncError).
func New(host editor.Host, notifier Notifier, opts Options) (*Bridge, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	registry := filetype.Default(logger)
	if cfg.FiletypeOverrides != "" {
		if err := registry.LoadOverrides(cfg.FiletypeOverrides); err != nil {
			return nil, err
		}
	}

	inclusion := opts.Inclusion
	if inclusion == nil {
		inclusion = attach.IncludeFunc(func(int, string) bool { return true })
	}
	if !cfg.Enabled {
		// The master switch overrides any host-supplied policy.
		inclusion = attach.IncludeFunc(func(int, string) bool { return false })
	}

	root := cfg.WorkspaceRoot
	hostView := host
	if root != "" {
		hostView = &rootedHost{Host: host, root: root}
	}

	return &Bridge{
		host:      hostView,
		cfg:       cfg,
		evaluator: attach.NewEvaluator(attach.NewRulesPolicy(cfg.Filetypes), inclusion, logger),
		builder:   document.NewBuilder(hostView, notifier, registry, logger),
		logger:    logger,
	}, nil
}

// rootedHost overrides the host's workspace root with the configured one.
type rootedHost struct {
	editor.Host
	root string
}

func (h *rootedHost) WorkspaceRoot() string { return h.root }

// ShouldAttach reports whether the client should activate for the
// buffer, with a human-readable reason on rejection.
func (b *Bridge) ShouldAttach(buf Buffer) Decision {
	return b.evaluator.Decide(buf)
}

// Descriptor builds the document descriptor for a request against the
// buffer.
func (b *Bridge) Descriptor(ctx context.Context, buf Buffer) (*protocol.DocumentDescriptor, error) {
	return b.builder.Build(ctx, buf)
}

// DocumentParams builds the merged request parameter envelope,
// applying any caller overrides.
func (b *Bridge) DocumentParams(ctx context.Context, buf Buffer, overrides *protocol.DescriptorOverrides) (*protocol.RequestParams, error) {
	return b.builder.BuildParams(ctx, buf, overrides)
}

// EditorInfoParams assembles the handshake payload identifying the
// editor and this plugin.
func (b *Bridge) EditorInfoParams() protocol.SetEditorInfoParams {
	return plugin.EditorInfoParams(b.host, b.logger)
}
