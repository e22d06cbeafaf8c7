package document

import (
	"context"

	"github.com/woxQAQ/copilot-bridge/internal/editor"
	"github.com/woxQAQ/copilot-bridge/pkg/protocol"
)

// BuildParams builds a fresh descriptor, applies the caller's
// per-key overrides (override wins), and promotes the document
// reference and position to the top level, the shape downstream
// request builders expect. A nil overrides applies nothing.
func (b *Builder) BuildParams(ctx context.Context, buf editor.Buffer, overrides *protocol.DescriptorOverrides) (*protocol.RequestParams, error) {
	desc, err := b.Build(ctx, buf)
	if err != nil {
		return nil, err
	}

	applyOverrides(desc, overrides)

	return &protocol.RequestParams{
		Doc: *desc,
		TextDocument: protocol.TextDocumentRef{
			URI:          desc.URI,
			Version:      desc.Version,
			RelativePath: desc.RelativePath,
		},
		Position: desc.Position,
	}, nil
}

func applyOverrides(desc *protocol.DocumentDescriptor, o *protocol.DescriptorOverrides) {
	if o == nil {
		return
	}
	if o.URI != nil {
		desc.URI = *o.URI
	}
	if o.Version != nil {
		desc.Version = *o.Version
	}
	if o.RelativePath != nil {
		desc.RelativePath = *o.RelativePath
	}
	if o.InsertSpaces != nil {
		desc.InsertSpaces = *o.InsertSpaces
	}
	if o.TabSize != nil {
		desc.TabSize = *o.TabSize
	}
	if o.IndentSize != nil {
		desc.IndentSize = *o.IndentSize
	}
	if o.Position != nil {
		desc.Position = *o.Position
	}
}
