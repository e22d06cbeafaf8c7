package editor

import (
	"fmt"

	lsp "go.lsp.dev/protocol"

	"github.com/woxQAQ/copilot-bridge/pkg/textutil"
)

// CursorPosition derives the LSP position of the buffer's cursor. The
// protocol encodes the character offset in UTF-16 code units, so the
// host's byte column is converted against the cursor line's content.
func CursorPosition(b Buffer) (lsp.Position, error) {
	cur := b.Cursor()
	if cur.Line < 0 {
		return lsp.Position{}, fmt.Errorf("cursor line %d out of range", cur.Line)
	}

	line, ok := b.Line(cur.Line)
	if !ok {
		return lsp.Position{}, fmt.Errorf("cursor line %d past end of buffer", cur.Line)
	}

	return lsp.Position{
		Line:      uint32(cur.Line),
		Character: uint32(textutil.UTF16OffsetInLine(line, cur.Col)),
	}, nil
}
