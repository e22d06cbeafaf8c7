package editor

import (
	"strings"

	"github.com/woxQAQ/copilot-bridge/pkg/protocol"
	"github.com/woxQAQ/copilot-bridge/pkg/textutil"
)

// Info parses the host identity out of its version-query string. The
// first whitespace-separated token is the editor name and the second,
// if present, the version (a leading 'v' is stripped). Cheap enough to
// recompute per call.
func Info(h Host) protocol.EditorInfo {
	line := h.VersionOutput()
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	info := protocol.EditorInfo{Name: "unknown", Version: "unknown"}

	if len(fields) > 0 {
		info.Name = fields[0]
	}
	if len(fields) > 1 {
		info.Version = strings.TrimPrefix(fields[1], "v")
	}

	return info
}

// UTF16Length measures s in UTF-16 code units, preferring the host's
// native facility and falling back to the documented approximation
// (see textutil.ApproxUTF16Len for its precision gap).
func UTF16Length(h Host, s string) int {
	if m, ok := h.(UTF16Measurer); ok {
		return m.UTF16Len(s)
	}
	return textutil.ApproxUTF16Len(s)
}
