package plugin

import (
	"go.uber.org/zap"

	"github.com/woxQAQ/copilot-bridge/internal/editor"
	"github.com/woxQAQ/copilot-bridge/pkg/protocol"
)

// EditorInfoParams assembles the setEditorInfo payload sent once after
// the client starts: who the editor is and who we are.
func EditorInfoParams(h editor.Host, logger *zap.Logger) protocol.SetEditorInfoParams {
	return protocol.SetEditorInfoParams{
		EditorInfo: editor.Info(h),
		EditorPluginInfo: protocol.EditorPluginInfo{
			Name:    Name,
			Version: Version(h, logger),
		},
	}
}
