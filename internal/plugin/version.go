package plugin

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/woxQAQ/copilot-bridge/internal/editor"
)

const (
	// Name is the plugin identifier reported to the language server.
	Name = "copilot-bridge"

	// ProtocolTag is the protocol-compatibility version the server
	// negotiates against. Bumped by hand when the wire contract moves.
	ProtocolTag = "1.41.0"

	// DevVersion is the build identifier reported when the install
	// directory or its git metadata cannot be resolved.
	DevVersion = "dev"
)

var (
	buildOnce    sync.Once
	buildVersion string
)

// gitRevParse is swapped out in tests.
var gitRevParse = func(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// BuildVersion resolves the plugin build identifier: the short commit
// hash of the install directory found on the host's plugin paths, or
// DevVersion when either step fails. The result is computed at most
// once per process; concurrent callers all observe the same value.
func BuildVersion(h editor.Host, logger *zap.Logger) string {
	buildOnce.Do(func() {
		buildVersion = resolveBuildVersion(h.PluginPaths(), logger)
	})
	return buildVersion
}

func resolveBuildVersion(paths []string, logger *zap.Logger) string {
	dir, err := Discover(paths, logger)
	if err != nil {
		logger.Debug("Plugin install not found, using dev version", zap.Error(err))
		return DevVersion
	}

	commit, err := gitRevParse(dir)
	if err != nil || commit == "" {
		logger.Debug("Git lookup failed, using dev version",
			zap.String("dir", dir),
			zap.Error(err),
		)
		return DevVersion
	}

	return commit
}

// Version is the full plugin version string: the protocol tag plus the
// build identifier.
func Version(h editor.Host, logger *zap.Logger) string {
	return fmt.Sprintf("%s+%s", ProtocolTag, BuildVersion(h, logger))
}
