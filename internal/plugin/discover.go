package plugin

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// NotFoundError occurs when no plugin install exists on any search path.
type NotFoundError struct {
	Paths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("plugin '%s' not found in paths: %v", Name, e.Paths)
}

// Discover scans the host's plugin search paths for this plugin's
// install directory: either a subdirectory named after the plugin, or
// the path itself when it is the install. Missing paths are skipped.
func Discover(paths []string, logger *zap.Logger) (string, error) {
	for _, base := range paths {
		info, err := os.Stat(base)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("Failed to stat plugin path",
					zap.String("path", base),
					zap.Error(err),
				)
			}
			continue
		}
		if !info.IsDir() {
			continue
		}

		if filepath.Base(base) == Name {
			return base, nil
		}

		candidate := filepath.Join(base, Name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}

	return "", &NotFoundError{Paths: paths}
}
