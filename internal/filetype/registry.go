package filetype

import (
	"sync"

	"go.uber.org/zap"
)

const (
	// DefaultLanguageID is reported for filetypes with no mapping.
	DefaultLanguageID = "plaintext"

	// DefaultExtension is used when synthesizing names for unsaved
	// buffers whose filetype has no mapping.
	DefaultExtension = ".txt"
)

// Mapping ties an editor filetype to the protocol language id and the
// file extension used for synthesized untitled names.
type Mapping struct {
	Filetype   string `yaml:"filetype"`
	LanguageID string `yaml:"language_id"`
	Extension  string `yaml:"extension"`
}

// Registry maps editor filetypes to language ids and extensions.
type Registry struct {
	sync.RWMutex
	mappings map[string]Mapping
	logger   *zap.Logger
}

// NewRegistry creates an empty filetype registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		mappings: make(map[string]Mapping),
		logger:   logger.With(zap.String("component", "filetype-registry")),
	}
}

// Register adds a mapping to the registry.
func (r *Registry) Register(m Mapping) error {
	r.Lock()
	defer r.Unlock()

	if _, exists := r.mappings[m.Filetype]; exists {
		return &AlreadyRegisteredError{Filetype: m.Filetype}
	}

	r.mappings[m.Filetype] = m

	r.logger.Debug("Filetype registered",
		zap.String("filetype", m.Filetype),
		zap.String("language_id", m.LanguageID),
	)

	return nil
}

// Lookup retrieves the mapping for a filetype.
func (r *Registry) Lookup(filetype string) (Mapping, bool) {
	r.RLock()
	defer r.RUnlock()

	m, ok := r.mappings[filetype]
	return m, ok
}

// LanguageID returns the protocol language id for a filetype, falling
// back to DefaultLanguageID for unknown or empty filetypes.
func (r *Registry) LanguageID(filetype string) string {
	if m, ok := r.Lookup(filetype); ok && m.LanguageID != "" {
		return m.LanguageID
	}
	return DefaultLanguageID
}

// Extension returns the file extension for a filetype, falling back to
// DefaultExtension for unknown or empty filetypes.
func (r *Registry) Extension(filetype string) string {
	if m, ok := r.Lookup(filetype); ok && m.Extension != "" {
		return m.Extension
	}
	return DefaultExtension
}

// Count returns the number of registered mappings.
func (r *Registry) Count() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.mappings)
}
