package filetype

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// overridesFile is the on-disk shape of a filetype overrides document.
type overridesFile struct {
	Filetypes []Mapping `yaml:"filetypes"`
}

// LoadOverrides reads extra mappings from a yaml file and applies them
// to the registry. Entries for already-registered filetypes replace the
// existing mapping; that is the point of an override file.
func (r *Registry) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &OverridesNotFoundError{Path: path, Err: err}
	}

	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return &OverridesParseError{Path: path, Err: err}
	}

	for _, m := range f.Filetypes {
		if m.Filetype == "" {
			return &OverridesValidationError{
				Path:    path,
				Field:   "filetype",
				Message: "filetype is required",
			}
		}
		if m.LanguageID == "" && m.Extension == "" {
			return &OverridesValidationError{
				Path:    path,
				Field:   "language_id",
				Message: "at least one of language_id or extension is required",
			}
		}

		r.Lock()
		r.mappings[m.Filetype] = m
		r.Unlock()

		r.logger.Debug("Filetype override applied",
			zap.String("filetype", m.Filetype),
			zap.String("language_id", m.LanguageID),
		)
	}

	r.logger.Info("Filetype overrides loaded",
		zap.String("path", path),
		zap.Int("count", len(f.Filetypes)),
	)

	return nil
}
