package filetype

import (
	"go.uber.org/zap"
)

// Default returns a registry seeded with the common filetype mappings.
// Filetypes usually match language ids one-to-one; the table exists for
// the extensions and the handful of exceptions.
func Default(logger *zap.Logger) *Registry {
	r := NewRegistry(logger)

	seed := []Mapping{
		{Filetype: "go", LanguageID: "go", Extension: ".go"},
		{Filetype: "python", LanguageID: "python", Extension: ".py"},
		{Filetype: "javascript", LanguageID: "javascript", Extension: ".js"},
		{Filetype: "javascriptreact", LanguageID: "javascriptreact", Extension: ".jsx"},
		{Filetype: "typescript", LanguageID: "typescript", Extension: ".ts"},
		{Filetype: "typescriptreact", LanguageID: "typescriptreact", Extension: ".tsx"},
		{Filetype: "rust", LanguageID: "rust", Extension: ".rs"},
		{Filetype: "c", LanguageID: "c", Extension: ".c"},
		{Filetype: "cpp", LanguageID: "cpp", Extension: ".cpp"},
		{Filetype: "java", LanguageID: "java", Extension: ".java"},
		{Filetype: "ruby", LanguageID: "ruby", Extension: ".rb"},
		{Filetype: "lua", LanguageID: "lua", Extension: ".lua"},
		{Filetype: "sh", LanguageID: "shellscript", Extension: ".sh"},
		{Filetype: "bash", LanguageID: "shellscript", Extension: ".sh"},
		{Filetype: "yaml", LanguageID: "yaml", Extension: ".yaml"},
		{Filetype: "json", LanguageID: "json", Extension: ".json"},
		{Filetype: "markdown", LanguageID: "markdown", Extension: ".md"},
		{Filetype: "html", LanguageID: "html", Extension: ".html"},
		{Filetype: "css", LanguageID: "css", Extension: ".css"},
		{Filetype: "sql", LanguageID: "sql", Extension: ".sql"},
		{Filetype: "text", LanguageID: "plaintext", Extension: ".txt"},
	}

	for _, m := range seed {
		// Seed list has no duplicates; Register cannot fail here.
		_ = r.Register(m)
	}

	return r
}
