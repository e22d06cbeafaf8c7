package editor

// Buffer is the read-only view of a single editor buffer. Every
// function in this module takes the buffer it operates on explicitly;
// there is no ambient "current buffer".
type Buffer interface {
	// ID is the host's numeric buffer identifier, stable for the
	// buffer's lifetime.
	ID() int

	// Path is the absolute path of the backing file, or "" for a
	// buffer that has never been saved.
	Path() string

	// Filetype is the host's detected filetype, or "".
	Filetype() string

	// Version is the edit-version counter, bumped on every mutation.
	Version() int32

	// Text returns the full buffer content.
	Text() string

	// Line returns the content of the 0-based line n without its
	// trailing newline, and whether the line exists.
	Line(n int) (string, bool)

	// Indent reports the buffer's whitespace settings.
	Indent() IndentOptions

	// Cursor reports the current cursor location.
	Cursor() Cursor
}

// Host is the editor-level API surface this module reads from.
type Host interface {
	// WorkingDir returns the host's current working directory.
	WorkingDir() (string, error)

	// WorkspaceRoot returns the project root used to relativize
	// descriptor paths, or "" when no workspace is open.
	WorkspaceRoot() string

	// VersionOutput returns the host's raw version-query string,
	// e.g. the first line of `--version` output.
	VersionOutput() string

	// PluginPaths returns the directories the host searches for
	// plugin installs, in priority order.
	PluginPaths() []string
}

// UTF16Measurer is implemented by hosts that expose a native UTF-16
// width facility. Hosts without one get the approximate fallback.
type UTF16Measurer interface {
	UTF16Len(s string) int
}

// IndentOptions carries the whitespace settings a descriptor reports.
type IndentOptions struct {
	InsertSpaces bool
	TabSize      int
	IndentSize   int
}

// Cursor is a 0-based cursor location. Col is a byte offset into the
// line, the way hosts usually report it; conversion to UTF-16 code
// units happens at descriptor-build time.
type Cursor struct {
	Line int
	Col  int
}
