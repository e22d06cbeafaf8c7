package bridge

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.lsp.dev/uri"
	"go.uber.org/zap/zaptest"

	"github.com/woxQAQ/copilot-bridge/internal/editor"
)

type fakeHost struct {
	workingDir string
	root       string
}

func (h *fakeHost) WorkingDir() (string, error) { return h.workingDir, nil }
func (h *fakeHost) WorkspaceRoot() string       { return h.root }
func (h *fakeHost) VersionOutput() string       { return "NVIM v0.10.2" }
func (h *fakeHost) PluginPaths() []string       { return nil }

type fakeBuffer struct {
	id       int
	path     string
	filetype string
	version  int32
	text     string
	cursor   editor.Cursor
}

func (b *fakeBuffer) ID() int                      { return b.id }
func (b *fakeBuffer) Path() string                 { return b.path }
func (b *fakeBuffer) Filetype() string             { return b.filetype }
func (b *fakeBuffer) Version() int32               { return b.version }
func (b *fakeBuffer) Text() string                 { return b.text }
func (b *fakeBuffer) Indent() editor.IndentOptions { return editor.IndentOptions{TabSize: 8} }
func (b *fakeBuffer) Cursor() editor.Cursor        { return b.cursor }

func (b *fakeBuffer) Line(n int) (string, bool) {
	lines := strings.Split(b.text, "\n")
	if n < 0 || n >= len(lines) {
		return "", false
	}
	return lines[n], true
}

type fakeNotifier struct {
	methods []string
}

func (n *fakeNotifier) Notify(_ context.Context, method string, _ any) error {
	n.methods = append(n.methods, method)
	return nil
}

func TestBridgeAttachAndBuild(t *testing.T) {
	dir := t.TempDir()
	b, err := New(&fakeHost{workingDir: dir, root: dir}, &fakeNotifier{}, Options{
		Logger: zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("Failed to create bridge: %v", err)
	}

	buf := &fakeBuffer{id: 7, path: "", filetype: "python", version: 1, text: "import os\n"}

	d := b.ShouldAttach(buf)
	if !d.Attach {
		t.Fatalf("Expected attach, got rejection: %q", d.Reason)
	}

	params, err := b.DocumentParams(context.Background(), buf, nil)
	if err != nil {
		t.Fatalf("Failed to build params: %v", err)
	}

	want := uri.File(filepath.Join(dir, "untitled-7.py"))
	if params.TextDocument.URI != want {
		t.Errorf("URI mismatch: got %s, want %s", params.TextDocument.URI, want)
	}
}

func TestBridgeDisabledByConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("enabled: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := New(&fakeHost{workingDir: "/"}, nil, Options{
		ConfigPath: path,
		Logger:     zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("Failed to create bridge: %v", err)
	}

	d := b.ShouldAttach(&fakeBuffer{id: 1, path: "/proj/main.go", filetype: "go"})
	if d.Attach {
		t.Fatalf("Expected rejection when plugin is disabled")
	}
	if d.Reason != "copilot is disabled" {
		t.Errorf("Reason mismatch: got %q, want %q", d.Reason, "copilot is disabled")
	}
}

func TestBridgeFiletypeRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "filetypes:\n  markdown: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := New(&fakeHost{workingDir: "/"}, nil, Options{
		ConfigPath: path,
		Logger:     zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("Failed to create bridge: %v", err)
	}

	d := b.ShouldAttach(&fakeBuffer{id: 1, path: "/proj/readme.md", filetype: "markdown"})
	if d.Attach {
		t.Fatalf("Expected rejection for disabled filetype")
	}
	if !strings.Contains(d.Reason, "markdown") {
		t.Errorf("Reason mismatch: got %q, want filetype reason", d.Reason)
	}
}

func TestBridgeConfiguredWorkspaceRoot(t *testing.T) {
	cwd := t.TempDir()
	root := t.TempDir()
	filePath := filepath.Join(root, "lib", "x.go")
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filePath, []byte("package lib\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("workspace_root: "+root+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := New(&fakeHost{workingDir: cwd, root: cwd}, nil, Options{
		ConfigPath: cfgPath,
		Logger:     zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("Failed to create bridge: %v", err)
	}

	desc, err := b.Descriptor(context.Background(), &fakeBuffer{id: 1, path: filePath, filetype: "go", text: "package lib\n"})
	if err != nil {
		t.Fatalf("Failed to build descriptor: %v", err)
	}
	if desc.RelativePath != "lib/x.go" {
		t.Errorf("Relative path mismatch: got %s, want lib/x.go", desc.RelativePath)
	}
}

func TestBridgeEditorInfoParams(t *testing.T) {
	b, err := New(&fakeHost{workingDir: "/"}, nil, Options{Logger: zaptest.NewLogger(t)})
	if err != nil {
		t.Fatalf("Failed to create bridge: %v", err)
	}

	params := b.EditorInfoParams()
	if params.EditorInfo.Name != "NVIM" {
		t.Errorf("Editor name mismatch: got %s, want NVIM", params.EditorInfo.Name)
	}
	if params.EditorPluginInfo.Name == "" || params.EditorPluginInfo.Version == "" {
		t.Errorf("Plugin identity incomplete: %+v", params.EditorPluginInfo)
	}
}
