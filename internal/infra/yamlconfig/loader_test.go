package yamlconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
)

func writeConfig(t *testing.T, content string) domain.Workspace {
	t.Helper()
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, domain.ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return domain.NewWorkspace(tmp)
}

func TestLoad_Valid(t *testing.T) {
	ws := writeConfig(t, `
official-packages:
  - ros-humble-desktop
  - ros-humble-xacro
`)

	l := NewLoader()
	got, err := l.Load(ws)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if len(got.Official) != 2 {
		t.Fatalf("expected 2 packages, got=%d", len(got.Official))
	}
	if got.Official[0] != "ros-humble-desktop" || got.Official[1] != "ros-humble-xacro" {
		t.Fatalf("unexpected packages: %v", got.Official)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	ws := domain.NewWorkspace(t.TempDir())

	l := NewLoader()
	_, err := l.Load(ws)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	ws := writeConfig(t, "official-packages: [unclosed\n")

	l := NewLoader()
	_, err := l.Load(ws)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}

func TestLoad_EmptyList(t *testing.T) {
	ws := writeConfig(t, "official-packages: []\n")

	l := NewLoader()
	got, err := l.Load(ws)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !got.Empty() {
		t.Fatalf("expected empty package set, got: %v", got.Official)
	}
}

func TestLoad_MissingKey(t *testing.T) {
	ws := writeConfig(t, "something-else: true\n")

	l := NewLoader()
	got, err := l.Load(ws)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !got.Empty() {
		t.Fatalf("expected empty package set, got: %v", got.Official)
	}
}

func TestLoad_BlankEntry(t *testing.T) {
	ws := writeConfig(t, `
official-packages:
  - ros-humble-desktop
  - "  "
`)

	l := NewLoader()
	_, err := l.Load(ws)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}

func TestLoad_NonStringEntry(t *testing.T) {
	ws := writeConfig(t, `
official-packages:
  - ros-humble-desktop
  - {nested: map}
`)

	l := NewLoader()
	_, err := l.Load(ws)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
