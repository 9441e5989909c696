package cli

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	designio "github.com/matzehuels/reeldesigner/pkg/io"
	"github.com/matzehuels/reeldesigner/pkg/reel"
)

func press(m EditModel, keys ...tea.KeyMsg) (EditModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(EditModel)
	}
	return m, cmd
}

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestEditModelSeedsInputs(t *testing.T) {
	m := NewEditModel(reel.Default())
	if m.Inputs[0] != "1400" || m.Inputs[5] != "30" {
		t.Errorf("Inputs = %v", m.Inputs)
	}
	if !m.Valid() {
		t.Error("default record should be valid")
	}
}

func TestEditModelLiveValidation(t *testing.T) {
	m := NewEditModel(reel.Default())

	m, _ = press(m, keyBackspace, keyBackspace, keyBackspace, keyBackspace)
	if m.Valid() {
		t.Fatal("empty flange input should be invalid")
	}
	if !strings.Contains(m.View(), "flange diameter must be a number") {
		t.Errorf("view lacks parse error:\n%s", m.View())
	}

	m, _ = press(m, typed("6"), typed("0"), typed("0"))
	if m.Valid() {
		t.Fatal("flange 600 with core 700 should be invalid")
	}
	if !strings.Contains(m.View(), reel.MsgBarrelNotSmaller) {
		t.Errorf("view lacks relational violation:\n%s", m.View())
	}

	m, cmd := press(m, keyEnter)
	if m.Saved || cmd != nil {
		t.Fatal("enter on an invalid record should not save")
	}

	m, _ = press(m, keyDown, keyBackspace, keyBackspace, keyBackspace, typed("300"))
	m, cmd = press(m, keyEnter)
	if !m.Saved || cmd == nil {
		t.Fatal("enter on a valid record should save and quit")
	}

	d := m.Dimensions()
	if d.FlangeDiameter != 600 || d.BarrelDiameter != 300 {
		t.Errorf("Dimensions() = %+v", d)
	}
}

func TestEditModelIgnoresLetters(t *testing.T) {
	m, _ := press(NewEditModel(reel.Default()), typed("x"), typed("-"))
	if m.Inputs[0] != "1400" {
		t.Errorf("Inputs[0] = %q, want 1400", m.Inputs[0])
	}
}

func TestEditModelCursorBounds(t *testing.T) {
	m, _ := press(NewEditModel(reel.Default()), keyUp)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up at top, want 0", m.Cursor)
	}
	for range 10 {
		m, _ = press(m, keyDown)
	}
	if m.Cursor != len(m.Fields)-1 {
		t.Errorf("Cursor = %d after many downs, want %d", m.Cursor, len(m.Fields)-1)
	}
}

func TestEditModelEscQuitsWithoutSaving(t *testing.T) {
	m, cmd := press(NewEditModel(reel.Default()), keyEsc)
	if m.Saved {
		t.Error("esc should not save")
	}
	if cmd == nil {
		t.Error("esc should quit")
	}
}

func TestEditModelKeepsEarlierValues(t *testing.T) {
	before := NewEditModel(reel.Default())
	_, _ = press(before, typed("5"))
	if before.Inputs[0] != "1400" {
		t.Errorf("earlier model mutated: %q", before.Inputs[0])
	}
}

func TestEditBase(t *testing.T) {
	tests := []struct {
		file, output, want string
	}{
		{"", "", "reel"},
		{"designs/a.toml", "", "designs/a.toml"},
		{"designs/a.toml", "out/b", "out/b"},
	}
	for _, tt := range tests {
		if got := editBase(tt.file, tt.output); got != tt.want {
			t.Errorf("editBase(%q, %q) = %q, want %q", tt.file, tt.output, got, tt.want)
		}
	}
}

func TestSaveDesign(t *testing.T) {
	d := reel.Default()
	d.Width = 950

	path := filepath.Join(t.TempDir(), "reel.yaml")
	if err := saveDesign(path, d); err != nil {
		t.Fatalf("saveDesign() error = %v", err)
	}
	got, err := designio.ImportDesign(path)
	if err != nil {
		t.Fatalf("ImportDesign() error = %v", err)
	}
	if got != d {
		t.Errorf("round trip = %+v, want %+v", got, d)
	}

	if err := saveDesign(filepath.Join(t.TempDir(), "reel.txt"), d); err == nil {
		t.Error("saveDesign(.txt) error = nil")
	}
}
