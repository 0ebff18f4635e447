package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/tablestorm/internal/table"
)

func TestDefault(t *testing.T) {
	opts := Default()

	if opts.DefaultAlignment != table.AlignNone {
		t.Errorf("expected no default alignment, got %v", opts.DefaultAlignment)
	}
	if !opts.SpacesInsideBorder {
		t.Error("expected spaces inside borders by default")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
default_alignment = "center"
spaces_inside_border = false

[custom_border_chars]
vline = "!"
hline_out = "#"
`)
	opts, err := Parse("test.toml", data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if opts.DefaultAlignment != table.AlignCenter {
		t.Errorf("expected center alignment, got %v", opts.DefaultAlignment)
	}
	if opts.SpacesInsideBorder {
		t.Error("expected spaces inside borders disabled")
	}

	b := opts.ApplyBorders(table.GridBorders())
	if b.Vline != "!" {
		t.Errorf("expected vline %q, got %q", "!", b.Vline)
	}
	if b.HlineOut != "#" {
		t.Errorf("expected hline_out %q, got %q", "#", b.HlineOut)
	}
	if b.HlineIn != "+" {
		t.Errorf("expected untouched hline_in %q, got %q", "+", b.HlineIn)
	}
}

func TestParseInvalidAlignment(t *testing.T) {
	_, err := Parse("test.toml", []byte(`default_alignment = "diagonal"`))
	if err == nil {
		t.Fatal("expected error for unknown alignment")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected ParseError, got %T", err)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("test.toml", []byte(`default_alignment = [`))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != "test.toml" {
		t.Errorf("expected path in error, got %q", perr.Path)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected missing file to load defaults, got %v", err)
	}
	if opts.DefaultAlignment != table.AlignNone || !opts.SpacesInsideBorder {
		t.Error("expected default options")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.toml")
	if err := os.WriteFile(path, []byte(`default_alignment = "right"`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if opts.DefaultAlignment != table.AlignRight {
		t.Errorf("expected right alignment, got %v", opts.DefaultAlignment)
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.toml")
	if err := os.WriteFile(path, []byte(`default_alignment = "left"`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan *Options, 4)
	w, err := Watch(path, func(opts *Options, err error) {
		if err == nil {
			reloads <- opts
		}
	})
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`default_alignment = "center"`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case opts := <-reloads:
		if opts.DefaultAlignment != table.AlignCenter {
			t.Errorf("expected reloaded center alignment, got %v", opts.DefaultAlignment)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.toml")
	w, err := Watch(path, func(*Options, error) {})
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first close failed: %v", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("expected ErrWatcherClosed, got %v", err)
	}
}
