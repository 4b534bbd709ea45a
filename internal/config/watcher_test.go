package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skywatch-cli/skywatch/internal/config"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skywatch.toml")
	if err := os.WriteFile(path, []byte("[cli]\nlog_level = \"info\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *config.File, 1)
	w, err := config.NewWatcher(path, func(f *config.File) {
		select {
		case reloaded <- f:
		default:
		}
	}, config.WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[cli]\nlog_level = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-reloaded:
		if f.CLI.LogLevel != "debug" {
			t.Errorf("reloaded LogLevel = %q, want debug", f.CLI.LogLevel)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcherReportsReloadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skywatch.toml")
	if err := os.WriteFile(path, []byte("[cli]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 1)
	w, err := config.NewWatcher(path,
		func(*config.File) { t.Error("onReload called for an invalid file") },
		config.WithDebounce(20*time.Millisecond),
		config.WithErrorHandler(func(err error) {
			select {
			case errs <- err:
			default:
			}
		}))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[cli"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported for an invalid reload")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skywatch.toml")
	if err := os.WriteFile(path, []byte("[cli]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan struct{}, 1)
	w, err := config.NewWatcher(path, func(*config.File) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}, config.WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
		t.Error("reload triggered by an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skywatch.toml")
	if err := os.WriteFile(path, []byte("[cli]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := config.NewWatcher(path, func(*config.File) {})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
