//go:build profile

package prof

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSession(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		CPU:   filepath.Join(dir, "cpu.prof"),
		Heap:  filepath.Join(dir, "heap.prof"),
		Block: filepath.Join(dir, "block.prof"),
	}

	s, err := Start(opts)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := Start(Options{CPU: filepath.Join(dir, "other.prof")}); !errors.Is(err, ErrActive) {
		t.Errorf("second Start() error = %v, want %v", err, ErrActive)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("second Stop() error = %v, want nil", err)
	}

	for _, path := range []string{opts.CPU, opts.Heap, opts.Block} {
		fi, err := os.Stat(path)
		if err != nil {
			t.Errorf("Stat(%s) error = %v", filepath.Base(path), err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", filepath.Base(path))
		}
	}

	// CPU profiling is free again.
	s, err = Start(Options{CPU: filepath.Join(dir, "again.prof")})
	if err != nil {
		t.Fatalf("Start() after Stop error = %v", err)
	}
	s.Stop()
}

func TestStartInvalidPath(t *testing.T) {
	_, err := Start(Options{CPU: "/nonexistent/directory/cpu.prof"})
	if err == nil {
		t.Fatal("Start() error = nil, want error for invalid path")
	}
	if _, err := Start(Options{}); err != nil {
		t.Errorf("Start() after failure error = %v, want nil", err)
	}
}
