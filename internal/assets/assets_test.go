package assets

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestManagerLayering(t *testing.T) {
	m := NewManager()
	m.AddSource(fstest.MapFS{
		"textures/a.png": {Data: []byte("base-a")},
		"textures/b.png": {Data: []byte("base-b")},
	})
	m.AddSource(fstest.MapFS{
		"textures/a.png": {Data: []byte("override-a")},
	})

	tests := []struct {
		name string
		want string
	}{
		{"textures/a.png", "override-a"},
		{"textures/b.png", "base-b"},
		{"textures/../textures/b.png", "base-b"},
	}
	for _, tt := range tests {
		data, err := m.Load(tt.name)
		if err != nil {
			t.Errorf("Load(%s) error = %v", tt.name, err)
			continue
		}
		if string(data) != tt.want {
			t.Errorf("Load(%s) = %q, want %q", tt.name, data, tt.want)
		}
	}

	if _, err := m.Load("missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) = %v, want ErrNotFound", err)
	}
}

func TestManagerCaches(t *testing.T) {
	m := NewManager()
	m.AddSource(fstest.MapFS{"x": {Data: []byte("1")}})

	for range 3 {
		if _, err := m.Load("x"); err != nil {
			t.Fatal(err)
		}
	}
	hits, misses := m.Cache().Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d hits %d misses, want 2 and 1", hits, misses)
	}

	m.Close()
	if m.Cache().Len() != 0 {
		t.Error("Close() kept cached data")
	}
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "f.txt"), []byte("disk"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatal(err)
	}
	if data, err := m.Load("f.txt"); err != nil || string(data) != "disk" {
		t.Errorf("Load(f.txt) = %q, %v", data, err)
	}
	if err := m.AddDir(filepath.Join(dir, "f.txt")); err == nil {
		t.Error("AddDir(file) returned nil error")
	}
	if err := m.AddDir(filepath.Join(dir, "nope")); err == nil {
		t.Error("AddDir(missing) returned nil error")
	}
}

func fakeDecode(data []byte, name string) (image.Image, error) {
	if string(data) == "bad" {
		return nil, errors.New("corrupt")
	}
	return image.NewRGBA(image.Rect(0, 0, len(data), 1)), nil
}

func TestLoaderDeliversAll(t *testing.T) {
	m := NewManager()
	m.AddSource(fstest.MapFS{
		"a": {Data: []byte("aa")},
		"b": {Data: []byte("bad")},
		"c": {Data: []byte("cccc")},
	})

	l := NewLoader(m, fakeDecode, 2)
	l.Start(context.Background(), "a", "b", "c", "missing")
	if err := l.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}

	got := map[string]Result{}
	for _, r := range l.Poll() {
		got[r.Name] = r
	}
	if len(got) != 4 {
		t.Fatalf("got %d results, want 4", len(got))
	}
	if got["a"].Err != nil || got["a"].Image.Bounds().Dx() != 2 {
		t.Errorf("a = %+v, want 2px image", got["a"])
	}
	if got["b"].Err == nil {
		t.Error("b decoded despite corrupt data")
	}
	if !errors.Is(got["missing"].Err, ErrNotFound) {
		t.Errorf("missing err = %v, want ErrNotFound", got["missing"].Err)
	}

	if extra := l.Poll(); len(extra) != 0 {
		t.Errorf("second Poll() = %d results, want 0", len(extra))
	}
}

func TestLoaderCancelled(t *testing.T) {
	m := NewManager()
	m.AddSource(fstest.MapFS{"a": {Data: []byte("a")}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLoader(m, fakeDecode, 1)
	l.Start(ctx, "a", "a", "a")
	if err := l.Wait(); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, want context.Canceled", err)
	}
	if n := len(l.Poll()); n != 0 {
		t.Errorf("cancelled loader delivered %d results", n)
	}
}
