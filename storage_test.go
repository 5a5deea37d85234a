package chaucha

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := NewDirStorage(dir)

	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() of a missing key error = %v, want ErrNotFound", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Errorf("Delete() of a missing key: %v", err)
	}

	for _, v := range []string{`{"a":1}`, `{"a":2}`} {
		if err := s.Set("k", []byte(v)); err != nil {
			t.Fatalf("Set() unexpected error: %v", err)
		}
		got, err := s.Get("k")
		if err != nil {
			t.Fatalf("Get() unexpected error: %v", err)
		}
		if string(got) != v {
			t.Errorf("Get() = %s, want %s", got, v)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "k.json" {
		t.Errorf("storage folder holds %v, want only k.json", entries)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.Path("k")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file still exists after Delete(): %v", err)
	}
}

func TestMemoryStorage(t *testing.T) {
	var s MemoryStorage
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() of a missing key error = %v, want ErrNotFound", err)
	}
	value := []byte("v1")
	s.Set("k", value)
	value[0] = 'x'
	got, _ := s.Get("k")
	if string(got) != "v1" {
		t.Errorf("Get() = %s, stored value must not alias the caller's slice", got)
	}
	s.Delete("k")
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
}
