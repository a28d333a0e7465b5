// Package testutil provides account fixtures shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/ledgertree/pkg/account"
)

// SampleList loads SampleSnapshot.
// Calls t.Fatal if the snapshot does not load.
func SampleList(t testing.TB) *account.List {
	t.Helper()
	return ListFrom(t, SampleSnapshot)
}

// ListFrom loads a snapshot document.
func ListFrom(t testing.TB, doc string) *account.List {
	t.Helper()

	l, err := account.Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}
	return l
}

// WriteSnapshot writes SampleSnapshot to a temporary directory and returns
// its path.
//
// Example:
//
//	path := testutil.WriteSnapshot(t)
//	list, err := account.LoadFile(path)
func WriteSnapshot(t testing.TB) string {
	t.Helper()
	return WriteFile(t, "accounts.json", SampleSnapshot)
}

// WriteFile writes content to name inside a temporary directory.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// MustGet returns an account of l by id.
func MustGet(t testing.TB, l *account.List, id account.ID) *account.Account {
	t.Helper()

	a, ok := l.Get(id)
	if !ok {
		t.Fatalf("account %d not found", id)
	}
	return a
}
