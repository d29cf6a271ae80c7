package vault_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cryptkeep/internal/domain"
	"cryptkeep/internal/services/vault"
)

// fakeProvider records init/passwd invocations along with the state of
// the store directory at invocation time.
type fakeProvider struct {
	initErr error

	initCalls   int
	passwdCalls int

	initOptions string
	dirMode     os.FileMode
	dirExisted  bool
}

func (f *fakeProvider) VersionOutput(context.Context) (string, error) { return "", nil }
func (f *fakeProvider) Check(context.Context) error                   { return nil }
func (f *fakeProvider) Attach(ctx context.Context, store, target, options string) error {
	return nil
}

func (f *fakeProvider) Init(ctx context.Context, store, options string) error {
	f.initCalls++
	f.initOptions = options
	if info, err := os.Stat(store); err == nil {
		f.dirExisted = true
		f.dirMode = info.Mode().Perm()
	}
	return f.initErr
}

func (f *fakeProvider) ChangePassword(ctx context.Context, store string) error {
	f.passwdCalls++
	return nil
}

func TestInit_NonEmptyStoreRefused(t *testing.T) {
	f := &fakeProvider{}
	store := t.TempDir()
	marker := filepath.Join(store, "gocryptfs.conf")
	if err := os.WriteFile(marker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	err := vault.New(f).Init(context.Background(), store, "")
	if !errors.Is(err, domain.ErrStoreNotEmpty) {
		t.Fatalf("want ErrStoreNotEmpty, got %v", err)
	}
	if f.initCalls != 0 {
		t.Fatalf("provider init must not run against a non-empty store")
	}
	if _, err := os.Stat(marker); err != nil {
		t.Fatalf("existing contents must be untouched: %v", err)
	}
}

func TestInit_CreatesOwnerOnlyDirectory(t *testing.T) {
	f := &fakeProvider{}
	store := filepath.Join(t.TempDir(), "nested", "store")

	if err := vault.New(f).Init(context.Background(), store, "-scryptn 12"); err != nil {
		t.Fatalf("init: %v", err)
	}

	if f.initCalls != 1 {
		t.Fatalf("init calls = %d, want 1", f.initCalls)
	}
	if !f.dirExisted {
		t.Fatal("store directory must exist before the provider runs")
	}
	if f.dirMode != 0o700 {
		t.Fatalf("store directory mode = %o, want 700", f.dirMode)
	}
	if f.initOptions != "-scryptn 12" {
		t.Fatalf("options = %q, passed through unmodified?", f.initOptions)
	}
}

func TestInit_ProviderFailureLeavesDirectory(t *testing.T) {
	f := &fakeProvider{initErr: errors.New("wrong password")}
	store := filepath.Join(t.TempDir(), "store")

	if err := vault.New(f).Init(context.Background(), store, ""); err == nil {
		t.Fatal("provider failure must propagate")
	}

	// No rollback: whatever partial state exists stays for inspection.
	if _, err := os.Stat(store); err != nil {
		t.Fatalf("store directory should remain: %v", err)
	}
}

func TestChangePassword_MissingStore(t *testing.T) {
	f := &fakeProvider{}
	store := filepath.Join(t.TempDir(), "absent")

	err := vault.New(f).ChangePassword(context.Background(), store)
	if !errors.Is(err, domain.ErrStoreMissing) {
		t.Fatalf("want ErrStoreMissing, got %v", err)
	}
	if f.passwdCalls != 0 {
		t.Fatal("provider must not be invoked without a store")
	}
}

func TestRequireStore(t *testing.T) {
	dir := t.TempDir()
	if err := vault.RequireStore(dir); err != nil {
		t.Fatalf("existing directory: %v", err)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := vault.RequireStore(file); !errors.Is(err, domain.ErrStoreMissing) {
		t.Fatalf("plain file should not count as a store, got %v", err)
	}
}
