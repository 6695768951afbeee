package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func setupStoreFile(t *testing.T) string {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "vitalog.json")
	if err := os.WriteFile(storePath, []byte(`{"version":1,"data":{}}`), 0600); err != nil {
		t.Fatalf("failed to write store file: %v", err)
	}
	return storePath
}

func TestCreateBackup(t *testing.T) {
	storePath := setupStoreFile(t)
	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1,"data":{}}` {
		t.Errorf("backup content differs from store: %s", data)
	}

	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup should keep the store extension, got %s", backupPath)
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected an error backing up a missing store")
	}
}

func TestListBackupsEmpty(t *testing.T) {
	mgr := NewManager(setupStoreFile(t))

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRotation(t *testing.T) {
	mgr := NewManager(setupStoreFile(t))
	mgr.SetMaxBackups(2)

	for i := 0; i < 4; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("backup %d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) > 2 {
		t.Errorf("rotation kept %d backups, want at most 2", len(backups))
	}
}

func TestSetMaxBackupsIgnoresInvalid(t *testing.T) {
	mgr := NewManager(setupStoreFile(t))
	mgr.SetMaxBackups(0)
	if mgr.MaxBackups() != DefaultMaxBackups {
		t.Errorf("MaxBackups = %d, want default %d", mgr.MaxBackups(), DefaultMaxBackups)
	}
}

func TestRestoreBackup(t *testing.T) {
	storePath := setupStoreFile(t)
	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	// Change the live store, then roll it back.
	if err := os.WriteFile(storePath, []byte(`{"version":1,"data":{"x":1}}`), 0600); err != nil {
		t.Fatalf("failed to modify store: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	if string(data) != `{"version":1,"data":{}}` {
		t.Errorf("store was not restored: %s", data)
	}

	// The pre-restore safety copy joins the backup list.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a safety copy before restore, got %d backups", len(backups))
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	mgr := NewManager(setupStoreFile(t))
	if err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error restoring a missing backup")
	}
}
