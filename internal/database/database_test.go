package database

import (
	"context"
	"testing"

	"finpredictor/internal/store"
)

func TestNewManager_SQLiteMigratesRecords(t *testing.T) {
	m, err := NewManager(DriverSQLite, "file:database_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer m.Close()

	if err := m.RunMigrations(); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}
	if !m.DB().Migrator().HasTable(&store.Record{}) {
		t.Fatal("records table should exist after migration")
	}

	s := store.NewGormStore[string](m.DB(), "note")
	if err := s.Put(context.Background(), "u1", "n1", "hello"); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	got, err := s.Get(context.Background(), "u1", "n1")
	if err != nil || got != "hello" {
		t.Fatalf("expected hello, got %q (%v)", got, err)
	}
}

func TestNewManager_UnknownDriver(t *testing.T) {
	if _, err := NewManager("mysql", "dsn"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestMigrator_OnlyForPostgres(t *testing.T) {
	m, err := NewManager(DriverSQLite, "file:migrator_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer m.Close()

	if _, err := m.Migrator(); err == nil {
		t.Fatal("expected error for sqlite migrator")
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected up and down migration, got %d files", len(entries))
	}
}
