package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/timevate/internal/models"
)

// SQLiteStore is the device-local Store backed by a SQLite key-value table
type SQLiteStore struct {
	mu   sync.RWMutex // guards db; Close waits for in-flight calls
	db   *gorm.DB
	path string
}

// Open sets up the database connection at path and runs migrations
func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.runMigrations(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// DefaultPath returns the path to the SQLite database file under dataDir
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "timevate.db")
}

// DefaultDataDir returns ~/.timevate
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".timevate"), nil
}

// Path returns the database file location
func (s *SQLiteStore) Path() string {
	return s.path
}

// runMigrations creates/updates the database schema
func (s *SQLiteStore) runMigrations() error {
	return s.db.AutoMigrate(&models.Entry{})
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}
