package session

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const tokenKey = "token"

// kv is the single-table device storage. Only the "token" key is used.
type kv struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (kv) TableName() string { return "storage" }

type Store struct {
	conn *gorm.DB
	log  *zap.Logger
}

// Open opens (or creates) the device store at path. Use the sqlite in-memory
// DSN in tests.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&kv{}); err != nil {
		return nil, err
	}
	return &Store{conn: db, log: log}, nil
}

func (s *Store) Close() error {
	conn, err := s.conn.DB()
	if err != nil {
		return err
	}
	return conn.Close()
}

// Token returns the stored credential. An expired JWT is cleared and
// reported as absent so callers go straight to re-login instead of burning a
// request on a doomed call.
func (s *Store) Token() (string, error) {
	var row kv
	err := s.conn.First(&row, "key = ?", tokenKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	if row.Value == "" {
		return "", ErrNoToken
	}
	if Expired(row.Value) {
		s.log.Debug("stored token expired, clearing")
		_ = s.Clear()
		return "", ErrNoToken
	}
	return row.Value, nil
}

func (s *Store) SetToken(raw string) error {
	if raw == "" {
		return s.Clear()
	}
	return s.conn.Save(&kv{Key: tokenKey, Value: raw}).Error
}

func (s *Store) Clear() error {
	return s.conn.Delete(&kv{}, "key = ?", tokenKey).Error
}
