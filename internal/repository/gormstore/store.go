// Package gormstore implements repository.Store on top of GORM. It backs
// single-binary deployments on sqlite and the storage-level tests.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jonboyd/site-server/internal/repository"
)

type Store struct {
	db *gorm.DB
}

var _ repository.Store = (*Store)(nil)

// OpenSQLite opens (or creates) a sqlite database with foreign keys enforced.
// Use "file:name?mode=memory&cache=shared" for an in-memory database.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_foreign_keys=on&_busy_timeout=5000"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite serialises writers; one connection avoids SQLITE_BUSY under load.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the schema for every table the store uses.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(allRows()...)
}

func (s *Store) Accounts() repository.AdminAccountRepository  { return &adminAccountRepo{db: s.db} }
func (s *Store) Sessions() repository.SessionRepository       { return &sessionRepo{db: s.db} }
func (s *Store) Content() repository.SiteContentRepository    { return &siteContentRepo{db: s.db} }
func (s *Store) SocialLinks() repository.SocialLinkRepository { return &socialLinkRepo{db: s.db} }
func (s *Store) Videos() repository.VideoRepository           { return &videoRepo{db: s.db} }
func (s *Store) Subscribers() repository.SubscriberRepository { return &subscriberRepo{db: s.db} }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// first mirrors repository.HandleNotFound for GORM lookups.
func first[T any](result *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", repository.ErrForeignKeyViolation, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", repository.ErrUniqueViolation, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %v", repository.ErrForeignKeyViolation, err)
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", repository.ErrUniqueViolation, err)
		}
	}
	return err
}
