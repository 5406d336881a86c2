// Package snapshot persists versioned ledger snapshots in a local SQLite
// archive. The engine itself is in-memory; this store is the durable
// transport behind it. A stored snapshot whose wire version differs from
// the current one is discarded on load — never partially migrated.
package snapshot

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/logger"
	"zeroledger/internal/models"
)

// Record is one archived snapshot row.
type Record struct {
	ID         uint      `gorm:"primaryKey"`
	Version    int       `gorm:"not null;index"`
	CapturedAt time.Time `gorm:"not null"`
	Payload    []byte    `gorm:"not null"`
}

// TableName keeps the table name stable regardless of GORM's pluralization.
func (Record) TableName() string { return "snapshots" }

// Store is a GORM-backed snapshot archive.
type Store struct {
	db   *gorm.DB
	keep int
}

// Open opens (creating if needed) the archive at path and migrates its
// schema. keep bounds how many snapshots are retained; 0 keeps all.
func Open(path string, keep int) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &Store{db: db, keep: keep}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save appends a snapshot to the archive and prunes rows beyond the
// retention bound.
func (s *Store) Save(snap *models.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	record := Record{
		Version:    snap.Version,
		CapturedAt: time.Now(),
		Payload:    payload,
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if s.keep > 0 {
			if err := s.prune(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) prune(tx *gorm.DB) error {
	var total int64
	if err := tx.Model(&Record{}).Count(&total).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if total <= int64(s.keep) {
		return nil
	}
	var cutoff Record
	if err := tx.Order("id DESC").Offset(s.keep - 1).First(&cutoff).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := tx.Where("id < ?", cutoff.ID).Delete(&Record{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// LoadLatest returns the most recent compatible snapshot, or nil when the
// archive is empty. An incompatible stored version is logged and treated
// as no snapshot: the caller starts from a fresh ledger instead of a
// partial migration.
func (s *Store) LoadLatest() (*models.Snapshot, error) {
	var record Record
	if err := s.db.Order("id DESC").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if record.Version != models.SnapshotVersion {
		logger.Get().Warnw("discarding stored snapshot with incompatible version",
			"stored_version", record.Version,
			"current_version", models.SnapshotVersion,
		)
		return nil, nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(record.Payload, &snap); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &snap, nil
}
