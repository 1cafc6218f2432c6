package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the row a GormStore keeps per stored value. Values of every kind
// share one table and are stored as JSON documents.
type Record struct {
	Kind      string    `gorm:"primaryKey;size:32"`
	OwnerID   string    `gorm:"primaryKey;size:128"`
	ID        string    `gorm:"primaryKey;size:128"`
	Data      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName overrides the table name used by Record.
func (Record) TableName() string {
	return "records"
}

// GormStore stores values of one kind in the records table.
type GormStore[T any] struct {
	db   *gorm.DB
	kind string
}

// NewGormStore creates a store for values of the given kind. The records
// table must already exist.
func NewGormStore[T any](db *gorm.DB, kind string) *GormStore[T] {
	return &GormStore[T]{db: db, kind: kind}
}

// Get implements Store.
func (s *GormStore[T]) Get(ctx context.Context, owner, id string) (T, error) {
	var zero T
	var rec Record
	err := s.db.WithContext(ctx).
		Where("kind = ? AND owner_id = ? AND id = ?", s.kind, owner, id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("loading %s %s: %w", s.kind, id, err)
	}
	return s.decode(rec)
}

// List implements Store.
func (s *GormStore[T]) List(ctx context.Context, owner string) ([]T, error) {
	var recs []Record
	err := s.db.WithContext(ctx).
		Where("kind = ? AND owner_id = ?", s.kind, owner).
		Order("created_at ASC, id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.kind, err)
	}
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := s.decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Put implements Store. Replacing a record keeps its original position.
func (s *GormStore[T]) Put(ctx context.Context, owner, id string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", s.kind, id, err)
	}
	rec := Record{Kind: s.kind, OwnerID: owner, ID: id, Data: string(data)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "owner_id"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("saving %s %s: %w", s.kind, id, err)
	}
	return nil
}

// Delete implements Store.
func (s *GormStore[T]) Delete(ctx context.Context, owner, id string) error {
	result := s.db.WithContext(ctx).
		Where("kind = ? AND owner_id = ? AND id = ?", s.kind, owner, id).
		Delete(&Record{})
	if result.Error != nil {
		return fmt.Errorf("deleting %s %s: %w", s.kind, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore[T]) decode(rec Record) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(rec.Data), &v); err != nil {
		return v, fmt.Errorf("decoding %s %s: %w", s.kind, rec.ID, err)
	}
	return v, nil
}
