package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// StorageKey — фиксированный ключ, под которым хранится снимок состояния.
const StorageKey = "hirenow-data"

// SnapshotRepository хранит сериализованное состояние приложения одной
// записью в таблице app_state.
type SnapshotRepository struct {
	db  *sqlx.DB
	key string
}

// NewSnapshotRepository создаёт репозиторий снимков с фиксированным ключом.
func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db, key: StorageKey}
}

// Load читает последний снимок. Возвращает (nil, nil), если снимка ещё нет.
func (r *SnapshotRepository) Load(ctx context.Context) ([]byte, error) {
	var payload string
	err := r.db.GetContext(ctx, &payload, `SELECT payload FROM app_state WHERE key = ?`, r.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: не удалось прочитать состояние: %w", err)
	}
	return []byte(payload), nil
}

// Save перезаписывает снимок целиком.
func (r *SnapshotRepository) Save(ctx context.Context, payload []byte) error {
	query := `
		INSERT INTO app_state (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, r.key, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("snapshot: не удалось записать состояние: %w", err)
	}
	return nil
}
