package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// NewSQLite открывает встроенную базу по указанному пути файла.
// Внешнего сервера БД нет: файл играет роль локального хранилища клиента.
func NewSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	conn, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: не удалось открыть файл %s: %w", path, err)
	}

	// Один писатель, файл локальный — пул больше одного соединения не нужен.
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	return conn, nil
}

// InitSchema создаёт таблицу снимков состояния, если её ещё нет.
// Схема из одной key/value таблицы: всё состояние лежит одной JSON записью
// под фиксированным ключом, без версионирования и миграций.
func InitSchema(ctx context.Context, conn *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("sqlite: не удалось создать таблицу app_state: %w", err)
	}
	return nil
}
