package repository

import (
	"errors"

	repo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres のエラーを repository の分類へ寄せる。
// 23505: unique_violation / 23503: foreign_key_violation
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrConflict
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return repo.ErrReference
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return repo.ErrConflict
		case "23503":
			return repo.ErrReference
		}
	}

	return err
}
