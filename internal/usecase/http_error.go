package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// repositoryの分類エラーをHTTPへ変換する。
// 400: 一意制約違反 / 404: 行なし・参照先なし / 500: その他
func fromRepoError(err error, entity string) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, entity+" not found")
	case errors.Is(err, repo.ErrReference):
		return NewHTTPError(http.StatusNotFound, "referenced resource not found")
	case errors.Is(err, repo.ErrConflict):
		return NewHTTPError(http.StatusBadRequest, "duplicate value for "+entity)
	default:
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
}
