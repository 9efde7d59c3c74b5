package repository

import "errors"

var (
	// 対象行が存在しない
	ErrNotFound = errors.New("not found")

	// 一意制約違反（sku / email など）
	ErrConflict = errors.New("conflict")

	// 外部キーの参照先が存在しない
	ErrReference = errors.New("reference not found")
)
