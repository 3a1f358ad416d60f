package repository

import (
	"context"
	"errors"

	"shopcart/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ProductRecordRepository はカート明細の永続ミラーの約束。
// インメモリ側と同じマージ規則（数量加算・価格は初回）をname_keyで適用する。
type ProductRecordRepository interface {
	// 同一キーは数量加算
	UpsertByNameKey(ctx context.Context, nameKey string, name string, price float64, addQty int64) error
	// 0件でも成功（冪等）
	DeleteByNameKey(ctx context.Context, nameKey string) error
	DeleteAll(ctx context.Context) error
	List(ctx context.Context) ([]model.ProductRecord, error)
}
