package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"shopcart/internal/cart"
	repo "shopcart/internal/repository"
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

// CartUsecase は /api/cart の業務ロジック。
// インメモリのStoreと永続ミラー（ProductRecord）を同じ規則で更新する。
// 永続化を先に行い、成功したときだけメモリを更新する（片側だけ進んだ状態を残さない）。
type CartUsecase struct {
	store    *cart.Store
	products repo.ProductRecordRepository
}

func NewCartUsecase(store *cart.Store, products repo.ProductRecordRepository) *CartUsecase {
	return &CartUsecase{
		store:    store,
		products: products,
	}
}

type AddProductInput struct {
	Name     string
	Price    float64
	Quantity int64
}

// AddProduct はカートへ追加して確認メッセージを返す。
// バリデーションは状態を変える前に行う。
func (u *CartUsecase) AddProduct(ctx context.Context, in AddProductInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", NewHTTPError(http.StatusBadRequest, "product name required")
	}
	if in.Quantity < 0 {
		return "", NewHTTPError(http.StatusBadRequest, "quantity must be >= 0")
	}
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return "", NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	// 永続側のupsert（同一キーは数量加算）。
	// upsertとメモリ追加は同一クリティカルセクションではないので、
	// 同名の初回追加が並行すると両側の価格が食い違い得る（保証はlast-writer-winsまで）。
	if err := u.products.UpsertByNameKey(ctx, cart.NameKey(name), name, in.Price, in.Quantity); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.store.Add(name, in.Price, in.Quantity)

	return fmt.Sprintf("%d %s(s) added to the cart.", in.Quantity, name), nil
}

// ViewCart は明細を初回追加順で返す。メモリ参照のみ。
func (u *CartUsecase) ViewCart() []cart.LineItem {
	return u.store.Items()
}

// CalculateTotal は合計金額。空カートは0。
func (u *CartUsecase) CalculateTotal() float64 {
	return u.store.Total()
}

// RemoveProduct は永続側・メモリ側を同じ正規化名で削除する。
// カートに無い場合は削除なし（removed=false）で正常終了。
func (u *CartUsecase) RemoveProduct(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, NewHTTPError(http.StatusBadRequest, "product name required")
	}

	// 0件でも成功する（冪等）
	if err := u.products.DeleteByNameKey(ctx, cart.NameKey(name)); err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.store.Remove(name), nil
}

// ClearCart は両側を空にする。2回呼んでもエラーにならない。
func (u *CartUsecase) ClearCart(ctx context.Context) error {
	if err := u.products.DeleteAll(ctx); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.store.Clear()
	return nil
}
