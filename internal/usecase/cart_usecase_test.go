package usecase_test

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	"shopcart/internal/cart"
	"shopcart/internal/domain/model"
	"shopcart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) UpsertByNameKey(ctx context.Context, nameKey string, name string, price float64, addQty int64) error {
	args := m.Called(ctx, nameKey, name, price, addQty)
	return args.Error(0)
}

func (m *CartProductRepoMock) DeleteByNameKey(ctx context.Context, nameKey string) error {
	args := m.Called(ctx, nameKey)
	return args.Error(0)
}

func (m *CartProductRepoMock) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CartProductRepoMock) List(ctx context.Context) ([]model.ProductRecord, error) {
	args := m.Called(ctx)
	recs, _ := args.Get(0).([]model.ProductRecord)
	return recs, args.Error(1)
}

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("want HTTPError, got %v", err)
	}
	assert.Equal(t, status, he.Status)
}

func TestCartUsecase_AddProduct_EmptyName(t *testing.T) {
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cart.NewStore(), pRepo)

	_, err := uc.AddProduct(context.Background(), usecase.AddProductInput{Name: "  ", Price: 1, Quantity: 1})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	pRepo.AssertNotCalled(t, "UpsertByNameKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddProduct_NegativeQuantity(t *testing.T) {
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cart.NewStore(), pRepo)

	_, err := uc.AddProduct(context.Background(), usecase.AddProductInput{Name: "Apple", Price: 1, Quantity: -1})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCartUsecase_AddProduct_InvalidPrice(t *testing.T) {
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cart.NewStore(), pRepo)

	_, err := uc.AddProduct(context.Background(), usecase.AddProductInput{Name: "Apple", Price: math.NaN(), Quantity: 1})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCartUsecase_AddProduct_Success(t *testing.T) {
	ctx := context.Background()
	store := cart.NewStore()

	pRepo := new(CartProductRepoMock)
	pRepo.On("UpsertByNameKey", mock.Anything, "apple", "Apple", 2.5, int64(3)).Return(nil)

	uc := usecase.NewCartUsecase(store, pRepo)

	msg, err := uc.AddProduct(ctx, usecase.AddProductInput{Name: "Apple", Price: 2.5, Quantity: 3})
	assert.NoError(t, err)
	assert.Equal(t, "3 Apple(s) added to the cart.", msg)

	items := store.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].Quantity)
	pRepo.AssertExpectations(t)
}

func TestCartUsecase_AddProduct_PersistenceFails_MemoryUntouched(t *testing.T) {
	store := cart.NewStore()

	pRepo := new(CartProductRepoMock)
	pRepo.On("UpsertByNameKey", mock.Anything, "apple", "Apple", 2.5, int64(3)).
		Return(errors.New("connection refused"))

	uc := usecase.NewCartUsecase(store, pRepo)

	_, err := uc.AddProduct(context.Background(), usecase.AddProductInput{Name: "Apple", Price: 2.5, Quantity: 3})
	assertHTTPStatus(t, err, http.StatusInternalServerError)

	// 永続化に失敗したらメモリも増えない
	assert.Empty(t, store.Items())
}

func TestCartUsecase_RemoveProduct_Success(t *testing.T) {
	store := cart.NewStore()
	store.Add("Apple", 2.5, 3)

	pRepo := new(CartProductRepoMock)
	pRepo.On("DeleteByNameKey", mock.Anything, "apple").Return(nil)

	uc := usecase.NewCartUsecase(store, pRepo)

	removed, err := uc.RemoveProduct(context.Background(), "APPLE")
	assert.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, store.Items())
	pRepo.AssertExpectations(t)
}

func TestCartUsecase_RemoveProduct_MissingIsInformational(t *testing.T) {
	store := cart.NewStore()

	pRepo := new(CartProductRepoMock)
	pRepo.On("DeleteByNameKey", mock.Anything, "banana").Return(nil)

	uc := usecase.NewCartUsecase(store, pRepo)

	removed, err := uc.RemoveProduct(context.Background(), "Banana")
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestCartUsecase_RemoveProduct_EmptyName(t *testing.T) {
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cart.NewStore(), pRepo)

	_, err := uc.RemoveProduct(context.Background(), "")
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCartUsecase_ClearCart(t *testing.T) {
	store := cart.NewStore()
	store.Add("Apple", 2.5, 3)

	pRepo := new(CartProductRepoMock)
	pRepo.On("DeleteAll", mock.Anything).Return(nil)

	uc := usecase.NewCartUsecase(store, pRepo)

	assert.NoError(t, uc.ClearCart(context.Background()))
	assert.Empty(t, store.Items())

	// 冪等
	assert.NoError(t, uc.ClearCart(context.Background()))
	assert.Empty(t, store.Items())
}

func TestCartUsecase_ClearCart_PersistenceFails(t *testing.T) {
	store := cart.NewStore()
	store.Add("Apple", 2.5, 3)

	pRepo := new(CartProductRepoMock)
	pRepo.On("DeleteAll", mock.Anything).Return(errors.New("connection refused"))

	uc := usecase.NewCartUsecase(store, pRepo)

	err := uc.ClearCart(context.Background())
	assertHTTPStatus(t, err, http.StatusInternalServerError)

	// メモリ側はそのまま
	assert.Len(t, store.Items(), 1)
}

func TestCartUsecase_CalculateTotal(t *testing.T) {
	store := cart.NewStore()
	store.Add("Apple", 2.5, 3)
	store.Add("Banana", 1.0, 2)

	uc := usecase.NewCartUsecase(store, new(CartProductRepoMock))

	assert.Equal(t, 9.5, uc.CalculateTotal())
}
