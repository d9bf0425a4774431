package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"classroom-market/internal/model"
	apperrors "classroom-market/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCartAddItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.cart.EXPECT().AddItem(mock.Anything, 1, 2).Return(&model.Cart{
			StudentID: 1,
			Lines:     []model.CartLine{{ItemID: 2, Name: "Pencil", Cost: 1, Units: 1}},
			TotalCost: 1,
			UnitCount: 1,
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/students/1/cart/items/2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), decodeBody(t, w.Body)["total_cost"])
	})

	t.Run("Failed - ExceedsStock", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.cart.EXPECT().AddItem(mock.Anything, 1, 2).Return(nil, apperrors.ErrExceedsStock).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/students/1/cart/items/2", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - InvalidItemID", func(t *testing.T) {
		router, s := setupTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/students/1/cart/items/0", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.cart.AssertNotCalled(t, "AddItem")
	})
}

func TestCartCheckout(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.cart.EXPECT().Checkout(mock.Anything, 1).Return(&model.CheckoutResult{
			Purchased:      []model.PurchaseResult{{PurchaseID: 1, ItemID: 2}, {PurchaseID: 2, ItemID: 2}},
			StudentBalance: 3,
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/students/1/cart/checkout", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody(t, w.Body)
		assert.Len(t, resp["purchased"], 2)
		assert.NotContains(t, resp, "failure")
	})

	t.Run("Partial checkout reports its failure", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.cart.EXPECT().Checkout(mock.Anything, 1).Return(&model.CheckoutResult{
			Purchased:      []model.PurchaseResult{{PurchaseID: 1, ItemID: 2}},
			StudentBalance: 0,
			Failure: &model.CheckoutFailure{
				ItemID: 3,
				Reason: apperrors.ErrSoldOut.Error(),
				Err:    apperrors.ErrSoldOut,
			},
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/students/1/cart/checkout", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		failure, ok := decodeBody(t, w.Body)["failure"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, float64(3), failure["item_id"])
	})

	t.Run("Nothing bought maps the failure", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.cart.EXPECT().Checkout(mock.Anything, 1).Return(&model.CheckoutResult{
			Failure: &model.CheckoutFailure{
				ItemID: 2,
				Reason: apperrors.ErrSoldOutConcurrent.Error(),
				Err:    apperrors.ErrSoldOutConcurrent,
			},
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/students/1/cart/checkout", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Someone else bought the last one first", decodeBody(t, w.Body)["error"])
	})

	t.Run("Failed - EmptyCart", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.cart.EXPECT().Checkout(mock.Anything, 1).Return(nil, apperrors.ErrEmptyCart).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/students/1/cart/checkout", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - InsufficientTickets", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.cart.EXPECT().Checkout(mock.Anything, 1).Return(nil, apperrors.ErrInsufficientTickets).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/students/1/cart/checkout", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCartClear(t *testing.T) {
	router, s := setupTestRouter(t)
	s.cart.EXPECT().Clear(mock.Anything, 5).Return(nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createJSONHTTPRequest("DELETE", "/api/v1/students/5/cart", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
