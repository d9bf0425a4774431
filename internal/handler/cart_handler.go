package handler

import (
	"net/http"

	"classroom-market/internal/service"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	service service.CartService
}

func NewCartHandler(service service.CartService) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("students/:id/cart", h.GetCart)
	public.POST("students/:id/cart/items/:itemId", h.AddItem)
	public.DELETE("students/:id/cart/items/:itemId", h.RemoveItem)
	public.DELETE("students/:id/cart", h.ClearCart)
	public.POST("students/:id/cart/checkout", h.Checkout)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	studentID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	cart, err := h.service.Get(c, studentID)
	if err != nil {
		handleError(c, err, "GetCart")
		return
	}

	respond(c, cart, http.StatusOK)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	studentID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	itemID, ok := ParamID(c, "itemId")
	if !ok {
		return
	}

	cart, err := h.service.AddItem(c, studentID, itemID)
	if err != nil {
		handleError(c, err, "AddCartItem")
		return
	}

	respond(c, cart, http.StatusOK)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	studentID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	itemID, ok := ParamID(c, "itemId")
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(c, studentID, itemID)
	if err != nil {
		handleError(c, err, "RemoveCartItem")
		return
	}

	respond(c, cart, http.StatusOK)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	studentID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Clear(c, studentID); err != nil {
		handleError(c, err, "ClearCart")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

// Checkout answers with the failure's status when nothing was bought and
// with 200 otherwise, including a partial checkout that reports its failure.
func (h *CartHandler) Checkout(c *gin.Context) {
	studentID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.Checkout(c, studentID)
	if err != nil {
		handleError(c, err, "Checkout")
		return
	}
	if result.Failure != nil && len(result.Purchased) == 0 {
		handleError(c, result.Failure.Err, "Checkout")
		return
	}

	respond(c, result, http.StatusOK)
}
