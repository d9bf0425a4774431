package handler

import (
	"net/http"

	"classroom-market/internal/model"
	"classroom-market/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(service service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

func (h *PurchaseHandler) RegisterRoutes(public, teacher *gin.RouterGroup) {
	public.POST("purchases", h.CreatePurchase)

	teacher.GET("purchases", h.GetPurchases)
	teacher.PUT("purchases/:id/delivered", h.SetDelivered)
	teacher.POST("purchases/:id/cancel", h.CancelPurchase)
	teacher.DELETE("purchases/:id", h.DeleteDeliveredPurchase)
}

func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req PurchaseRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.Purchase(c, req.StudentID, req.ItemID)
	if err != nil {
		handleError(c, err, "CreatePurchase")
		return
	}

	respond(c, result, http.StatusCreated)
}

func (h *PurchaseHandler) GetPurchases(c *gin.Context) {
	var query PurchaseListQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	purchases, err := h.service.List(c, model.DeliveryFilter(query.Status))
	if err != nil {
		handleError(c, err, "GetPurchases")
		return
	}

	respond(c, purchases, http.StatusOK)
}

func (h *PurchaseHandler) SetDelivered(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req SetDeliveredRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	purchase, err := h.service.SetDelivered(c, id, *req.Delivered)
	if err != nil {
		handleError(c, err, "SetDelivered")
		return
	}

	respond(c, purchase, http.StatusOK)
}

func (h *PurchaseHandler) CancelPurchase(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.CancelPurchase(c, id); err != nil {
		handleError(c, err, "CancelPurchase")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *PurchaseHandler) DeleteDeliveredPurchase(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteDeliveredPurchase(c, id); err != nil {
		handleError(c, err, "DeleteDeliveredPurchase")
		return
	}

	respond(c, nil, http.StatusNoContent)
}
