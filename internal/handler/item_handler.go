package handler

import (
	"bytes"
	"io"
	"net/http"

	"classroom-market/internal/model"
	"classroom-market/internal/service"

	"github.com/gin-gonic/gin"
)

const maxCSVUploadBytes = 1 << 20

type ItemHandler struct {
	service service.ItemService
}

func NewItemHandler(service service.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) RegisterRoutes(public, teacher *gin.RouterGroup) {
	public.GET("items", h.GetItems)
	public.GET("items/:id", h.GetItem)

	teacher.POST("items", h.CreateItem)
	teacher.PUT("items/:id", h.UpdateItem)
	teacher.DELETE("items/:id", h.DeleteItem)
	teacher.POST("items/import", h.ImportItems)
	teacher.GET("items/export", h.ExportItems)
	teacher.GET("items/template", h.GetImportTemplate)
}

func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "GetItems")
		return
	}

	respond(c, items, http.StatusOK)
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetItem")
		return
	}

	respond(c, item, http.StatusOK)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	item := &model.Item{
		Name:     req.Name,
		Cost:     req.Cost,
		Quantity: model.DefaultItemQuantity,
		Link:     req.Link,
		ImageURL: req.ImageURL,
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	created, err := h.service.Create(c, item)
	if err != nil {
		handleError(c, err, "CreateItem")
		return
	}

	respond(c, created, http.StatusCreated)
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req UpdateItemRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.Update(c, id, model.UpdateItemParams{
		Name:     req.Name,
		Cost:     req.Cost,
		Quantity: req.Quantity,
		Link:     req.Link,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		handleError(c, err, "UpdateItem")
		return
	}

	respond(c, updated, http.StatusOK)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteItem")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

// ImportItems accepts either a multipart "file" field or a raw text/csv body.
func (h *ItemHandler) ImportItems(c *gin.Context) {
	var src io.Reader
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
			return
		}
		defer f.Close()
		src = f
	} else {
		src = c.Request.Body
	}

	created, err := h.service.ImportCSV(c, io.LimitReader(src, maxCSVUploadBytes))
	if err != nil {
		handleError(c, err, "ImportItems")
		return
	}

	respond(c, gin.H{"created": created}, http.StatusCreated)
}

func (h *ItemHandler) ExportItems(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(c, &buf); err != nil {
		handleError(c, err, "ExportItems")
		return
	}

	writeCSVAttachment(c, "items.csv", buf.Bytes())
}

func (h *ItemHandler) GetImportTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.WriteCSVTemplate(&buf); err != nil {
		handleError(c, err, "GetImportTemplate")
		return
	}

	writeCSVAttachment(c, "items_template.csv", buf.Bytes())
}
