package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"classroom-market/internal/model"
	"classroom-market/internal/repository"
	apperrors "classroom-market/pkg/app_errors"
)

type ItemService interface {
	List(ctx context.Context) ([]*model.Item, error)
	GetByID(ctx context.Context, id int) (*model.Item, error)
	Create(ctx context.Context, item *model.Item) (*model.Item, error)
	Update(ctx context.Context, id int, params model.UpdateItemParams) (*model.Item, error)
	Delete(ctx context.Context, id int) error

	// ImportCSV adds one item per row of name,cost,quantity,image_url and
	// returns the number created.
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	WriteCSVTemplate(w io.Writer) error
}

type ItemServiceImpl struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &ItemServiceImpl{repo: repo}
}

func (s *ItemServiceImpl) List(ctx context.Context) ([]*model.Item, error) {
	return s.repo.List(ctx)
}

func (s *ItemServiceImpl) GetByID(ctx context.Context, id int) (*model.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ItemServiceImpl) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	if item.Cost < 1 {
		return nil, fmt.Errorf("%w: cost must be at least 1", apperrors.ErrInvalidInput)
	}
	if item.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrInvalidInput)
	}
	return s.repo.Create(ctx, item)
}

func (s *ItemServiceImpl) Update(ctx context.Context, id int, params model.UpdateItemParams) (*model.Item, error) {
	if params.Cost != nil && *params.Cost < 1 {
		return nil, fmt.Errorf("%w: cost must be at least 1", apperrors.ErrInvalidInput)
	}
	if params.Quantity != nil && *params.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, params)
}

func (s *ItemServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

var (
	itemCSVHeader       = []string{"name", "cost", "quantity", "image_url"}
	itemCSVTemplateRows = [][]string{
		{"Pencil", "1", "50", ""},
		{"Eraser", "2", "30", "https://example.com/eraser.jpg"},
	}
)

func isItemHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(row[0], "\ufeff")))
	return first == "name" || first == "item" || strings.Contains(first, "상품")
}

// ParseItemCSV reads item rows. Rows with a blank name are skipped, an
// unparsable or non-positive cost becomes 1 and an unparsable or negative
// quantity becomes model.DefaultItemQuantity.
func ParseItemCSV(r io.Reader) ([]*model.Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var items []*model.Item
	for line := 0; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %w", apperrors.ErrInvalidInput, err)
		}
		if line == 0 && isItemHeaderRow(row) {
			continue
		}

		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			continue
		}
		item := &model.Item{
			Name:     name,
			Cost:     1,
			Quantity: model.DefaultItemQuantity,
		}
		if cost, err := strconv.Atoi(strings.TrimSpace(cell(row, 1))); err == nil && cost >= 1 {
			item.Cost = cost
		}
		if qty, err := strconv.Atoi(strings.TrimSpace(cell(row, 2))); err == nil && qty >= 0 {
			item.Quantity = qty
		}
		if url := strings.TrimSpace(cell(row, 3)); url != "" {
			item.ImageURL = &url
		}
		items = append(items, item)
	}
	return items, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func (s *ItemServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	items, err := ParseItemCSV(r)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: no items found, expected columns %s", apperrors.ErrInvalidInput, strings.Join(itemCSVHeader, ","))
	}
	return s.repo.CreateBatch(ctx, items)
}

func (s *ItemServiceImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		imageURL := ""
		if item.ImageURL != nil {
			imageURL = *item.ImageURL
		}
		rows = append(rows, []string{item.Name, strconv.Itoa(item.Cost), strconv.Itoa(item.Quantity), imageURL})
	}
	return writeCSV(w, itemCSVHeader, rows)
}

func (s *ItemServiceImpl) WriteCSVTemplate(w io.Writer) error {
	return writeCSV(w, itemCSVHeader, itemCSVTemplateRows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
