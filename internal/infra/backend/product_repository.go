package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/pkg/errors"
)

type productRepository struct {
	client *Client
}

// NewProductRepository creates the backend-backed ProductRepository.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

// productPage is the paginated product list answer.
type productPage struct {
	Products   []entity.Product   `json:"products"`
	Pagination *entity.Pagination `json:"pagination"`
}

func (r *productRepository) Search(ctx context.Context, query entity.ProductQuery) (*entity.ProductPage, error) {
	params := url.Values{}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}

	var raw json.RawMessage
	if err := r.client.get(ctx, "/api/products", params, &raw); err != nil {
		return nil, err
	}

	return decodeProductPage(raw, query)
}

// decodeProductPage accepts the paginated object and the older bare array.
func decodeProductPage(raw json.RawMessage, query entity.ProductQuery) (*entity.ProductPage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &entity.ProductPage{Items: []entity.Product{}, Pagination: entity.Pagination{Page: query.Page, Limit: query.Limit}}, nil
	}

	if trimmed[0] == '[' {
		var items []entity.Product
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, errors.Wrap(err, "failed to decode product list")
		}

		return &entity.ProductPage{Items: items, Pagination: singlePage(len(items), query.Page, query.Limit)}, nil
	}

	var page productPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, errors.Wrap(err, "failed to decode product page")
	}
	if page.Products == nil {
		page.Products = []entity.Product{}
	}
	pagination := singlePage(len(page.Products), query.Page, query.Limit)
	if page.Pagination != nil {
		pagination = *page.Pagination
	}

	return &entity.ProductPage{Items: page.Products, Pagination: pagination}, nil
}

func singlePage(total, page, limit int) entity.Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = total
	}

	return entity.Pagination{Page: page, Limit: limit, Total: total, TotalPages: 1}
}

func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.get(ctx, "/api/products/"+url.PathEscape(sku), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) ListSKUs(ctx context.Context) ([]entity.SKUEntry, error) {
	var entries []entity.SKUEntry
	if err := r.client.get(ctx, "/api/products_sku", nil, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *productRepository) FindBrand(ctx context.Context, sku string) (string, error) {
	var payload struct {
		Brand string `json:"brand"`
	}
	if err := r.client.get(ctx, "/api/products/"+url.PathEscape(sku)+"/brand", nil, &payload); err != nil {
		return "", err
	}

	return payload.Brand, nil
}
