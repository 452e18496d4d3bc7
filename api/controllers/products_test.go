package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/paymitra/storefront-backend/internal/catalog"
	"github.com/paymitra/storefront-backend/pkg/db/models"
	pkgerrors "github.com/paymitra/storefront-backend/pkg/errors"
)

type stubCatalogService struct {
	products  []models.Product
	product   *models.Product
	err       error
	lastInput catalog.ListInput
	lastGetID uuid.UUID
}

func (s *stubCatalogService) List(ctx context.Context, input catalog.ListInput) ([]models.Product, error) {
	s.lastInput = input
	return s.products, s.err
}

func (s *stubCatalogService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.lastGetID = id
	return s.product, s.err
}

func TestProductListSuccess(t *testing.T) {
	markdown := int64(9999)
	svc := &stubCatalogService{products: []models.Product{
		{
			ID:                 uuid.New(),
			Name:               "Wireless Earbuds Pro",
			Category:           "electronics",
			Vendor:             "Auralab",
			PriceCents:         12999,
			DiscountPriceCents: &markdown,
			IsActive:           true,
		},
		{
			ID:         uuid.New(),
			Name:       "Classic Leather Wallet",
			Category:   "accessories",
			Vendor:     "Harlow & Co",
			PriceCents: 4999,
			IsActive:   true,
		},
	}}
	handler := ProductList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=electronics&sort=price_asc&limit=12&offset=24", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastInput.Filters.Category != "electronics" {
		t.Fatalf("unexpected category filter: %q", svc.lastInput.Filters.Category)
	}
	if svc.lastInput.Sort != catalog.SortPriceAsc {
		t.Fatalf("unexpected sort: %q", svc.lastInput.Sort)
	}
	if svc.lastInput.Pagination.Limit != 12 || svc.lastInput.Pagination.Offset != 24 {
		t.Fatalf("unexpected paging: %+v", svc.lastInput.Pagination)
	}

	var envelope struct {
		Data productListResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(envelope.Data.Products))
	}
	first := envelope.Data.Products[0]
	if first.Price != "129.99" {
		t.Fatalf("expected price 129.99, got %q", first.Price)
	}
	if first.DiscountPrice == nil || *first.DiscountPrice != "99.99" {
		t.Fatalf("expected discount price 99.99, got %v", first.DiscountPrice)
	}
	if envelope.Data.Products[1].DiscountPrice != nil {
		t.Fatal("expected nil discount price on second product")
	}
}

func TestProductListPriceFilterCents(t *testing.T) {
	svc := &stubCatalogService{}
	handler := ProductList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?price_min=10&price_max=99.50", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastInput.Filters.PriceMinCents == nil || *svc.lastInput.Filters.PriceMinCents != 1000 {
		t.Fatalf("unexpected price_min: %v", svc.lastInput.Filters.PriceMinCents)
	}
	if svc.lastInput.Filters.PriceMaxCents == nil || *svc.lastInput.Filters.PriceMaxCents != 9950 {
		t.Fatalf("unexpected price_max: %v", svc.lastInput.Filters.PriceMaxCents)
	}
}

func TestProductListRejectsBadSort(t *testing.T) {
	handler := ProductList(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?sort=cheapest", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductListRejectsBadLimit(t *testing.T) {
	handler := ProductList(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?limit=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductDetailSuccess(t *testing.T) {
	product := &models.Product{
		ID:         uuid.New(),
		Name:       "Smart Desk Lamp",
		Category:   "home",
		Vendor:     "Lumen Works",
		PriceCents: 7500,
		IsActive:   true,
	}
	svc := &stubCatalogService{product: product}
	handler := ProductDetail(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", product.ID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastGetID != product.ID {
		t.Fatalf("expected get id %s, got %s", product.ID, svc.lastGetID)
	}

	var envelope struct {
		Data productResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Price != "75.00" {
		t.Fatalf("expected price 75.00, got %q", envelope.Data.Price)
	}
}

func TestProductDetailInvalidID(t *testing.T) {
	handler := ProductDetail(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-uuid", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	svc := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := ProductDetail(svc, nil)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+id.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
