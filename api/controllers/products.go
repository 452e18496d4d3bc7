package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/paymitra/storefront-backend/api/responses"
	"github.com/paymitra/storefront-backend/api/validators"
	"github.com/paymitra/storefront-backend/internal/catalog"
	"github.com/paymitra/storefront-backend/pkg/db/models"
	pkgerrors "github.com/paymitra/storefront-backend/pkg/errors"
	"github.com/paymitra/storefront-backend/pkg/logger"
	"github.com/paymitra/storefront-backend/pkg/pagination"
)

// ProductList serves the catalog browse endpoint with filtering,
// sorting, and paging.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		input, err := parseListInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views := make([]productResponse, 0, len(products))
		for _, product := range products {
			views = append(views, newProductResponse(product))
		}

		responses.WriteSuccess(w, productListResponse{
			Products: views,
			Limit:    input.Pagination.Limit,
			Offset:   input.Pagination.Offset,
		})
	}
}

// ProductDetail serves a single catalog product by id.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newProductResponse(*product))
	}
}

func parseListInput(r *http.Request) (catalog.ListInput, error) {
	sort, err := catalog.ParseSort(r.URL.Query().Get("sort"))
	if err != nil {
		return catalog.ListInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort")
	}

	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return catalog.ListInput{}, err
	}

	offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
	if err != nil {
		return catalog.ListInput{}, err
	}

	featured, err := validators.ParseQueryBool(r, "featured")
	if err != nil {
		return catalog.ListInput{}, err
	}

	isNew, err := validators.ParseQueryBool(r, "new")
	if err != nil {
		return catalog.ListInput{}, err
	}

	priceMin, err := validators.ParseQueryCents(r, "price_min")
	if err != nil {
		return catalog.ListInput{}, err
	}

	priceMax, err := validators.ParseQueryCents(r, "price_max")
	if err != nil {
		return catalog.ListInput{}, err
	}

	return catalog.ListInput{
		Filters: catalog.ListFilters{
			Category:      strings.TrimSpace(r.URL.Query().Get("category")),
			Vendor:        strings.TrimSpace(r.URL.Query().Get("vendor")),
			FeaturedOnly:  featured,
			NewOnly:       isNew,
			PriceMinCents: priceMin,
			PriceMaxCents: priceMax,
			Query:         strings.TrimSpace(r.URL.Query().Get("q")),
		},
		Sort: sort,
		Pagination: pagination.Params{
			Limit:  limit,
			Offset: offset,
		},
	}, nil
}

type productListResponse struct {
	Products []productResponse `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type productResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Vendor        string    `json:"vendor"`
	Price         string    `json:"price"`
	DiscountPrice *string   `json:"discount_price,omitempty"`
	Rating        float64   `json:"rating"`
	ImageURL      string    `json:"image_url,omitempty"`
	IsNew         bool      `json:"is_new"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newProductResponse(product models.Product) productResponse {
	resp := productResponse{
		ID:         product.ID,
		Name:       product.Name,
		Category:   product.Category,
		Vendor:     product.Vendor,
		Price:      product.Price().StringFixed(2),
		Rating:     product.Rating,
		ImageURL:   product.ImageURL,
		IsNew:      product.IsNew,
		IsFeatured: product.IsFeatured,
		CreatedAt:  product.CreatedAt,
		UpdatedAt:  product.UpdatedAt,
	}
	if markdown := product.DiscountPrice(); markdown != nil {
		formatted := markdown.StringFixed(2)
		resp.DiscountPrice = &formatted
	}
	return resp
}
