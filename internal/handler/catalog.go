package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/harshita-store/internal/domain/catalog"
	"github.com/xenking/harshita-store/internal/domain/product"
)

// ListProducts returns the active products narrowed by the search, category
// and sort query parameters.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products := catalog.Search(h.catalog.ActiveProducts(r.Context()), catalog.Query{
		Text:     q.Get("search"),
		Category: q.Get("category"),
		Sort:     catalog.ParseSort(q.Get("sort")),
	})
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		h.encodeProducts(e, products)
	})
}

// FeaturedProducts returns the first active products.
func (h *Handler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	limit := catalog.DefaultFeaturedLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	products := h.catalog.FeaturedProducts(r.Context(), limit)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		h.encodeProducts(e, products)
	})
}

// GetProduct returns a single active product.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.ProductByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogError(w, err, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		h.encodeProduct(e, p)
	})
}

// ListCategories returns every category.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.Categories(r.Context())
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for _, c := range categories {
			h.encodeCategory(e, c)
		}
		e.ArrEnd()
	})
}

// GetCategory returns a single category.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalog.CategoryByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogError(w, err, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		h.encodeCategory(e, c)
	})
}

// CategoryProducts returns a category with its products, optionally narrowed
// to one subcategory.
func (h *Handler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	c, products, err := h.catalog.CategoryProducts(r.Context(), r.PathValue("id"), r.URL.Query().Get("subcategory"))
	if err != nil {
		writeCatalogError(w, err, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("category")
		h.encodeCategory(e, c)
		e.FieldStart("products")
		h.encodeProducts(e, products)
		e.ObjEnd()
	})
}

// GetSettings returns the store settings, or the configured store identity
// when the catalog has none.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.store
	if s := h.catalog.Settings(r.Context()); s != nil {
		settings = *s
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeSettings(e, settings)
	})
}

func writeCatalogError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, product.ErrNotFound) {
		writeError(w, http.StatusNotFound, notFound)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
