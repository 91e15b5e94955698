package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/BlackSenju/techhive-automation/internal/models"
)

// GetProductsHandler godoc
// @Summary List products
// @Description Lists up to 250 products from the connected store. Without configured credentials the list is empty and a message explains why.
// @Tags products
// @Produce json
// @Success 200 {object} ProductsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if !catalog.Configured() {
		writeJSON(w, http.StatusOK, ProductsResponse{
			Products: []models.Product{},
			Message:  "Shopify credentials not configured; returning empty product list",
		})
		return
	}

	products, err := catalog.ListProducts(r.Context(), 250)
	if err != nil {
		activityLog.RecordError("fetch_products", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, ProductsResponse{Products: products})
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := catalog.GetProduct(r.Context(), id)
	if err != nil {
		activityLog.RecordError("fetch_product", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Applies a partial field update and returns the product as the catalog now sees it.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param fields body object true "Partial product fields"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var fields map[string]any
	if err := readJSON(w, r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	updated, err := catalog.UpdateProduct(r.Context(), id, fields)
	if err != nil {
		activityLog.RecordError("update_product", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// BulkEditHandler godoc
// @Summary Apply one update to many products
// @Description Applies the same partial update to every listed product ID. A failing product does not abort the rest.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkEditRequest true "Product IDs and shared update"
// @Success 200 {object} BulkEditResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/bulk-edit [post]
func BulkEditHandler(w http.ResponseWriter, r *http.Request) {
	var req BulkEditRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if len(req.ProductIDs) == 0 {
		writeError(w, http.StatusBadRequest, "product_ids is required")
		return
	}
	if len(req.Updates) == 0 {
		writeError(w, http.StatusBadRequest, "updates is required")
		return
	}

	results, successful := autoSvc.BulkEdit(r.Context(), req.ProductIDs, req.Updates)
	writeJSON(w, http.StatusOK, BulkEditResponse{
		Results:    results,
		Total:      len(results),
		Successful: successful,
	})
}
