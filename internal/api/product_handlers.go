package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pc-store/internal/listing"
	"github.com/pc-store/internal/model"
	"github.com/pc-store/internal/report"
	"github.com/pc-store/internal/storage"
)

// Product handlers

// ListProducts godoc
// @Summary List products
// @Description Get a paginated product listing with optional name search
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Products per page" default(10)
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} model.ProductList
// @Failure 500 {object} map[string]string "Server error"
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := listing.BuildQuery(params.Get("page"), params.Get("limit"), params.Get("search"), "")

	result, err := h.listing.List(r.Context(), q)
	if err != nil {
		h.logger.Error("product listing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListProductsByCategory godoc
// @Summary List products in a category
// @Description Get a paginated listing filtered by category, composable with name search
// @Tags Products
// @Produce json
// @Param category path string true "Category name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Products per page" default(10)
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} model.ProductList
// @Failure 500 {object} map[string]string "Server error"
// @Router /products/{category} [get]
func (h *Handler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	category := r.PathValue("category")
	q := listing.BuildQuery(params.Get("page"), params.Get("limit"), params.Get("search"), category)

	result, err := h.listing.List(r.Context(), q)
	if err != nil {
		h.logger.Error("product listing failed", "category", category, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ProductsCount godoc
// @Summary Estimated product count
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]string "Server error"
// @Router /products/count [get]
func (h *Handler) ProductsCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.products.EstimatedCount(r.Context())
	if err != nil {
		h.logger.Error("product count failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to count products")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"count": count})
}

// CreateProduct godoc
// @Summary Create a product
// @Description Add a product to the catalog. Admin only.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Product details"
// @Success 201 {object} model.Product
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Server error"
// @Security BearerAuth
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Category == "" {
		respondError(w, http.StatusBadRequest, "name and category are required")
		return
	}
	if req.Price < 0 {
		respondError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	product, err := h.products.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("product creation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// GetProduct godoc
// @Summary Get a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /product/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := h.products.FindByID(r.Context(), id)
	if err != nil {
		h.logger.Error("product lookup failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch product")
		return
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Remove a product from the catalog. Admin only.
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string "Deletion status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /product/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.products.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("product deletion failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"status": true, "message": "product deleted"})
}

// Comment handlers

// AddComment godoc
// @Summary Comment on a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body model.AddCommentRequest true "Comment"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /product/{id}/comments [post]
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req model.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Comment == "" {
		respondError(w, http.StatusBadRequest, "comment is required")
		return
	}

	if err := h.products.AddComment(r.Context(), id, req.Comment); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("comment creation failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to add comment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "comment added successfully"})
}

// GetComments godoc
// @Summary List product comments
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} model.Comment
// @Failure 404 {object} map[string]string "Product not found"
// @Router /product/{id}/comments [get]
func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := h.products.FindByID(r.Context(), id)
	if err != nil {
		h.logger.Error("product lookup failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch product")
		return
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	comments, err := h.products.Comments(r.Context(), id)
	if err != nil {
		h.logger.Error("comment listing failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch comments")
		return
	}

	respondJSON(w, http.StatusOK, comments)
}

// Category handlers

// ListCategories godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} model.Category
// @Failure 500 {object} map[string]string "Server error"
// @Router /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.FindAll(r.Context())
	if err != nil {
		h.logger.Error("category listing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// Order handlers

// PlaceOrder godoc
// @Summary Place an order
// @Description Place an order for the authenticated user
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.PlaceOrderRequest true "Order details"
// @Success 200 {object} model.PlaceOrderResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Security BearerAuth
// @Router /orders [post]
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	email := GetCurrentEmail(r)
	if email == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	var req model.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "at least one order item is required")
		return
	}

	order, err := h.orders.Create(r.Context(), email, &req)
	if err != nil {
		h.logger.Error("order creation failed", "email", email, "error", err)
		respondJSON(w, http.StatusInternalServerError, model.PlaceOrderResponse{
			Success: false,
			Message: "Failed to place order",
		})
		return
	}

	respondJSON(w, http.StatusOK, model.PlaceOrderResponse{
		Success: true,
		Message: "Order placed successfully",
		Order:   order,
	})
}

// ListOrders godoc
// @Summary List own orders
// @Description Get the authenticated user's orders, newest first
// @Tags Orders
// @Produce json
// @Success 200 {array} model.Order
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Security BearerAuth
// @Router /orders [get]
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	email := GetCurrentEmail(r)
	if email == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	orders, err := h.orders.FindByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("order listing failed", "email", email, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// ExportProducts godoc
// @Summary Export the product catalog
// @Description Download the full catalog as an Excel workbook. Admin only.
// @Tags Products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Server error"
// @Security BearerAuth
// @Router /admin/products/export [get]
func (h *Handler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.FindAll(r.Context())
	if err != nil {
		h.logger.Error("product export failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	workbook, err := report.ProductsWorkbook(products)
	if err != nil {
		h.logger.Error("workbook build failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to build export")
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="products.xlsx"`)
	if err := workbook.Write(w); err != nil {
		h.logger.Error("workbook write failed", "error", err)
	}
}
