package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Register a product for sale
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,price=int,images=array,tags=array} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /products [post]
func (h *ProductHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Description Get a paginated list of products with optional keyword search and ordering
// @Tags Products
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param order_by query string false "Order: recent or favorite"
// @Param keyword query string false "Keyword to match against name and description"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,page=int,page_size=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /products [get]
func (h *ProductHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product; is_favorite reflects the authenticated user when a token is sent
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update a product (owner only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,description=string,price=int,images=array,tags=array} true "Fields to update"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /products/{id} [patch]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product by ID (owner only)
// @Tags Products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 {string} string "No Content"
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// FavoriteProduct godoc
// @Summary Favorite a product
// @Description Add a product to the authenticated user's favorites
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /products/{id}/favorite [post]
func (h *ProductHandler) FavoriteProductDoc() {}

// UnfavoriteProduct godoc
// @Summary Unfavorite a product
// @Description Remove a product from the authenticated user's favorites
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /products/{id}/favorite [delete]
func (h *ProductHandler) UnfavoriteProductDoc() {}

// ListMyProducts godoc
// @Summary List my products
// @Description Get the authenticated user's products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,page=int,page_size=int}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /users/me/products [get]
func (h *ProductHandler) ListMyProductsDoc() {}

// ListMyFavorites godoc
// @Summary List my favorite products
// @Description Get the products the authenticated user has favorited
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,page=int,page_size=int}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /users/me/favorites [get]
func (h *ProductHandler) ListMyFavoritesDoc() {}
