package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"freshpick/internal/catalog"
	"freshpick/internal/models"
)

/*
GET /products
- search: case-insensitive substring on name
- category: exact department match
- page + limit optional; without them the full list is returned
*/
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		products := catalog.Products()

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			products = catalog.ByCategory(models.Category(category))
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filtered := make([]models.Product, 0, len(products))
			needle := strings.ToLower(search)
			for _, p := range products {
				if strings.Contains(strings.ToLower(p.Name), needle) {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
			products = paginate(products, page, limit)
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		product, ok := catalog.ByID(id)
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GET /categories
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Categories())
	}
}
