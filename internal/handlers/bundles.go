package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"freshpick/internal/catalog"
	"freshpick/internal/models"
	"freshpick/internal/store"
)

type bundleItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type createBundleRequest struct {
	Name string `json:"name" binding:"required"`
	// Empty items means "snapshot the current cart".
	Items []bundleItemRequest `json:"items"`
}

type updateBundleRequest struct {
	Name  string              `json:"name" binding:"required"`
	Items []bundleItemRequest `json:"items" binding:"required"`
}

// GET /bundles
func GetBundles(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Bundles())
	}
}

/*
POST /bundles
Two creation paths, matching the app's two forms: with an explicit item
list, or without one to snapshot the current cart.
*/
func CreateBundle(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /bundles"
		defer handlePanic(c, route)

		var req createBundleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondWithError(c, http.StatusBadRequest, route, "name is required")
			return
		}

		if len(req.Items) == 0 {
			bundle, ok := st.CreateBundleFromCart(name)
			if !ok {
				respondWithError(c, http.StatusConflict, route, "cart is empty")
				return
			}
			c.JSON(http.StatusCreated, bundle)
			return
		}

		items, err := resolveBundleItems(req.Items)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		bundle, ok := st.CreateBundle(name, items)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "at least one item is required")
			return
		}
		c.JSON(http.StatusCreated, bundle)
	}
}

// PUT /bundles/:id
func UpdateBundle(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /bundles/:id"
		defer handlePanic(c, route)

		bundleID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req updateBundleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		items, err := resolveBundleItems(req.Items)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		if !st.UpdateBundle(bundleID, strings.TrimSpace(req.Name), items) {
			respondWithError(c, http.StatusNotFound, route, "bundle not found")
			return
		}

		bundle, _ := st.BundleByID(bundleID)
		c.JSON(http.StatusOK, bundle)
	}
}

// DELETE /bundles/:id
func DeleteBundle(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /bundles/:id"
		defer handlePanic(c, route)

		bundleID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		if !st.DeleteBundle(bundleID) {
			respondWithError(c, http.StatusNotFound, route, "bundle not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "bundle deleted"})
	}
}

// POST /bundles/:id/cart — merge the bundle into the cart.
func AddBundleToCart(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /bundles/:id/cart"
		defer handlePanic(c, route)

		bundleID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		if !st.AddBundleToCart(bundleID) {
			respondWithError(c, http.StatusNotFound, route, "bundle not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": st.CartItems()})
	}
}

func resolveBundleItems(reqs []bundleItemRequest) ([]models.BundleItem, error) {
	items := make([]models.BundleItem, 0, len(reqs))
	for _, r := range reqs {
		productID, err := uuid.Parse(r.ProductID)
		if err != nil {
			return nil, errors.New("invalid productId")
		}
		product, ok := catalog.ByID(productID)
		if !ok {
			return nil, errors.New("product not found")
		}
		items = append(items, models.BundleItem{
			Product:  product,
			Quantity: r.Quantity,
		})
	}
	return items, nil
}
