package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"freshpick/internal/catalog"
	"freshpick/internal/config"
	"freshpick/internal/models"
	"freshpick/internal/pricing"
	"freshpick/internal/store"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /cart
func GetCart(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, gin.H{
			"items":      st.CartItems(),
			"itemsTotal": pricing.Round2(st.CartTotal()),
		})
	}
}

// POST /cart/items
func AddCartItem(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if req.Quantity < 0 {
			respondWithError(c, http.StatusBadRequest, route, "quantity must be greater than zero")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid productId")
			return
		}

		product, ok := catalog.ByID(productID)
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		st.AddToCart(product, req.Quantity)
		c.JSON(http.StatusCreated, gin.H{"items": st.CartItems()})
	}
}

// PUT /cart/items/:id — quantity 0 or less removes the line.
func UpdateCartItem(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:id"
		defer handlePanic(c, route)

		itemID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		st.UpdateQuantity(itemID, *req.Quantity)
		c.JSON(http.StatusOK, gin.H{"items": st.CartItems()})
	}
}

// DELETE /cart/items/:id
func DeleteCartItem(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:id"
		defer handlePanic(c, route)

		itemID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		st.RemoveFromCart(itemID)
		c.JSON(http.StatusOK, gin.H{"items": st.CartItems()})
	}
}

// DELETE /cart
func ClearCart(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		st.ClearCart()
		c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
	}
}

/*
GET /cart/quote
- fulfillment: pickup (default) or delivery
- tip: fraction in [0,1], default 0
- taxRate: default from config
Returns the current cart's price breakdown, rounded for display.
*/
func GetCartQuote(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart/quote"
		defer handlePanic(c, route)

		fulfillment, ok := parseFulfillment(c.Query("fulfillment"))
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "fulfillment must be pickup or delivery")
			return
		}

		tip, ok := parseRate(c.Query("tip"), 0)
		if !ok || tip > 1 {
			respondWithError(c, http.StatusBadRequest, route, "tip must be a fraction between 0 and 1")
			return
		}

		taxRate, ok := parseRate(c.Query("taxRate"), config.AppEnv.DefaultTaxRate)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "invalid taxRate")
			return
		}

		b := pricing.Calculate(st.CartTotal(), fulfillment, tip, taxRate)
		c.JSON(http.StatusOK, roundedBreakdown(b))
	}
}

func parseFulfillment(raw string) (models.FulfillmentMethod, bool) {
	switch strings.TrimSpace(raw) {
	case "", string(models.FulfillmentPickup):
		return models.FulfillmentPickup, true
	case string(models.FulfillmentDelivery):
		return models.FulfillmentDelivery, true
	default:
		return "", false
	}
}

func parseRate(raw string, fallback float64) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// roundedBreakdown is the display form: every monetary field rounded to
// cents. The engine itself stays full precision.
func roundedBreakdown(b pricing.Breakdown) gin.H {
	return gin.H{
		"itemsTotal":    pricing.Round2(b.ItemsTotal),
		"deliveryFee":   pricing.Round2(b.DeliveryFee),
		"serviceFee":    pricing.Round2(b.ServiceFee),
		"smallOrderFee": pricing.Round2(b.SmallOrderFee),
		"tax":           pricing.Round2(b.Tax),
		"tip":           pricing.Round2(b.Tip),
		"grandTotal":    pricing.Round2(b.GrandTotal),
	}
}
