package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"freshpick/internal/config"
	"freshpick/internal/models"
	"freshpick/internal/pricing"
	"freshpick/internal/store"
)

type createOrderRequest struct {
	Fulfillment   string    `json:"fulfillment" binding:"required,oneof=pickup delivery"`
	StoreLocation string    `json:"storeLocation" binding:"required"`
	PickupTime    time.Time `json:"pickupTime" binding:"required"`
	TipPercent    float64   `json:"tipPercent" binding:"gte=0,lte=1"`
	TaxRate       *float64  `json:"taxRate" binding:"omitempty,gte=0"`
}

/*
POST /orders
Computes the breakdown from the live cart and the request's checkout
options, then hands both to the store. The store freezes item prices,
empties the cart, and starts the status simulation.
*/
func CreateOrder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		taxRate := config.AppEnv.DefaultTaxRate
		if req.TaxRate != nil {
			taxRate = *req.TaxRate
		}

		fulfillment := models.FulfillmentMethod(req.Fulfillment)
		breakdown := pricing.Calculate(st.CartTotal(), fulfillment, req.TipPercent, taxRate)

		order, ok := st.PlaceOrder(req.PickupTime, strings.TrimSpace(req.StoreLocation), fulfillment, breakdown)
		if !ok {
			respondWithError(c, http.StatusConflict, route, "cart is empty")
			return
		}

		log.Printf("[%s] order %s placed, grand total %.2f", route, order.ID, order.GrandTotal)
		c.JSON(http.StatusCreated, order)
	}
}

/*
GET /orders
History, most recent first. page + limit optional.
*/
func GetOrders(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		orders := st.Orders()

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
			orders = paginate(orders, page, limit)
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"
		defer handlePanic(c, route)

		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		order, ok := st.OrderByID(orderID)
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /orders/:id/complete — the explicit "picked up" confirmation,
// only valid while the order is ready.
func CompleteOrder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/complete"
		defer handlePanic(c, route)

		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		if _, ok := st.OrderByID(orderID); !ok {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		if !st.CompleteOrder(orderID) {
			respondWithError(c, http.StatusConflict, route, "order is not ready for pickup")
			return
		}

		order, _ := st.OrderByID(orderID)
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:id
func DeleteOrder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /orders/:id"
		defer handlePanic(c, route)

		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		if !st.DeleteOrder(orderID) {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}
