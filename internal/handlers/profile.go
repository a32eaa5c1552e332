package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshpick/internal/store"
)

// GET /profile — the single hard-coded shopper.
func GetProfile(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Shopper())
	}
}
