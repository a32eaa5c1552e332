package handlers

import (
	"github.com/gin-gonic/gin"

	"freshpick/internal/store"
)

// Register mounts every route on the given router.
func Register(r gin.IRouter, st *store.Store) {
	r.GET("/products", GetProducts())
	r.GET("/products/:id", GetProduct())
	r.GET("/categories", GetCategories())

	r.GET("/cart", GetCart(st))
	r.GET("/cart/quote", GetCartQuote(st))
	r.POST("/cart/items", AddCartItem(st))
	r.PUT("/cart/items/:id", UpdateCartItem(st))
	r.DELETE("/cart/items/:id", DeleteCartItem(st))
	r.DELETE("/cart", ClearCart(st))

	r.GET("/bundles", GetBundles(st))
	r.POST("/bundles", CreateBundle(st))
	r.PUT("/bundles/:id", UpdateBundle(st))
	r.DELETE("/bundles/:id", DeleteBundle(st))
	r.POST("/bundles/:id/cart", AddBundleToCart(st))

	r.POST("/orders", CreateOrder(st))
	r.GET("/orders", GetOrders(st))
	r.GET("/orders/:id", GetOrder(st))
	r.POST("/orders/:id/complete", CompleteOrder(st))
	r.DELETE("/orders/:id", DeleteOrder(st))

	r.GET("/profile", GetProfile(st))
}
