package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"freshpick/internal/config"
	"freshpick/internal/handlers"
	"freshpick/internal/storage"
	"freshpick/internal/store"
)

func main() {
	config.Load()

	db := storage.NewClient(config.AppEnv.DataPath)
	if err := db.Open(); err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	log.Println("local store opened at:", db.Path)

	st := store.New(store.Options{
		DB:           db,
		Bundles:      db.LoadBundles(),
		Orders:       db.LoadOrders(),
		PackingDelay: config.AppEnv.PackingDelay,
		ReadyDelay:   config.AppEnv.ReadyDelay,
	})
	st.SeedStarterBundles()

	r := gin.Default()
	handlers.Register(r, st)

	r.Run(":" + config.AppEnv.Port)
}
