package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/restaurant-ops/internal/bootstrap"
	"github.com/iliyamo/restaurant-ops/internal/config"
	"github.com/iliyamo/restaurant-ops/internal/handler"
	"github.com/iliyamo/restaurant-ops/internal/model"
	"github.com/iliyamo/restaurant-ops/internal/queue"
	"github.com/iliyamo/restaurant-ops/internal/router"
	"github.com/iliyamo/restaurant-ops/internal/store"
)

func main() {
	// .env is optional; the config loader has working defaults for everything.
	if err := godotenv.Load(); err != nil {
		log.Println("server: no .env file, using environment")
	}
	cfg := config.Load()

	st := store.New(initialState(cfg))
	defer st.Close()

	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	h := handler.NewOpsHandler(st)
	router.RegisterRoutes(e)
	router.RegisterSession(e, handler.NewSessionHandler(cfg.JWTSecret, cfg.SessionTTLMin))
	router.RegisterViews(e, h, rdb)
	router.RegisterActions(e, h, cfg, rdb)

	// Kitchen display consumer; keeps retrying on its own and never blocks
	// startup.
	go func() {
		if err := queue.StartKitchenConsumer(); err != nil {
			log.Printf("kitchen-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// initialState builds the state the store boots with: the MySQL seed when a
// seed database is configured, the built-in demo seed otherwise.  A broken
// seed database logs and falls through to the demo so the server always
// starts.
func initialState(cfg config.Config) model.RestaurantState {
	if cfg.SeedDBConfigured() {
		db, err := bootstrap.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Printf("seed-db: %v, falling back to demo seed", err)
		} else {
			defer db.Close()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			state, err := bootstrap.LoadState(ctx, db)
			if err != nil {
				log.Printf("seed-db: %v, falling back to demo seed", err)
			} else {
				log.Printf("seed-db: loaded %d items, %d tables, %d reservations, %d clients",
					len(state.Inventory), len(state.Tables), len(state.Reservations), len(state.Clients))
				return state
			}
		}
	}
	return bootstrap.DemoState(time.Now().UTC())
}
