package main

import (
	"flag"
	"freight-dispatch-service/internal/adapters/cache"
	"freight-dispatch-service/internal/adapters/repositories"
	"freight-dispatch-service/internal/api"
	"freight-dispatch-service/internal/config"
	"freight-dispatch-service/internal/platform/db"
	"freight-dispatch-service/internal/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQL store, Redis cache) behind ports and starts the HTTP server.
func main() {
	flag.Parse()
	defer glog.Flush()

	if err := godotenv.Load(); err != nil {
		glog.Info("No .env file found (using environment variables)")
	}
	cfg := config.Load()

	conn, err := db.Open(cfg.DB.Driver, cfg.DB.URL)
	if err != nil {
		glog.Fatal(err)
	}
	defer conn.Close()

	dialect := repositories.DialectFor(cfg.DB.Driver)
	if err := repositories.InitSchema(conn); err != nil {
		glog.Fatal(err)
	}

	sim := &services.Simulator{
		Repo:  repositories.NewSQLNetworkRepository(conn, dialect),
		Store: repositories.NewSQLRunStore(conn, dialect),
	}

	// The run cache is optional; without REDIS_ADDR every request recomputes.
	if cfg.Redis.Addr != "" {
		client := cache.NewRedisClient(cfg.Redis.Addr)
		defer client.Close()
		sim.Cache = cache.NewRedisRunCache(client, cfg.Redis.TTL)
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(sim)

	glog.Infof("Server listening addr=%s driver=%s", cfg.HTTP.Addr, cfg.DB.Driver)
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	glog.Fatal(srv.ListenAndServe())
}
