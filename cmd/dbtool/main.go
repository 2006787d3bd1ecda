package main

import (
	"database/sql"
	"flag"
	"freight-dispatch-service/internal/adapters/repositories"
	"freight-dispatch-service/internal/config"
	"freight-dispatch-service/internal/platform/db"

	"github.com/golang/glog"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

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

	if err := initAndSeed(conn, repositories.DialectFor(cfg.DB.Driver), cfg.SeedPath); err != nil {
		glog.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	glog.Info("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	glog.Info("Schema ready.")

	glog.Infof("Seeding network from %s...", seedPath)
	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		return err
	}
	glog.Info("Seeding complete.")

	return nil
}
