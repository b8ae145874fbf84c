package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"

	"SMART_CART/go-backend/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	var args []string
	if flag.NArg() > 1 {
		args = flag.Args()[1:]
	}

	if err := goose.Run(command, db, *dir, args...); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}
	log.Printf("Migrations %s complete", command)
}
