package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"mockview/internal/batch"
	"mockview/internal/ent"
	companyrepo "mockview/internal/repository/company"
	reviewrepo "mockview/internal/repository/review"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: loadreviews <csv-directory>")
	}
	dir := flag.Arg(0)

	_ = godotenv.Load()
	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))
	defer client.Close()

	loader := batch.NewLoader(
		companyrepo.NewPostgresStore(client),
		reviewrepo.NewPostgresStore(db),
	)
	if err := loader.LoadDirectory(context.Background(), dir); err != nil {
		log.Fatalf("Load failed: %v", err)
	}
	log.Println("All CSV files processed")
}
