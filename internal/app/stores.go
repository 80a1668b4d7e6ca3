package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"mockview/internal/config"
	"mockview/internal/ent"
	"mockview/internal/interview"
	companyrepo "mockview/internal/repository/company"
	memberrepo "mockview/internal/repository/member"
	reviewrepo "mockview/internal/repository/review"
	sessionrepo "mockview/internal/repository/session"
)

type stores struct {
	members   memberrepo.Store
	companies companyrepo.Store
	reviews   reviewrepo.Store
	sessions  interview.Store

	closers []func() error
}

func (s *stores) Close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			log.Printf("store close failed: %v", err)
		}
	}
}

func initStores(cfg *config.Config) (*stores, error) {
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		return initPostgresStores(dsn)
	}
	return initInMemoryStores()
}

func initPostgresStores(dsn string) (*stores, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	cached, err := reviewrepo.NewCachedStore(reviewrepo.NewPostgresStore(db))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize review cache: %w", err)
	}

	return &stores{
		members:   memberrepo.NewPostgresStore(client),
		companies: companyrepo.NewPostgresStore(client),
		reviews:   cached,
		sessions:  sessionrepo.NewPostgresStore(client),
		closers:   []func() error{client.Close},
	}, nil
}

func initInMemoryStores() (*stores, error) {
	log.Printf("stores: using in-memory fallback (DATABASE_URL not set)")
	cached, err := reviewrepo.NewCachedStore(reviewrepo.NewMemoryStore())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize review cache: %w", err)
	}
	s := &stores{
		members:   memberrepo.NewMemoryStore(),
		companies: companyrepo.NewMemoryStore(),
		reviews:   cached,
		sessions:  sessionrepo.NewMemoryStore(),
	}
	if err := seedDemoData(s); err != nil {
		return nil, err
	}
	return s, nil
}

// seedDemoData lets the in-memory setup serve requests out of the box: one
// member and some review context for a sample company.
func seedDemoData(s *stores) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	demo := interview.Member{ID: "demo-member", Email: "demo@example.com", Name: "Demo Member"}
	if err := s.members.CreateMember(ctx, demo); err != nil {
		return fmt.Errorf("seed demo member: %w", err)
	}
	company, err := s.companies.EnsureCompany(ctx, "Acme")
	if err != nil {
		return fmt.Errorf("seed demo company: %w", err)
	}
	reviews := []interview.Review{
		{Difficulty: "medium", Questions: "Tell me about a recent project;What is a goroutine", Summary: "Mostly project deep-dives with a few language basics."},
		{Difficulty: "hard", Questions: "Design a rate limiter;How would you debug a memory leak", Summary: "System design heavy, expect follow-ups on tradeoffs."},
	}
	for _, r := range reviews {
		if err := s.reviews.AddReview(ctx, company, interview.FieldDevelopment, r); err != nil {
			return fmt.Errorf("seed demo reviews: %w", err)
		}
	}
	log.Printf("stores: seeded demo member %q and company %q", demo.ID, company.Name)
	return nil
}
