package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/temitayo1239/student-information-portal-main/internal/config"
	"github.com/temitayo1239/student-information-portal-main/internal/database"
	"github.com/temitayo1239/student-information-portal-main/internal/logger"
	"github.com/temitayo1239/student-information-portal-main/internal/repository"
)

func main() {
	verify := flag.Bool("verify", true, "Read the catalog back after seeding")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	repo := repository.NewCatalogRepository(pool)
	fixtures := repository.NewFixtureCatalog()

	fmt.Println("=== Seeding Catalog ===")
	if err := repo.Seed(ctx, fixtures); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed catalog")
	}
	fmt.Printf("Seeded %d courses, %d notifications, %d semester results, %d timetable slots.\n",
		len(fixtures.Courses()), len(fixtures.Notifications()), len(fixtures.Results()), len(fixtures.Timetable()))

	if !*verify {
		return
	}
	loaded, err := repo.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read catalog back")
	}
	if len(loaded.Courses()) != len(fixtures.Courses()) {
		log.Fatal().
			Int("want", len(fixtures.Courses())).
			Int("got", len(loaded.Courses())).
			Msg("Catalog verification failed")
	}
	fmt.Printf("Verified catalog for %s (%s).\n", loaded.Student().FullName, loaded.Student().MatricNumber)
}
