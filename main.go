package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/camden-git/filecheckbackend/catalog"
	"github.com/camden-git/filecheckbackend/config"
	"github.com/camden-git/filecheckbackend/database"
	"github.com/camden-git/filecheckbackend/handlers"
	"github.com/camden-git/filecheckbackend/ratelimit"
	"github.com/camden-git/filecheckbackend/realtime"
	"github.com/camden-git/filecheckbackend/sharecard"
	"github.com/camden-git/filecheckbackend/workers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	storagePaths := []string{cfg.CardCachePath, filepath.Dir(cfg.DatabasePath)}
	for _, p := range storagePaths {
		log.Printf("Ensuring storage directory exists: %s", p)
		if err := os.MkdirAll(p, 0755); err != nil {
			log.Fatalf("FATAL: Failed to create storage directory %s: %v", p, err)
		}
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}

	store := catalog.NewStore(cfg.CatalogPath, cfg.CatalogCacheTTL)
	aliases, err := catalog.LoadAliasTable(cfg.AliasPath)
	if err != nil {
		log.Fatalf("FATAL: Failed to load alias table: %v", err)
	}
	resolver := catalog.NewResolver(store, aliases)

	// warm the catalog cache; a broken index file should fail the deploy,
	// not the first visitor
	if idx, err := store.Load(); err != nil {
		log.Fatalf("FATAL: Failed to load people catalog from %s: %v", cfg.CatalogPath, err)
	} else {
		log.Printf("Loaded catalog version %s (%d people, %d documents)",
			idx.Metadata.Version, len(idx.People), idx.Metadata.TotalDocuments)
	}

	if cfg.WatchCatalog {
		stopWatch, err := catalog.Watch(store)
		if err != nil {
			log.Printf("Warning: catalog watch disabled: %v", err)
		} else {
			defer stopWatch()
		}
	}

	cardCache, err := sharecard.NewCache(cfg.CardCachePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize share card cache: %v", err)
	}
	cardRenderer := sharecard.NewRenderer(cardCache)

	hub := realtime.NewHub()
	go hub.Run()

	tracker := workers.NewSearchTracker(db, hub, cfg.TrackerQueueSize,
		time.Duration(cfg.TrackerFlushSeconds)*time.Second)
	defer tracker.Stop()

	limiter := ratelimit.NewLimiter()
	defer limiter.Stop()

	log.Printf("Serving catalog from: %s", cfg.CatalogPath)
	log.Printf("Using database: %s", cfg.DatabasePath)
	log.Printf("Caching share cards in: %s", cfg.CardCachePath)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsHandler.Handler)

	personHandler := &handlers.PersonHandler{Resolver: resolver, Tracker: tracker, Cfg: cfg}
	searchHandler := &handlers.SearchHandler{Resolver: resolver}
	trendingHandler := &handlers.TrendingHandler{DB: db}
	reportHandler := &handlers.ReportHandler{DB: db}
	ogHandler := &handlers.OGHandler{Resolver: resolver, Renderer: cardRenderer, Cfg: cfg}
	sitemapHandler := &handlers.SitemapHandler{Store: store, Cfg: cfg}
	adminHandler := &handlers.AdminHandler{Store: store, Cfg: cfg}

	r.Route("/api", func(r chi.Router) {
		r.Route("/people", func(r chi.Router) {
			r.Get("/", personHandler.GetCatalogInfo)
			r.Get("/{slug}", handlers.RateLimit(limiter, ratelimit.LimitTrack, "person", personHandler.GetPerson))
		})

		r.Get("/search", handlers.RateLimit(limiter, ratelimit.LimitSearch, "search", searchHandler.Search))
		r.Get("/matches", handlers.RateLimit(limiter, ratelimit.LimitSearch, "matches", searchHandler.FindAll))
		r.Get("/trending", handlers.RateLimit(limiter, ratelimit.LimitTrending, "trending", trendingHandler.GetTrending))
		r.Post("/report", handlers.RateLimit(limiter, ratelimit.LimitReport, "report", reportHandler.CreateReport))
		r.Get("/og/{slug}", ogHandler.GetCard)

		r.Post("/admin/refresh", adminHandler.RefreshCatalog)
	})

	r.Get("/sitemap.xml", sitemapHandler.GetSitemap)
	r.Get("/ws/searches", hub.ServeWS)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handlers.SubdomainRedirect(cfg.BaseDomain, r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
