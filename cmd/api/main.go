package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/database"
	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/http/handlers"
	appmiddleware "github.com/joshdavidsjd/MobileRepCRM/internal/infra/http/middleware"
	"github.com/joshdavidsjd/MobileRepCRM/internal/usecase"
)

func main() {
	godotenv.Load()

	dsn := os.Getenv("CRM_DSN")
	if dsn == "" {
		dsn = database.DefaultDSN
	}

	db, err := database.Open(dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Seed(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	accountRepo := database.NewAccountRepository(db)
	contactRepo := database.NewContactRepository(db)
	oppRepo := database.NewOpportunityRepository(db)
	activityRepo := database.NewActivityRepository(db)
	profileRepo := database.NewProfileRepository(db)
	searchRepo := database.NewSearchRepository(db)

	// 2. UseCases
	convertUC := usecase.NewConvertLeadUseCase(leadRepo, oppRepo)
	searchUC := usecase.NewGlobalSearchUseCase(searchRepo)
	statsUC := usecase.NewPipelineStatsUseCase(leadRepo, oppRepo, activityRepo)
	assistantUC := usecase.NewAssistantUseCase()

	// 3. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, activityRepo, convertUC)
	accountHandler := handlers.NewAccountHandler(accountRepo, contactRepo, oppRepo, activityRepo)
	contactHandler := handlers.NewContactHandler(contactRepo, accountRepo, activityRepo)
	oppHandler := handlers.NewOpportunityHandler(oppRepo, activityRepo)
	activityHandler := handlers.NewActivityHandler(activityRepo)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	searchHandler := handlers.NewSearchHandler(searchUC)
	dashboardHandler := handlers.NewDashboardHandler(statsUC)
	assistantHandler := handlers.NewAssistantHandler(assistantUC)
	healthHandler := handlers.NewHealthHandler(db)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", leadHandler.List)
		r.Post("/", leadHandler.Create)
		r.Get("/{id}", leadHandler.Get)
		r.Put("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Delete)
		r.Get("/{id}/activities", leadHandler.ListActivities)
		r.Post("/{id}/convert", leadHandler.Convert)
	})

	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", accountHandler.List)
		r.Post("/", accountHandler.Create)
		r.Get("/{id}", accountHandler.Get)
		r.Put("/{id}", accountHandler.Update)
		r.Delete("/{id}", accountHandler.Delete)
		r.Get("/{id}/contacts", accountHandler.ListContacts)
		r.Get("/{id}/opportunities", accountHandler.ListOpportunities)
		r.Get("/{id}/activities", accountHandler.ListActivities)
	})

	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", contactHandler.List)
		r.Post("/", contactHandler.Create)
		r.Get("/{id}", contactHandler.Get)
		r.Put("/{id}", contactHandler.Update)
		r.Delete("/{id}", contactHandler.Delete)
		r.Get("/{id}/activities", contactHandler.ListActivities)
	})

	r.Route("/opportunities", func(r chi.Router) {
		r.Get("/", oppHandler.List)
		r.Post("/", oppHandler.Create)
		r.Get("/{id}", oppHandler.Get)
		r.Put("/{id}", oppHandler.Update)
		r.Delete("/{id}", oppHandler.Delete)
		r.Get("/{id}/activities", oppHandler.ListActivities)
	})

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", activityHandler.List)
		r.Post("/", activityHandler.Create)
		r.Get("/{id}", activityHandler.Get)
		r.Put("/{id}", activityHandler.Update)
		r.Delete("/{id}", activityHandler.Delete)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", profileHandler.Get)
		r.Put("/", profileHandler.Update)
		r.Put("/widgets", profileHandler.UpdateWidgets)
	})

	r.Get("/search", searchHandler.Search)
	r.Get("/dashboard/stats", dashboardHandler.Stats)
	r.Post("/assistant/chat", assistantHandler.Chat)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("CRM API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func corsOrigins() []string {
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		return strings.Split(v, ",")
	}
	return []string{"*"}
}
