package main

import (
	"log"
	"net/http"

	"bursary-go/config"
	"bursary-go/database"
	"bursary-go/handlers"
	"bursary-go/middleware"
	"bursary-go/models"
	"bursary-go/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize config
	cfg := config.Load()

	// Validate configuration
	config.ValidateConfig(cfg)

	// Initialize encryption
	if err := utils.InitializeEncryption(cfg.EncryptionKey); err != nil {
		log.Fatal("Failed to initialize encryption:", err)
	}

	// Initialize JWT
	if err := utils.InitializeJWT(cfg.JWTSecret); err != nil {
		log.Fatal("Failed to initialize JWT:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Initialize handlers with config
	h := handlers.NewHandlers(db, cfg)

	// Initialize router
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.CORS)
	r.Use(middleware.RateLimit)

	// Public routes
	r.HandleFunc("/api/register", h.Register).Methods("POST")
	r.HandleFunc("/api/login", h.Login).Methods("POST")
	r.HandleFunc("/api/health", h.HealthCheck).Methods("GET")

	// Protected routes
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.JWTAuth)

	// Applicant routes
	student := protected.NewRoute().Subrouter()
	student.Use(middleware.RequireRole(models.RoleStudent))
	student.HandleFunc("/application", h.SubmitApplication).Methods("POST")
	student.HandleFunc("/application", h.GetApplication).Methods("GET")
	student.HandleFunc("/application/status", h.GetApplicationStatus).Methods("GET")

	// Admin routes
	adminRoutes := protected.PathPrefix("/admin").Subrouter()
	review := adminRoutes.NewRoute().Subrouter()
	review.Use(middleware.RequireRole(models.RoleAdmin, models.RoleDean))
	review.HandleFunc("/applications", h.GetApplications).Methods("GET")
	review.HandleFunc("/applications/{id:[0-9]+}", h.GetApplicationByID).Methods("GET")

	adminOnly := adminRoutes.NewRoute().Subrouter()
	adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
	adminOnly.HandleFunc("/applications/{id:[0-9]+}", h.ReviewApplication).Methods("PUT")
	adminOnly.HandleFunc("/applications/{id:[0-9]+}", h.DeleteApplication).Methods("DELETE")
	adminOnly.HandleFunc("/applications/{id:[0-9]+}/installments", h.AssignInstallments).Methods("POST")
	adminOnly.HandleFunc("/applications/{id:[0-9]+}/installments", h.GetInstallments).Methods("GET")

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", cfg.Environment)
	log.Printf("Database: %s", cfg.DatabaseURL)
	if cfg.Environment == "development" {
		log.Printf("Admin Code: %s", cfg.AdminCode)
	}
	log.Fatal(http.ListenAndServe(":"+port, r))
}
