package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"

	"github.com/medsupply-ke/medsupply-backend/internal/database"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/analytics"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/auth"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/catalog"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/inventory"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/needs"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/order"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/payment"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
	"github.com/medsupply-ke/medsupply-backend/internal/notify"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	if len(os.Args) > 1 && os.Args[1] == "initdb" {
		if err := database.Migrate(db); err != nil {
			log.Fatal(err)
		}
		if err := database.Seed(db); err != nil {
			log.Fatal(err)
		}
		fmt.Println("db initialized")
		return
	}

	secret := []byte(os.Getenv("APP_SECRET"))
	if len(secret) == 0 {
		log.Fatal("APP_SECRET is required")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity & Access ───────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	authMiddleware := auth.NewMiddleware(userRepo, secret)
	authService := auth.NewService(userRepo, secret)
	auth.NewHandler(authService, userService, authMiddleware).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService, authMiddleware).RegisterRoutes(router)

	// ── Inventory ───────────────────────────────────────────
	inventoryRepo := inventory.NewPostgresRepository(db)
	inventoryService := inventory.NewService(inventoryRepo)
	inventory.NewHandler(inventoryService, authMiddleware).RegisterRoutes(router)

	// ── Orders ──────────────────────────────────────────────
	notifier := buildNotifier()
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, notifier)
	order.NewHandler(orderService, authMiddleware).RegisterRoutes(router)

	// ── Needs & Recommendation ──────────────────────────────
	needsRepo := needs.NewPostgresRepository(db)
	needsService := needs.NewService(needsRepo)
	needs.NewHandler(needsService, authMiddleware).RegisterRoutes(router)

	// ── Analytics ───────────────────────────────────────────
	analyticsRepo := analytics.NewPostgresRepository(db)
	analyticsService := analytics.NewService(analyticsRepo)
	analytics.NewHandler(analyticsService, authMiddleware).RegisterRoutes(router)

	// ── Payments ────────────────────────────────────────────
	gateway := payment.NewDarajaGateway(
		os.Getenv("DARAJA_CONSUMER_KEY"),
		os.Getenv("DARAJA_CONSUMER_SECRET"),
		os.Getenv("DARAJA_SHORTCODE"),
		os.Getenv("DARAJA_PASSKEY"),
		os.Getenv("DARAJA_BASE_URL"),
		os.Getenv("DARAJA_ENV"),
	)
	paymentService := payment.NewService(orderService, gateway)
	payment.NewHandler(paymentService, authMiddleware).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	handler := cors.AllowAll().Handler(router)
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("MedSupply API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// buildNotifier picks the notification sink: Kafka when brokers are
// configured, otherwise log-only.
func buildNotifier() notify.Notifier {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return notify.NewLogNotifier()
	}
	topic := os.Getenv("KAFKA_NOTIFICATIONS_TOPIC")
	if topic == "" {
		topic = "notifications"
	}
	return notify.NewKafkaNotifier(strings.Split(brokers, ","), topic)
}
