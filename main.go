package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"

	"productorders/internal/config"
	"productorders/internal/database"
	"productorders/internal/events"
	"productorders/internal/handlers"
	"productorders/internal/repositories"
	"productorders/internal/services"
	"productorders/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(configPaths()...)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// --- RabbitMQ (optional) ---
	var publisher events.Publisher
	var mqClient *rabbitmq.Client
	if cfg.EventsEnabled() {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.EventsQueue})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = events.NewBrokerPublisher(mqClient)
	} else {
		log.Println("RABBITMQ_URL not set, catalog events are disabled")
	}

	// --- Services ---
	store := repositories.NewGORMStore(db)
	supplierService := services.NewSupplierService(store, publisher)
	productService := services.NewProductService(store, publisher)

	app := newApp(cfg, supplierService, productService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting server on port %s", cfg.AppPort)
		return app.Listen(cfg.AppPort)
	})
	if mqClient != nil {
		g.Go(func() error {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			return mqClient.Consume(handleCatalogEvent)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		return app.ShutdownWithTimeout(cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server stopped with error: %v", err)
		return
	}
	log.Println("Server gracefully stopped")
}

// newApp wires middleware, the health check and the catalog routes.
func newApp(cfg *config.Config, supplierService *services.SupplierService, productService *services.ProductService) *fiber.App {
	app := fiber.New()

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New()) // Request logger
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		eventsStatus := "disabled"
		if cfg.EventsEnabled() {
			eventsStatus = "enabled"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": eventsStatus,
		})
	})

	// --- API Routes ---
	handlers.NewSupplierHandler(supplierService).RegisterRoutes(app)
	handlers.NewProductHandler(productService).RegisterRoutes(app)

	return app
}

// handleCatalogEvent logs a consumed catalog event. Malformed messages are
// rejected so the consumer drops them.
func handleCatalogEvent(msg amqp.Delivery) error {
	event, err := events.Decode(msg.Body)
	if err != nil {
		return err
	}
	log.Printf("Received %s event for %d (id %s)", event.Type, event.EntityID, event.ID)
	if event.Type == events.SupplierDeleted {
		log.Printf("Warning: supplier %d deleted, products referencing it are now dangling", event.EntityID)
	}
	return nil
}

func configPaths() []string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return []string{p}
	}
	return nil
}
