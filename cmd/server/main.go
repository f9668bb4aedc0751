package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	amqp "github.com/rabbitmq/amqp091-go"

	"sesotho-storefront/internal/config"
	"sesotho-storefront/internal/database"
	"sesotho-storefront/internal/handlers"
	"sesotho-storefront/internal/middleware"
	"sesotho-storefront/internal/repositories"
	"sesotho-storefront/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Repositories
	productRepo := repositories.NewProductRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	artistRepo := repositories.NewArtistRepository(db.DB)
	ticketTypeRepo := repositories.NewTicketTypeRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)

	// Optional order event publisher
	var publisher services.OrderPublisher
	if cfg.Events.AMQPURL != "" {
		conn, err := amqp.Dial(cfg.Events.AMQPURL)
		if err != nil {
			log.Printf("AMQP connection failed, order events disabled: %v", err)
		} else {
			defer conn.Close()
			amqpPublisher, err := services.NewAMQPOrderPublisher(conn)
			if err != nil {
				log.Printf("AMQP publisher setup failed, order events disabled: %v", err)
			} else {
				defer amqpPublisher.Close()
				publisher = amqpPublisher
				log.Println("Order event publisher initialized")
			}
		}
	}

	// Media storage (R2 or local disk)
	var storage services.StorageService
	if cfg.Storage.AccessKeyID != "" && cfg.Storage.SecretAccessKey != "" {
		r2, err := services.NewR2Storage(cfg.Storage)
		if err != nil {
			log.Printf("R2 storage initialization failed, using local storage: %v", err)
			storage = services.NewLocalStorage("./uploads", "/uploads")
		} else {
			storage = r2
			log.Println("R2 storage initialized")
		}
	} else {
		storage = services.NewLocalStorage("./uploads", "/uploads")
		log.Println("Using local media storage (R2 credentials not configured)")
	}

	// Services
	catalogService := services.NewCatalogService(productRepo, eventRepo, artistRepo, ticketTypeRepo)
	checkoutService := services.NewCheckoutService(orderRepo, publisher)
	mediaService := services.NewMediaService(storage)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(catalogService, sessionStore)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, sessionStore)
	adminHandler := handlers.NewAdminHandler(catalogService, mediaService, sessionStore, cfg.Admin.PasswordHash)
	healthHandler := handlers.NewHealthHandler(db)

	loginLimiter := middleware.NewRateLimiter(5, 15*time.Minute)

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(middleware.SecurityHeadersMiddleware)

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", healthHandler.Health)

	// Local media files
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))))

	// Public catalog
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{id}", catalogHandler.GetProduct)
		r.Get("/events", catalogHandler.ListEvents)
		r.Get("/events/{id}", catalogHandler.GetEvent)
		r.Get("/events/{id}/ticket-types", catalogHandler.ListTicketTypes)
		r.Get("/artists", catalogHandler.ListArtists)
		r.Get("/artists/{id}", catalogHandler.GetArtist)
	})

	// Cart
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)
		r.Post("/items", cartHandler.AddItem)
		r.Post("/items/{id}", cartHandler.UpdateQuantity)
		r.Delete("/items/{id}", cartHandler.RemoveItem)
		r.Post("/clear", cartHandler.ClearCart)
	})

	// Checkout
	r.Post("/checkout", checkoutHandler.Checkout)
	r.Get("/orders/{orderNumber}", checkoutHandler.GetOrder)

	// Admin
	r.Route("/admin", func(r chi.Router) {
		r.With(middleware.RateLimitLogin(loginLimiter)).Post("/login", adminHandler.Login)
		r.Post("/logout", adminHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuthMiddleware(sessionStore))

			r.Post("/products", adminHandler.CreateProduct)
			r.Put("/products/{id}", adminHandler.UpdateProduct)
			r.Delete("/products/{id}", adminHandler.DeleteProduct)

			r.Post("/events", adminHandler.CreateEvent)
			r.Put("/events/{id}", adminHandler.UpdateEvent)
			r.Delete("/events/{id}", adminHandler.DeleteEvent)
			r.Post("/events/{id}/ticket-types", adminHandler.CreateTicketType)
			r.Put("/ticket-types/{id}", adminHandler.UpdateTicketType)

			r.Post("/artists", adminHandler.CreateArtist)
			r.Put("/artists/{id}", adminHandler.UpdateArtist)

			r.Post("/media", adminHandler.UploadMedia)
		})
	})

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
