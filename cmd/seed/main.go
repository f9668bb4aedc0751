package main

import (
	"fmt"
	"log"
	"time"

	"sesotho-storefront/internal/config"
	"sesotho-storefront/internal/database"
	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/repositories"
)

func main() {
	fmt.Println("Seeding storefront catalog...")

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

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	productRepo := repositories.NewProductRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	artistRepo := repositories.NewArtistRepository(db.DB)
	ticketTypeRepo := repositories.NewTicketTypeRepository(db.DB)

	seedProducts(productRepo)
	seedArtists(artistRepo)
	seedEvents(eventRepo, ticketTypeRepo)

	fmt.Println("Seeding complete!")
}

func seedProducts(repo *repositories.ProductRepository) {
	products := []*models.ProductCreateRequest{
		{
			Name:        "Mokorotlo Heritage Tee",
			Description: "Heavyweight cotton tee with an embroidered mokorotlo hat motif.",
			Price:       45000, // R450.00
			Images:      []string{"/uploads/catalog/mokorotlo-tee.jpg"},
			Category:    "apparel",
			Sizes:       []string{"S", "M", "L", "XL"},
			Stock:       120,
			Featured:    true,
		},
		{
			Name:        "Seanamarena Blanket Scarf",
			Description: "Wool-blend scarf inspired by traditional Basotho blanket patterns.",
			Price:       85000,
			Images:      []string{"/uploads/catalog/blanket-scarf.jpg"},
			Category:    "accessories",
			Sizes:       []string{},
			Stock:       40,
			Featured:    true,
		},
		{
			Name:        "Maseru Nights Cap",
			Description: "Six-panel cap with tonal stitch work.",
			Price:       35000,
			Images:      []string{"/uploads/catalog/maseru-cap.jpg"},
			Category:    "accessories",
			Sizes:       []string{},
			Stock:       75,
			Featured:    false,
		},
	}

	for _, req := range products {
		product, err := repo.Create(req)
		if err != nil {
			log.Printf("Failed to seed product %q: %v", req.Name, err)
			continue
		}
		fmt.Printf("  product: %s (%s)\n", product.Name, product.ID)
	}
}

func seedArtists(repo *repositories.ArtistRepository) {
	genre := "Famo"
	artists := []*models.ArtistCreateRequest{
		{
			Name: "Morena Leraba",
			Bio:  "Famo innovator blending accordion traditions with electronic production.",
			SocialLinks: models.SocialLinks{
				Instagram: "https://instagram.com/morenaleraba",
			},
			Genre:    &genre,
			Featured: true,
		},
		{
			Name:     "Thabiso Mohapi",
			Bio:      "Visual artist and designer behind the brand's seasonal prints.",
			Featured: false,
		},
	}

	for _, req := range artists {
		artist, err := repo.Create(req)
		if err != nil {
			log.Printf("Failed to seed artist %q: %v", req.Name, err)
			continue
		}
		fmt.Printf("  artist: %s (%s)\n", artist.Name, artist.ID)
	}
}

func seedEvents(eventRepo *repositories.EventRepository, ticketTypeRepo *repositories.TicketTypeRepository) {
	event, err := eventRepo.Create(&models.EventCreateRequest{
		Name:        "Sesotho Sessions Vol. 4",
		Description: "A night of live famo, fashion and food in the heart of Maseru.",
		EventDate:   time.Now().AddDate(0, 2, 0),
		Location:    "Maseru, Lesotho",
		Images:      []string{"/uploads/catalog/sessions-vol4.jpg"},
		Lineup:      []string{"Morena Leraba", "DJ Ntate"},
		Status:      models.EventUpcoming,
		Featured:    true,
	})
	if err != nil {
		log.Printf("Failed to seed event: %v", err)
		return
	}
	fmt.Printf("  event: %s (%s)\n", event.Name, event.ID)

	ticketTypes := []*models.TicketTypeCreateRequest{
		{EventID: event.ID, Name: "General Admission", Price: 25000, QuantityAvailable: 300},
		{EventID: event.ID, Name: "VIP", Price: 60000, QuantityAvailable: 50},
	}

	for _, req := range ticketTypes {
		tt, err := ticketTypeRepo.Create(req)
		if err != nil {
			log.Printf("Failed to seed ticket type %q: %v", req.Name, err)
			continue
		}
		fmt.Printf("  ticket type: %s (%s)\n", tt.Name, tt.ID)
	}
}
