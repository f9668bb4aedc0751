package main

import (
	"flag"
	"fmt"
	"log"

	"sesotho-storefront/internal/utils"
)

func main() {
	password := flag.String("password", "", "Password to hash for ADMIN_PASSWORD_HASH")
	flag.Parse()

	if *password == "" {
		log.Fatal("Usage: go run cmd/hash-admin-password/main.go -password <password>")
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println(hash)
}
