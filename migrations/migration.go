package main

import (
	"gift-registry/infra"
	"log"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := infra.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database schema is up to date")
}
