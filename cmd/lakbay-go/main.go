package main

import (
	"log"

	"github.com/lakbayph/lakbay-go/internal/application/startup"
)

func main() {
	if err := startup.Initialize(); err != nil {
		log.Fatalf("Failed to start Lakbay: %v", err)
	}
}
