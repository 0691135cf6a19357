package main

import (
	"log"

	"catalog-service/internal"
)

func main() {
	app, err := internal.NewApp()
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("FATAL: Application finished with an error: %v", err)
	}
}
