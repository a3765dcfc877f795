// Command server starts the TriVault HTTP API.
package main

import (
	"context"
	"log"

	"github.com/trivault/trivault-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
