/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the scooter-rental engine server: wires the fleet
  inventory, rental ledger, pricing calculator, and rental company, then
  serves the REST API with graceful shutdown.

COMMAND-LINE FLAGS:
  -port      HTTP server port (default: 8080)
  -db        SQLite ledger path; empty keeps the ledger in memory
  -company   Rental company name (default: BlueScooters)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the ledger store
  4. Exit

EXAMPLES:
  # In-memory ledger (default)
  ./server

  # Durable ledger
  ./server -db="./data/rentals.db"

SEE ALSO:
  - api/server.go: router configuration
  - api/handlers.go: HTTP handlers
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bluescooters/rental-engine/api"
	"github.com/bluescooters/rental-engine/fleet"
	"github.com/bluescooters/rental-engine/pricing"
	"github.com/bluescooters/rental-engine/rental"
	memstore "github.com/bluescooters/rental-engine/rental/store"
	"github.com/bluescooters/rental-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "", "SQLite ledger path (empty = in-memory ledger)")
	companyName := flag.String("company", "BlueScooters", "Rental company name")
	flag.Parse()

	// Ledger store: in-memory unless a database path is given
	var ledgerStore rental.Store
	if *dbPath != "" {
		st, err := sqlite.New(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize ledger database: %v", err)
		}
		defer st.Close()
		ledgerStore = st
	} else {
		ledgerStore = memstore.NewMemory()
	}

	// Core wiring
	inventory := fleet.NewInventory()
	ledger := rental.NewLedger(ledgerStore)
	company, err := rental.NewCompany(*companyName, inventory, ledger, pricing.NewCalculator(), rental.SystemClock{})
	if err != nil {
		log.Fatalf("Failed to create company: %v", err)
	}

	handler := api.NewHandler(company, inventory, ledger)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Rental engine for %q listening on http://localhost:%d", company.Name(), *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
