// Command textcomplexityd serves the document store and analysis
// pipeline over HTTP.
//
// Configuration comes from environment variables (PORT, HOST, DB_PATH,
// TOP_FREQUENT_WORDS), with a .env file honored for local development.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vialandd/text-complexity-analyzer/internal/config"
	"github.com/vialandd/text-complexity-analyzer/internal/server"
	"github.com/vialandd/text-complexity-analyzer/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.New(cfg, st).Routes(),
	}

	go func() {
		log.Printf("listening on %s (db: %s)", cfg.Addr(), cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
