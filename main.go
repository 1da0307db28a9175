package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"Pulse/internal/calc/batch"
	"Pulse/internal/calc/catalog"
	"Pulse/internal/calc/importer"
	"Pulse/internal/calc/report"
	"Pulse/internal/config"
	"Pulse/internal/lastresult"
	"Pulse/internal/middleware"
)

var wg sync.WaitGroup

func HandleList(router *mux.Router, cfg config.Config) {
	store := lastresult.New(cfg.LastResultKey, cfg.LastResultTTL, cfg.TLS())
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/catalog", catalog.List).Methods("GET")

	for _, e := range catalog.All() {
		api.Handle("/tools/"+e.Name+"/calc", store.Remember(e.Name, e.Handler)).Methods("POST")
	}

	lastH := &lastresult.Handler{Store: store}
	reportH := &report.Handler{}
	batchH := &batch.Handler{Workers: cfg.BatchWorkers}
	importH := &importer.Handler{Workers: cfg.BatchWorkers}

	api.HandleFunc("/tools/{calc}/last", lastH.Last).Methods("GET")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/tools/import/{calc}", importH.Import).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	router := mux.NewRouter()
	HandleList(router, cfg)
	handler := middleware.CORS(router)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	log.Println("Starting server on", cfg.Addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error stopping server: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
