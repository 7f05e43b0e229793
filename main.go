package main

import (
	batch "Tonnage/internal/calc/batch"
	compaction "Tonnage/internal/calc/compaction"
	importer "Tonnage/internal/calc/importer"
	report "Tonnage/internal/calc/report"
	export "Tonnage/internal/export"
	middleware "Tonnage/internal/middleware"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func envFloat(key string, fallback float64) float64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
		log.Printf("Ignoring bad %s=%q", key, s)
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
		log.Printf("Ignoring bad %s=%q", key, s)
	}
	return fallback
}

func HandleList(mux *mux.Router) {
	curve := compaction.CurveConfig{
		DMin:    envFloat("CURVE_D_MIN", 0.50),
		DMax:    envFloat("CURVE_D_MAX", 0.99),
		Samples: envInt("CURVE_SAMPLES", 100),
	}

	limiter := middleware.NewIPRateLimiter(
		rate.Limit(envFloat("RATE_LIMIT_RPS", 5)),
		envInt("RATE_LIMIT_BURST", 10),
	)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	compactionH := &compaction.Handler{Curve: curve}
	exportH := &export.Handler{Curve: curve}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}

	api.HandleFunc("/tools/compaction/materials", compactionH.Materials).Methods("GET")
	api.HandleFunc("/tools/compaction/calc", compactionH.Calc).Methods("POST")
	api.HandleFunc("/tools/compaction/curve", compactionH.CurvePoints).Methods("POST")

	api.HandleFunc("/tools/compaction/export/csv", exportH.CSV).Methods("POST")
	api.HandleFunc("/tools/compaction/export/xlsx", exportH.XLSX).Methods("POST")
	api.HandleFunc("/tools/compaction/export/png", exportH.PNG).Methods("POST")
	api.HandleFunc("/tools/compaction/export/chart", exportH.Chart).Methods("POST")

	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/batch/calc", batchH.Calc).Methods("POST")
	api.HandleFunc("/tools/import/xlsx", importerH.Compaction).Methods("POST")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment defaults")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	mux := mux.NewRouter()
	HandleList(mux)
	handler := middleware.CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	log.Println("Starting server on", addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
