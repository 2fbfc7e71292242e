package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Thermex/internal/calc/batch"
	"Thermex/internal/calc/boiler"
	"Thermex/internal/calc/compressor"
	"Thermex/internal/calc/condenser"
	"Thermex/internal/calc/importer"
	"Thermex/internal/calc/nozzle"
	"Thermex/internal/calc/pump"
	"Thermex/internal/calc/report"
	"Thermex/internal/calc/turbine"
	"Thermex/internal/metrics"
	"Thermex/internal/presets"
	"Thermex/internal/ratelimit"
	"Thermex/internal/steam"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router) {
	props := steam.NewCache(steam.New())

	store, err := presets.Load(os.Getenv("PRESETS_FILE"))
	if err != nil {
		log.WithError(err).Warn("presets file not loaded, using built-in defaults")
	}

	limiter := ratelimit.NewIPRateLimiter(5, 20)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	pumpH := &pump.Handler{Props: props}
	boilerH := &boiler.Handler{Props: props}
	turbineH := &turbine.Handler{Props: props}
	compressorH := &compressor.Handler{}
	condenserH := &condenser.Handler{Props: props}
	nozzleH := &nozzle.Handler{}
	batchH := &batch.Handler{Props: props}
	importerH := &importer.Handler{Props: props}
	reportH := &report.Handler{}
	presetsH := &presets.Handler{Store: store}

	api.HandleFunc("/tools/pump/calc", metrics.Instrument("pump", pumpH.Calc)).Methods("POST")
	api.HandleFunc("/tools/boiler/calc", metrics.Instrument("boiler", boilerH.Calc)).Methods("POST")
	api.HandleFunc("/tools/turbine/calc", metrics.Instrument("turbine", turbineH.Calc)).Methods("POST")
	api.HandleFunc("/tools/compressor/calc", metrics.Instrument("compressor", compressorH.Calc)).Methods("POST")
	api.HandleFunc("/tools/condenser/calc", metrics.Instrument("condenser", condenserH.Calc)).Methods("POST")
	api.HandleFunc("/tools/nozzle/calc", metrics.Instrument("nozzle", nozzleH.Calc)).Methods("POST")

	api.HandleFunc("/tools/turbine/batch", metrics.Instrument("turbine_batch", batchH.Turbine)).Methods("POST")
	api.HandleFunc("/tools/pump/import", metrics.Instrument("pump_import", importerH.Pump)).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.GeneratePDF).Methods("POST")
	api.HandleFunc("/tools/report/xlsx", reportH.GenerateXLSX).Methods("POST")
	api.HandleFunc("/tools/{device}/presets", presetsH.Get).Methods("GET")

	mux.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file, reading process environment")
	}
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mux := mux.NewRouter()
	HandleList(mux)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.WithField("addr", addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server shutdown failed")
	}
	log.Info("server stopped")

	wg.Wait()
}
