package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "credit-agent/http"
	"credit-agent/repository"
	"credit-agent/service"
)

func main() {
	calcRepo := repository.NewCalculationRepositoryMemory()

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
	} else {
		cache = repository.NewMockCache()
	}

	creditService := service.NewCreditService(calcRepo, cache)
	creditHandler := httpLayer.NewCreditHandler(creditService)

	dateInterestService := service.NewDateInterestService()
	dateInterestHandler := httpLayer.NewDateInterestHandler(dateInterestService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/credit/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(creditHandler.Calculate),
		),
	)

	mux.Handle(
		"/credit/date-interest",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(dateInterestHandler.Calculate),
		),
	)

	server := &http.Server{
		Addr:         ":8080",
		Handler:      httpLayer.CORSMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Println("🚀 API corriendo en http://localhost:8080")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
