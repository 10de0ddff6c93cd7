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

	"ecosnap/internal/app"
	"ecosnap/internal/config"
	"ecosnap/internal/pkg/logger"
	"ecosnap/internal/pubsub"
	"ecosnap/internal/service"
	"ecosnap/internal/storage"
	"ecosnap/internal/wallet"

	"github.com/rs/cors"
)

func main() {
	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger(config.LogLevel); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	kv, err := newKV(l)
	if err != nil {
		log.Fatal(err)
	}
	defer kv.Close()

	bus := pubsub.NewBus()
	cart := storage.NewCartStore(kv, bus, l)
	wishlist := storage.NewWishlistStore(kv, l)
	ledger := wallet.NewLedger(wallet.TickScheduler{})
	defer ledger.Stop()

	app := app.NewApp(kv, cart, wishlist, ledger, l)
	service := service.NewService(app, bus, config.ServerRunAddress, l)

	handler := cors.AllowAll().Handler(service.NewRouter())

	const readHeaderTimeout = 5 * time.Second
	server := &http.Server{Addr: config.ServerRunAddress, Handler: handler, ReadHeaderTimeout: readHeaderTimeout}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		const shutdownTimeout = 30 * time.Second
		shutdownCtx, cancel := context.WithTimeout(serverCtx, shutdownTimeout)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		defer kv.Close()
		log.Fatal(err)
	}

	<-serverCtx.Done()
}

// newKV selects the persistence backend from configuration.
func newKV(l *logger.Logger) (storage.KV, error) {
	switch config.StorageBackend {
	case "file":
		return storage.NewFile(config.StoragePath, l), nil
	case "postgres":
		return storage.NewPostgreSQL(config.DatabaseURI, l)
	case "redis":
		return storage.NewRedis(config.RedisAddress, l)
	default:
		return storage.NewMemory(), nil
	}
}
