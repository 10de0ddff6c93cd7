package service

import (
	"ecosnap/internal/app"
	"ecosnap/internal/pkg/auth"
	"ecosnap/internal/pkg/logger"
	"ecosnap/internal/pubsub"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration, including the
// application's business logic, HTTP handlers, the server's run address,
// the cart event bus feeding the websocket hub, and a logger.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	bus        *pubsub.Bus
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
// It sets up the handlers using the provided application and logger,
// and configures the server's run address.
func NewService(app *app.App, bus *pubsub.Bus, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, bus, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, bus: bus, log: l}
}

// NewRouter sets up and returns a new chi.Router instance with the
// necessary middleware and routes. Logging middleware applies globally; the
// profile surface sits behind JWT authentication, mirroring the app's
// auth-gated profile route. Everything else is open, like the SPA pages.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())

	router.Post("/api/auth", service.handlers.authHandler)

	router.Get("/api/products", service.handlers.productsHandler)
	router.Get("/api/products/{id}", service.handlers.productHandler)

	router.Get("/api/cart", service.handlers.cartHandler)
	router.Post("/api/cart", service.handlers.addToCartHandler)
	router.Patch("/api/cart/{id}", service.handlers.updateQuantityHandler)
	router.Delete("/api/cart/{id}", service.handlers.removeLineHandler)
	router.Post("/api/cart/quote", service.handlers.quoteHandler)

	router.Get("/api/wishlist", service.handlers.wishlistHandler)
	router.Post("/api/wishlist/{id}", service.handlers.toggleWishlistHandler)

	router.Post("/api/scan", service.handlers.scanHandler)
	router.Get("/api/wallet", service.handlers.walletHandler)

	router.Get("/api/bins", service.handlers.binsHandler)
	router.Get("/api/bins/{id}/qr.png", service.handlers.binQRHandler)

	router.Get("/api/events", service.handlers.eventsHandler)

	router.Route("/", func(r chi.Router) {
		r.Use(auth.CheckJWTMiddleware())
		r.Get("/api/profile", service.handlers.profileHandler)
		r.Post("/api/profile/avatar", service.handlers.avatarHandler)
		r.Post("/api/logout", service.handlers.logoutHandler)
	})
	return router
}
