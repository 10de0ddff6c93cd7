// Package service contains HTTP handler implementations for the EcoSnap API
// endpoints. It orchestrates request parsing, calls the underlying business
// logic in the app package, maps domain errors to HTTP responses, and
// writes JSON payloads.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"ecosnap/internal/app"
	"ecosnap/internal/catalog"
	"ecosnap/internal/checkout"
	"ecosnap/internal/models"
	"ecosnap/internal/pkg/auth"
	"ecosnap/internal/pkg/logger"
	"ecosnap/internal/pubsub"
	"ecosnap/internal/storage"

	"github.com/go-chi/chi/v5"
)

const requestTimeout = 10 * time.Second

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic, the cart event bus and logger.
type handlers struct {
	app *app.App
	bus *pubsub.Bus
	log *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided dependencies.
func newHandlers(app *app.App, bus *pubsub.Bus, l *logger.Logger) *handlers {
	return &handlers{app: app, bus: bus, log: l}
}

// authHandler handles login requests. It reads the request body, unmarshals
// it into an AuthRequest, invokes the credential check, and returns a JSON
// response with a session token.
func (handlers *handlers) authHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var authRequest models.AuthRequest
	var authResponse models.AuthResponse

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &authRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	authResponse.Token, err = handlers.app.ProcessAuth(ctx, authRequest)
	if err != nil {
		if errors.Is(err, app.ErrMissingUsernameOrPassword) {
			writeErrorResponse(res, "missing username or password", http.StatusBadRequest)
			return
		}
		if errors.Is(err, app.ErrInvalidCredentials) {
			writeErrorResponse(res, "invalid credentials", http.StatusUnauthorized)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, http.StatusOK, authResponse)
}

// productsHandler returns the full static catalog.
func (handlers *handlers) productsHandler(res http.ResponseWriter, req *http.Request) {
	writeJSONResponse(res, http.StatusOK, catalog.Products)
}

// productHandler returns one catalog product; an unknown id is a 404, the
// API equivalent of the detail view's redirect to home.
func (handlers *handlers) productHandler(res http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		writeErrorResponse(res, "invalid product id provided", http.StatusBadRequest)
		return
	}

	product, ok := catalog.ProductByID(id)
	if !ok {
		writeErrorResponse(res, "product not found", http.StatusNotFound)
		return
	}
	writeJSONResponse(res, http.StatusOK, product)
}

// cartHandler returns the persisted cart with its badge count.
func (handlers *handlers) cartHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	cart, err := handlers.app.ProcessCart(ctx)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONResponse(res, http.StatusOK, cart)
}

// addToCartHandler creates or increments a cart line for a catalog product.
func (handlers *handlers) addToCartHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var addRequest models.AddToCartRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}
	if err = json.Unmarshal(requestBody, &addRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := handlers.app.ProcessAddToCart(ctx, addRequest)
	if err != nil {
		if errors.Is(err, app.ErrProductNotFound) {
			writeErrorResponse(res, "invalid product id provided", http.StatusBadRequest)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONResponse(res, http.StatusOK, cart)
}

// updateQuantityHandler applies a signed quantity delta to one cart line,
// pruning the line when it reaches zero.
func (handlers *handlers) updateQuantityHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		writeErrorResponse(res, "invalid product id provided", http.StatusBadRequest)
		return
	}

	var updateRequest models.UpdateQuantityRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}
	if err = json.Unmarshal(requestBody, &updateRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := handlers.app.ProcessUpdateQuantity(ctx, id, updateRequest.Delta)
	if err != nil {
		if errors.Is(err, storage.ErrLineNotFound) {
			writeErrorResponse(res, "cart line not found", http.StatusNotFound)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONResponse(res, http.StatusOK, cart)
}

// removeLineHandler deletes one cart line unconditionally.
func (handlers *handlers) removeLineHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		writeErrorResponse(res, "invalid product id provided", http.StatusBadRequest)
		return
	}

	cart, err := handlers.app.ProcessRemoveLine(ctx, id)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONResponse(res, http.StatusOK, cart)
}

// quoteHandler computes order totals for the given credit slider positions.
func (handlers *handlers) quoteHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var quoteRequest models.QuoteRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}
	if err = json.Unmarshal(requestBody, &quoteRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := handlers.app.ProcessQuote(ctx, quoteRequest)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrUnknownLine):
			writeErrorResponse(res, "selection references a product not in the cart", http.StatusBadRequest)
		case errors.Is(err, checkout.ErrCreditsExceedCap):
			writeErrorResponse(res, "credits exceed the line cap", http.StatusBadRequest)
		case errors.Is(err, checkout.ErrCreditsOverAllocated):
			writeErrorResponse(res, "credits exceed the available balance", http.StatusBadRequest)
		default:
			writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSONResponse(res, http.StatusOK, quote)
}

// wishlistHandler returns the saved products.
func (handlers *handlers) wishlistHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	entries, err := handlers.app.ProcessWishlist(ctx)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONResponse(res, http.StatusOK, entries)
}

// toggleWishlistHandler flips a product's wishlist membership.
func (handlers *handlers) toggleWishlistHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		writeErrorResponse(res, "invalid product id provided", http.StatusBadRequest)
		return
	}

	entries, saved, err := handlers.app.ProcessToggleWishlist(ctx, id)
	if err != nil {
		if errors.Is(err, app.ErrProductNotFound) {
			writeErrorResponse(res, "invalid product id provided", http.StatusBadRequest)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, http.StatusOK, struct {
		Saved bool                   `json:"saved"`
		Items []models.WishlistEntry `json:"items"`
	}{Saved: saved, Items: entries})
}

// scanHandler processes one decoded QR payload. The outcome, including the
// suppressed and invalid states with their tones, always returns 200; the
// client renders the state.
func (handlers *handlers) scanHandler(res http.ResponseWriter, req *http.Request) {
	var scanRequest models.ScanRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}
	if err = json.Unmarshal(requestBody, &scanRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	result := handlers.app.ProcessScan(scanRequest.Payload)
	writeJSONResponse(res, http.StatusOK, result)
}

// walletHandler returns the wallet view. The qr_scanned query flag from the
// post-scan redirect is accepted for navigation compatibility; crediting
// itself happens on the scan endpoint.
func (handlers *handlers) walletHandler(res http.ResponseWriter, req *http.Request) {
	writeJSONResponse(res, http.StatusOK, handlers.app.ProcessWallet())
}

// binsHandler returns the drop-off locations for the map surface.
func (handlers *handlers) binsHandler(res http.ResponseWriter, req *http.Request) {
	writeJSONResponse(res, http.StatusOK, catalog.Bins)
}

// profileHandler returns the session's user record.
func (handlers *handlers) profileHandler(res http.ResponseWriter, req *http.Request) {
	sessionID, ok := req.Context().Value(auth.ContextSessionID).(string)
	if !ok || sessionID == "" {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := handlers.app.SessionUser(sessionID)
	if err != nil {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSONResponse(res, http.StatusOK, user)
}

// avatarHandler persists the avatar image for the session's user.
func (handlers *handlers) avatarHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	sessionID, ok := req.Context().Value(auth.ContextSessionID).(string)
	if !ok || sessionID == "" {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var avatarRequest models.AvatarRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}
	if err = json.Unmarshal(requestBody, &avatarRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handlers.app.ProcessUpdateAvatar(ctx, sessionID, avatarRequest.Avatar); err != nil {
		if errors.Is(err, app.ErrNoSession) {
			writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// logoutHandler clears the in-memory session.
func (handlers *handlers) logoutHandler(res http.ResponseWriter, req *http.Request) {
	sessionID, ok := req.Context().Value(auth.ContextSessionID).(string)
	if !ok || sessionID == "" {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	handlers.app.ProcessLogout(sessionID)
	res.WriteHeader(http.StatusOK)
}

func writeJSONResponse(res http.ResponseWriter, statusCode int, payload any) {
	result, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
