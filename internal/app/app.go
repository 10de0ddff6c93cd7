// Package app provides the core application logic for the EcoSnap service.
// It handles the session gate, cart and wishlist mutations, QR scan
// crediting, and checkout quoting. The package integrates with the storage
// layer for persistence and uses the auth package for token generation.
// Logging functionality is provided via the logger package.
package app

import (
	"context"
	"errors"
	"sync"

	"ecosnap/internal/catalog"
	"ecosnap/internal/checkout"
	"ecosnap/internal/models"
	"ecosnap/internal/pkg/auth"
	"ecosnap/internal/pkg/logger"
	"ecosnap/internal/pkg/security"
	"ecosnap/internal/scan"
	"ecosnap/internal/storage"
	"ecosnap/internal/wallet"

	"github.com/google/uuid"
)

// Predefined errors surfaced to the service layer.
var (
	// ErrMissingUsernameOrPassword indicates that either the username or password is not provided.
	ErrMissingUsernameOrPassword = errors.New("app: missing username or password")
	// ErrInvalidCredentials indicates the credential pair did not match.
	ErrInvalidCredentials = errors.New("app: invalid credentials")
	// ErrProductNotFound indicates a reference to a product id outside the catalog.
	ErrProductNotFound = errors.New("app: product not found")
	// ErrNoSession indicates the token's session was logged out or never existed.
	ErrNoSession = errors.New("app: no active session")
)

// The single hardcoded credential pair. The password is kept only as a
// bcrypt hash and checked the same way a stored credential would be.
const adminUsername = "admin"

var adminPasswordHash = security.HashPassword("1234")

// App encapsulates the application logic and dependencies required to
// process requests. Sessions live only in memory: a restart logs everyone
// out, while the avatar persists in storage independently of auth state.
type App struct {
	kv       storage.KV
	cart     *storage.CartStore
	wishlist *storage.WishlistStore
	ledger   *wallet.Ledger
	scanner  *scan.Processor
	log      *logger.Logger

	mu       sync.Mutex
	sessions map[string]*models.User
}

// NewApp creates and returns a new App instance wired to the given stores.
func NewApp(kv storage.KV, cart *storage.CartStore, wishlist *storage.WishlistStore, ledger *wallet.Ledger, log *logger.Logger) *App {
	return &App{
		kv:       kv,
		cart:     cart,
		wishlist: wishlist,
		ledger:   ledger,
		scanner:  scan.NewProcessor(),
		log:      log,
		sessions: make(map[string]*models.User),
	}
}

// ProcessAuth checks the credential pair and, on success, creates the
// in-memory user record (restoring a previously persisted avatar if any)
// and returns a session token. Failure carries no detail beyond the error.
func (app *App) ProcessAuth(ctx context.Context, req models.AuthRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", ErrMissingUsernameOrPassword
	}

	if req.Username != adminUsername || security.CheckPassword(adminPasswordHash, req.Password) != nil {
		return "", ErrInvalidCredentials
	}

	avatar, err := storage.GetAvatar(ctx, app.kv)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username: adminUsername,
		Name:     "Alex Chen",
		Email:    "alex.chen@email.com",
		Avatar:   avatar,
	}

	sessionID := uuid.NewString()
	token, err := auth.GenerateToken(sessionID)
	if err != nil {
		return "", err
	}

	app.mu.Lock()
	app.sessions[sessionID] = user
	app.mu.Unlock()

	return token, nil
}

// ProcessLogout clears the in-memory session record only; persisted state,
// including the avatar, is untouched.
func (app *App) ProcessLogout(sessionID string) {
	app.mu.Lock()
	delete(app.sessions, sessionID)
	app.mu.Unlock()
}

// SessionUser returns the user record for an active session.
func (app *App) SessionUser(sessionID string) (*models.User, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	user, ok := app.sessions[sessionID]
	if !ok {
		return nil, ErrNoSession
	}
	copied := *user
	return &copied, nil
}

// ProcessUpdateAvatar persists the avatar image and updates the session's
// user record. Only the avatar is persisted, never the auth state.
func (app *App) ProcessUpdateAvatar(ctx context.Context, sessionID, avatar string) error {
	app.mu.Lock()
	user, ok := app.sessions[sessionID]
	app.mu.Unlock()
	if !ok {
		return ErrNoSession
	}

	if err := storage.SetAvatar(ctx, app.kv, avatar); err != nil {
		return err
	}

	app.mu.Lock()
	user.Avatar = avatar
	app.mu.Unlock()
	return nil
}

// ProcessCart returns the current cart with its badge count.
func (app *App) ProcessCart(ctx context.Context) (*models.CartResponse, error) {
	lines, err := app.cart.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &models.CartResponse{Items: lines, Count: storage.Count(lines)}, nil
}

// ProcessAddToCart adds a catalog product to the cart.
func (app *App) ProcessAddToCart(ctx context.Context, req models.AddToCartRequest) (*models.CartResponse, error) {
	product, ok := catalog.ProductByID(req.ProductID)
	if !ok {
		return nil, ErrProductNotFound
	}

	lines, err := app.cart.Add(ctx, product, req.Quantity)
	if err != nil {
		return nil, err
	}
	return &models.CartResponse{Items: lines, Count: storage.Count(lines)}, nil
}

// ProcessUpdateQuantity applies a signed delta to one cart line.
func (app *App) ProcessUpdateQuantity(ctx context.Context, productID, delta int) (*models.CartResponse, error) {
	lines, err := app.cart.UpdateQuantity(ctx, productID, delta)
	if err != nil {
		return nil, err
	}
	return &models.CartResponse{Items: lines, Count: storage.Count(lines)}, nil
}

// ProcessRemoveLine removes one cart line unconditionally.
func (app *App) ProcessRemoveLine(ctx context.Context, productID int) (*models.CartResponse, error) {
	lines, err := app.cart.Remove(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &models.CartResponse{Items: lines, Count: storage.Count(lines)}, nil
}

// ProcessToggleWishlist flips a product's wishlist membership and reports
// whether it is now saved.
func (app *App) ProcessToggleWishlist(ctx context.Context, productID int) ([]models.WishlistEntry, bool, error) {
	product, ok := catalog.ProductByID(productID)
	if !ok {
		return nil, false, ErrProductNotFound
	}
	return app.wishlist.Toggle(ctx, product)
}

// ProcessWishlist returns the saved products.
func (app *App) ProcessWishlist(ctx context.Context) ([]models.WishlistEntry, error) {
	return app.wishlist.Load(ctx)
}

// ProcessScan classifies a decoded payload and, when it is accepted,
// credits the category's fixed reward to the wallet's bonus counter.
func (app *App) ProcessScan(payload string) models.ScanResult {
	result := app.scanner.Process(payload)
	if result.Accepted {
		app.ledger.AddBonus(result.Credits)
	}
	return result
}

// ProcessQuote computes the order summary for the given slider positions
// against the cart and the wallet's available balance.
func (app *App) ProcessQuote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error) {
	lines, err := app.cart.Load(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := checkout.Quote(lines, req.Lines, app.ledger.Available())
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// ProcessWallet assembles the wallet view.
func (app *App) ProcessWallet() models.WalletResponse {
	return app.ledger.Snapshot()
}
