// Package models defines the data structures used throughout the application.
// It includes request and response payloads for authentication, cart and
// wishlist mutations, scan processing, and wallet state, along with the
// domain records they carry.
package models

// AuthRequest represents the authentication request payload.
// It contains the username and password provided by the user.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the authentication response payload.
// It contains the generated token upon successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorResponse represents a generic error response payload.
// It contains a string describing the encountered error.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// User represents the in-memory record created on successful login.
// It is never persisted; only the avatar survives across sessions.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

// Product represents an item in the static upcycled-goods catalog.
// Products are immutable reference data; they are never created or
// destroyed at runtime.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Credits     int     `json:"credits"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	WasteType   string  `json:"wasteType"`
	Badge       string  `json:"badge"`
	Category    string  `json:"category"`
}

// CartLine is one entry of the persisted cart. Quantity stays >= 1 for
// every surviving line; a line driven to zero is pruned from the list.
type CartLine struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Credits   int     `json:"credits"`
	WasteType string  `json:"wasteType"`
	Quantity  int     `json:"quantity"`
}

// WishlistEntry is a display snapshot of a saved product. Entries have set
// semantics keyed on the product id.
type WishlistEntry struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

// AddToCartRequest asks for a product to be added to the cart.
type AddToCartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity,omitempty"`
}

// UpdateQuantityRequest carries a signed quantity delta for one cart line.
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

// CartResponse is the full cart along with the badge count consumed by
// navigation chrome.
type CartResponse struct {
	Items []CartLine `json:"items"`
	Count int        `json:"count"`
}

// WasteCategory is one of the six fixed classifications mapped from a
// scanned code. Read-only reference data.
type WasteCategory struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	Credits int    `json:"credits"`
	Message string `json:"message"`
}

// Tone describes an audio cue for the client to synthesize: a sine wave at
// the given frequency for the given duration in milliseconds.
type Tone struct {
	FrequencyHz int `json:"frequencyHz"`
	DurationMs  int `json:"durationMs"`
}

// ScanRequest carries the decoded text delivered by the QR scanning
// collaborator.
type ScanRequest struct {
	Payload string `json:"payload"`
}

// ScanResult reports the outcome of one decoded payload: the matched waste
// category and credited reward on success, or the invalid state with its
// distinct tone. Suppressed scans carry neither.
type ScanResult struct {
	EventID    string         `json:"eventId,omitempty"`
	Accepted   bool           `json:"accepted"`
	Suppressed bool           `json:"suppressed,omitempty"`
	Invalid    bool           `json:"invalid,omitempty"`
	Category   *WasteCategory `json:"category,omitempty"`
	Credits    int            `json:"credits"`
	Tone       *Tone          `json:"tone,omitempty"`
}

// QuoteLine is one line of a checkout quote request: the per-unit credits
// the user selected with the slider.
type QuoteLine struct {
	ProductID      int `json:"productId"`
	CreditsPerUnit int `json:"creditsPerUnit"`
}

// QuoteRequest asks for order totals given the current slider positions.
type QuoteRequest struct {
	Lines []QuoteLine `json:"lines"`
}

// QuoteResponse carries the computed order summary.
type QuoteResponse struct {
	Subtotal    float64 `json:"subtotal"`
	CreditsUsed int     `json:"creditsUsed"`
	Total       float64 `json:"total"`
}

// TierInfo describes the lifetime-credit band the user currently sits in
// and the progress toward the next one. Display-only.
type TierInfo struct {
	Name        string  `json:"name"`
	NextName    string  `json:"nextName,omitempty"`
	Progress    float64 `json:"progress"`
	CreditsToGo int     `json:"creditsToGo"`
}

// WalletResponse is the /api/wallet payload: derived balances plus the
// display metadata the wallet page renders.
type WalletResponse struct {
	Available    int      `json:"available"`
	Displayed    int      `json:"displayed"`
	BonusCredits int      `json:"bonusCredits"`
	TotalEarned  int      `json:"totalEarned"`
	Redeemed     int      `json:"totalRedeemed"`
	Lifetime     int      `json:"lifetime"`
	Pending      int      `json:"pendingCredits"`
	ThisWeek     int      `json:"thisWeek"`
	LastWeek     int      `json:"lastWeek"`
	WeeklyGrowth int      `json:"weeklyGrowth"`
	Animating    bool     `json:"animating"`
	Tier         TierInfo `json:"tier"`
}

// BinLocation is a waste drop-off point shown on the map surface.
type BinLocation struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Distance   string   `json:"distance"`
	WasteTypes []string `json:"wasteTypes"`
	Rating     float64  `json:"rating"`
	Address    string   `json:"address"`
	Capacity   int      `json:"capacity"`
	Hours      string   `json:"hours"`
	Credits    int      `json:"credits"`
	CategoryID int      `json:"categoryId"`
}

// AvatarRequest carries the avatar image (a data URL) to persist.
type AvatarRequest struct {
	Avatar string `json:"avatar"`
}

// CartEvent is broadcast after any cart mutation; badge displays consume
// the count.
type CartEvent struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
