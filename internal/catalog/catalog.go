// Package catalog persists the user-facing content of the app: curated
// styles, the showcase product catalog, user profiles, and wishlists.
//
// Two implementations exist behind the Store interface: a DynamoDB
// single-table store for deployments and a seeded in-memory store for
// development and tests. All Get methods return (nil, nil) when the record
// does not exist.
package catalog

import "context"

// User is a shopper profile captured during onboarding.
type User struct {
	ID             string   `json:"id" dynamodbav:"-"`
	Username       string   `json:"username"`
	Gender         string   `json:"gender"`
	BodyType       string   `json:"bodyType"`
	ShirtSize      string   `json:"shirtSize,omitempty"`
	PantSize       string   `json:"pantSize,omitempty"`
	ShoeSize       string   `json:"shoeSize,omitempty"`
	FavoriteBrands []string `json:"favoriteBrands,omitempty"`
	MinBudget      int      `json:"minBudget,omitempty"`
	MaxBudget      int      `json:"maxBudget,omitempty"`
}

// Style is one curated outfit: a reference photo plus the products that
// recreate it. The photo is what the product-search pipeline runs on.
type Style struct {
	ID          string   `json:"id" dynamodbav:"-"`
	Name        string   `json:"name"`
	Designer    string   `json:"designer"`
	Description string   `json:"description"`
	Occasion    string   `json:"occasion"`
	BodyType    string   `json:"bodyType"`
	Gender      string   `json:"gender"`
	Image       string   `json:"image"`
	Products    []string `json:"products"`
}

// Product is a showcase catalog item.
type Product struct {
	ID              string   `json:"id" dynamodbav:"-"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Price           int      `json:"price"`
	Retailer        string   `json:"retailer"`
	Image           string   `json:"image"`
	MatchPercentage int      `json:"matchPercentage,omitempty"`
	Description     string   `json:"description"`
	Colors          []string `json:"colors,omitempty"`
	Pattern         string   `json:"pattern,omitempty"`
}

// WishlistItem links a user to a saved style or product.
type WishlistItem struct {
	ID       string `json:"id" dynamodbav:"-"`
	UserID   string `json:"userId" dynamodbav:"-"`
	ItemType string `json:"itemType"`
	ItemID   string `json:"itemId"`
}

// Store is the persistence interface for catalog content. Each method is
// safe for concurrent use.
type Store interface {
	// CreateUser stores a new user and returns it with its assigned ID.
	CreateUser(ctx context.Context, user *User) (*User, error)

	// GetStyles lists styles, filtered by any non-empty criteria.
	GetStyles(ctx context.Context, gender, bodyType, occasion string) ([]Style, error)

	// GetStyle retrieves one style by ID. Returns nil, nil if not found.
	GetStyle(ctx context.Context, id string) (*Style, error)

	// PutStyle creates or replaces a style.
	PutStyle(ctx context.Context, style *Style) error

	// GetProducts lists products, filtered by category when non-empty.
	GetProducts(ctx context.Context, category string) ([]Product, error)

	// PutProduct creates or replaces a product.
	PutProduct(ctx context.Context, product *Product) error

	// GetWishlist lists a user's saved items.
	GetWishlist(ctx context.Context, userID string) ([]WishlistItem, error)

	// GetWishlistItem finds a saved item by its content. Returns nil, nil
	// if the user has not saved it.
	GetWishlistItem(ctx context.Context, userID, itemType, itemID string) (*WishlistItem, error)

	// AddToWishlist stores a new wishlist item and returns it with its ID.
	AddToWishlist(ctx context.Context, item *WishlistItem) (*WishlistItem, error)

	// RemoveFromWishlist deletes one saved item.
	RemoveFromWishlist(ctx context.Context, userID, id string) error
}
