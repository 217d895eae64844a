package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Soham964/AGRO/internal/client/models"
)

// Gateway is the API contract of the marketplace backend. HTTPClient is the
// production implementation; tests substitute fakes.
type Gateway interface {
	// Token accessors. SetToken writes through to persistent storage,
	// Token reads the in-memory copy (lazily loaded from storage once),
	// ClearToken wipes both.
	SetToken(ctx context.Context, token string) error
	Token(ctx context.Context) string
	ClearToken(ctx context.Context) error

	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (*models.User, error)

	SendOTP(ctx context.Context, email string, purpose models.OTPPurpose) error
	VerifyOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) error
	LoginWithOTP(ctx context.Context, email, code string) (*models.AuthResponse, error)

	Products(ctx context.Context, query ProductQuery) (*models.ProductPage, error)
	Product(ctx context.Context, id int64) (*models.Product, error)
	ProductCategories(ctx context.Context) ([]models.CategoryOption, error)
	SearchProducts(ctx context.Context, q, category, sort string) ([]models.Product, error)

	Cart(ctx context.Context) (*models.Cart, error)
	AddToCart(ctx context.Context, productID int64, quantity int) (*models.Cart, error)
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, itemID int64) (*models.Cart, error)
	ClearCart(ctx context.Context) (*models.Cart, error)

	Orders(ctx context.Context) ([]models.Order, error)
	CreateOrderFromCart(ctx context.Context, deliveryAddress string) ([]models.Order, error)
	Order(ctx context.Context, id int64) (*models.Order, error)
}

// ProductQuery filters and orders the paginated product listing.
// The zero value lists everything.
type ProductQuery struct {
	Search   string
	Category string
	Ordering string
	Page     int
}

// encode renders the query as a URL query string, empty when no filter is
// set. A category of "all" means no category filter.
func (q ProductQuery) encode() string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" && q.Category != "all" {
		values.Set("category", q.Category)
	}
	if q.Ordering != "" {
		values.Set("ordering", q.Ordering)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	return values.Encode()
}
