package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nadanruchi/storefront/internal/domain"
)

// CategoryFlag names the two MenuItem booleans the bulk category update may
// touch.
type CategoryFlag string

const (
	FlagUnavailable CategoryFlag = "unavailable"
	FlagHighlighted CategoryFlag = "highlighted"
)

type MenuService interface {
	List(ctx context.Context) []domain.MenuItem
	Get(ctx context.Context, id string) (*domain.MenuItem, bool)
	Upsert(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id string) error
	SetCategoryFlag(ctx context.Context, category domain.Category, field CategoryFlag, value bool) error
}

// CartLineView is a cart line joined against the live menu at read time.
// Removed, OutOfStock and ExceedsStock surface inventory drift that happened
// while the item sat in the cart.
type CartLineView struct {
	ItemID       string          `json:"item_id"`
	Name         string          `json:"name"`
	Category     domain.Category `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"qty"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	MaxAllowed   int             `json:"max_allowed"`
	Removed      bool            `json:"removed"`
	OutOfStock   bool            `json:"out_of_stock"`
	ExceedsStock bool            `json:"exceeds_stock"`
}

type CartView struct {
	Lines []CartLineView  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type CartService interface {
	View(ctx context.Context, email string) CartView
	Add(ctx context.Context, email, itemID string, qty int) error
	UpdateQuantity(ctx context.Context, email, itemID string, qty int) error
	Remove(ctx context.Context, email, itemID string) error
	Clear(ctx context.Context, email string) error
	Total(ctx context.Context, email string) decimal.Decimal
}

// CheckoutCommand carries everything needed to turn the customer's cart into
// an order. Card is required iff Payment is card.
type CheckoutCommand struct {
	CustomerEmail string
	Delivery      domain.DeliveryDetails
	Payment       domain.PaymentMethod
	Card          *domain.CardDetails
}

type OrderService interface {
	Checkout(ctx context.Context, cmd CheckoutCommand) (*domain.Order, error)
	ListByCustomer(ctx context.Context, email string) []domain.Order
	ListAll(ctx context.Context) []domain.Order
	Get(ctx context.Context, orderID string) (*domain.Order, bool)
	Advance(ctx context.Context, orderID, changedBy string) error
	Cancel(ctx context.Context, orderID, email string) error
	Reject(ctx context.Context, orderID, reason, changedBy string) error
	// ProgressAll advances every non-terminal order one step and returns how
	// many moved. Driven by the simulation ticker.
	ProgressAll(ctx context.Context) int
	Receipt(ctx context.Context, orderID, email string) (string, error)
}

type ItemSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"qty"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type DailyRevenue struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueReport is a read-only projection over the persisted orders.
// Cancelled and rejected orders count toward status totals but not revenue.
type RevenueReport struct {
	From          *time.Time                         `json:"from,omitempty"`
	To            *time.Time                         `json:"to,omitempty"`
	OrderCount    int                                `json:"order_count"`
	TotalRevenue  decimal.Decimal                    `json:"total_revenue"`
	StatusCounts  map[domain.Status]int              `json:"status_counts"`
	PaymentTotals map[domain.PaymentMethod]decimal.Decimal `json:"payment_totals"`
	TopItems      []ItemSales                        `json:"top_items"`
	DailyRevenue  []DailyRevenue                     `json:"daily_revenue"`
}

type ReportService interface {
	Summary(ctx context.Context, from, to *time.Time) *RevenueReport
}

type Zone struct {
	Number string `json:"zone_number"`
	Name   string `json:"zone_name_en"`
}

type Street struct {
	Number string `json:"street_number"`
	Name   string `json:"street_name_en"`
}

type Building struct {
	Number string `json:"building_number"`
}

type AddressService interface {
	Zones(ctx context.Context) ([]Zone, error)
	Streets(ctx context.Context, zone string) ([]Street, error)
	Buildings(ctx context.Context, zone, street string) ([]Building, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, bool)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, email, orderID string, rating int, text string) (*domain.Review, error)
	ListReviews(ctx context.Context) []domain.Review
	SubmitFeedback(ctx context.Context, name, email, message string) (*domain.Feedback, error)
}
