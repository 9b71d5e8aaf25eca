package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable-at-creation snapshot of a checkout, tracked through
// the status lifecycle. Lines carry captured name and price so later menu
// edits never alter a historical order.
type Order struct {
	ID            string          `json:"id"`
	CustomerEmail string          `json:"email"`
	Lines         []OrderLine     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Delivery      DeliveryDetails `json:"delivery"`
	Payment       PaymentMethod   `json:"payment"`
	Status        Status          `json:"status"`
	AdminComment  string          `json:"admin_comment,omitempty"`
	CreatedAt     time.Time       `json:"date"`
}

// OrderLine is a by-value copy of a cart line at checkout time.
type OrderLine struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"qty"`
}

type DeliveryDetails struct {
	Zone     string `json:"zone"`
	Street   string `json:"street"`
	Building string `json:"building"`
	Area     string `json:"area,omitempty"`
}

// CalculateTotal recomputes the order total from its captured lines.
func (o *Order) CalculateTotal() {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	o.Total = total
}

// Advance moves the order one step along the fulfillment flow. Terminal
// orders are refused rather than silently corrupted.
func (o *Order) Advance() error {
	if o.Status.IsTerminal() {
		return ErrInvalidTransition
	}
	next, ok := o.Status.Next()
	if !ok {
		return ErrInvalidTransition
	}
	o.Status = next
	return nil
}

// Cancel is the customer-initiated escape, permitted only while pending.
func (o *Order) Cancel() error {
	if o.Status != StatusPending {
		return ErrInvalidTransition
	}
	o.Status = StatusCancelled
	return nil
}

// Reject is the administrator-initiated escape, permitted from any
// non-terminal state and requiring a non-empty reason. The reason is the only
// way AdminComment gets set, keeping the comment/status invariant in one
// place.
func (o *Order) Reject(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if o.Status.IsTerminal() {
		return ErrInvalidTransition
	}
	o.Status = StatusRejected
	o.AdminComment = strings.TrimSpace(reason)
	return nil
}

// CardDetails carries the payment fields collected at checkout for card
// orders. Validated for format only; nothing is charged or stored.
type CardDetails struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	HolderName string `json:"holder_name"`
}

var (
	cardNumberRegex = regexp.MustCompile(`^\d{16}$`)
	cardExpiryRegex = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cardCVVRegex    = regexp.MustCompile(`^\d{3,4}$`)
	cardHolderRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// Validate checks card format: 16 digits (spaces ignored), MM/YY with month
// 01-12, 3-4 digit CVV, alphabetic holder name.
func (c CardDetails) Validate() error {
	number := strings.ReplaceAll(c.Number, " ", "")
	if !cardNumberRegex.MatchString(number) {
		return ErrInvalidCardDetails
	}
	match := cardExpiryRegex.FindStringSubmatch(strings.TrimSpace(c.Expiry))
	if match == nil {
		return ErrInvalidCardDetails
	}
	month, err := strconv.Atoi(match[1])
	if err != nil || month < 1 || month > 12 {
		return ErrInvalidCardDetails
	}
	if !cardCVVRegex.MatchString(strings.TrimSpace(c.CVV)) {
		return ErrInvalidCardDetails
	}
	holder := strings.TrimSpace(c.HolderName)
	if holder == "" || !cardHolderRegex.MatchString(holder) {
		return ErrInvalidCardDetails
	}
	return nil
}
