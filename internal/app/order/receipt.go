package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nadanruchi/storefront/internal/domain"
)

// Receipt renders an order as a plain-text bill. Pure read-side projection;
// no state effect. An empty email skips the ownership check (admin path).
func (s *Service) Receipt(ctx context.Context, orderID, email string) (string, error) {
	o, ok := s.Get(ctx, orderID)
	if !ok {
		return "", domain.ErrOrderNotFound
	}
	if email != "" && o.CustomerEmail != email {
		return "", domain.ErrOrderNotFound
	}
	return formatReceipt(o), nil
}

func formatReceipt(o *domain.Order) string {
	var b strings.Builder

	b.WriteString("Nadan Ruchi\n")
	b.WriteString("Al Wakrah - Doha, Qatar\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "Order:    %s\n", o.ID)
	fmt.Fprintf(&b, "Date:     %s\n", o.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerEmail)
	fmt.Fprintf(&b, "Delivery: zone %s, %s, bldg %s\n", o.Delivery.Zone, o.Delivery.Street, o.Delivery.Building)
	b.WriteString(strings.Repeat("-", 40) + "\n")

	for _, line := range o.Lines {
		subtotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		fmt.Fprintf(&b, "%2d x %-24s %8s\n", line.Quantity, truncate(line.Name, 24), "QAR "+subtotal.StringFixed(2))
	}

	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Total: QAR %s\n", o.Total.StringFixed(2))
	payment := "Cash on Delivery"
	if o.Payment == domain.PaymentCard {
		payment = "Card"
	}
	fmt.Fprintf(&b, "Payment: %s\n", payment)
	fmt.Fprintf(&b, "Status:  %s\n", o.Status)
	b.WriteString("\nThank you for ordering with Nadan Ruchi!\n")
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
