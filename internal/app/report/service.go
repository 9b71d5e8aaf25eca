package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
	"github.com/nadanruchi/storefront/internal/storage"
)

const topItemLimit = 5

// Service derives revenue summaries by scanning the persisted order list.
// Read-only; nothing here feeds back into the lifecycle engine.
type Service struct {
	orders storage.Collection[domain.Order]
}

func NewService(store storage.Store, log logger.Logger) *Service {
	return &Service{
		orders: storage.NewCollection[domain.Order](store, storage.KeyOrders, log),
	}
}

// Summary aggregates orders created inside [from, to]. Either bound may be
// nil. Cancelled and rejected orders appear in the status counts but are
// excluded from revenue, payment and item totals.
func (s *Service) Summary(ctx context.Context, from, to *time.Time) *interfaces.RevenueReport {
	rep := &interfaces.RevenueReport{
		From:          from,
		To:            to,
		TotalRevenue:  decimal.Zero,
		StatusCounts:  make(map[domain.Status]int),
		PaymentTotals: make(map[domain.PaymentMethod]decimal.Decimal),
	}

	itemQty := make(map[string]int)
	itemRevenue := make(map[string]decimal.Decimal)
	daily := make(map[string]decimal.Decimal)

	for _, o := range s.orders.Load(ctx) {
		if from != nil && o.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && o.CreatedAt.After(*to) {
			continue
		}

		rep.OrderCount++
		rep.StatusCounts[o.Status]++

		if o.Status == domain.StatusCancelled || o.Status == domain.StatusRejected {
			continue
		}

		rep.TotalRevenue = rep.TotalRevenue.Add(o.Total)

		current, ok := rep.PaymentTotals[o.Payment]
		if !ok {
			current = decimal.Zero
		}
		rep.PaymentTotals[o.Payment] = current.Add(o.Total)

		day := o.CreatedAt.Format("2006-01-02")
		if _, ok := daily[day]; !ok {
			daily[day] = decimal.Zero
		}
		daily[day] = daily[day].Add(o.Total)

		for _, line := range o.Lines {
			itemQty[line.Name] += line.Quantity
			if _, ok := itemRevenue[line.Name]; !ok {
				itemRevenue[line.Name] = decimal.Zero
			}
			itemRevenue[line.Name] = itemRevenue[line.Name].Add(
				line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}

	for name, qty := range itemQty {
		rep.TopItems = append(rep.TopItems, interfaces.ItemSales{
			Name:     name,
			Quantity: qty,
			Revenue:  itemRevenue[name],
		})
	}
	sort.Slice(rep.TopItems, func(i, j int) bool {
		if rep.TopItems[i].Quantity != rep.TopItems[j].Quantity {
			return rep.TopItems[i].Quantity > rep.TopItems[j].Quantity
		}
		return rep.TopItems[i].Name < rep.TopItems[j].Name
	})
	if len(rep.TopItems) > topItemLimit {
		rep.TopItems = rep.TopItems[:topItemLimit]
	}

	for day, revenue := range daily {
		rep.DailyRevenue = append(rep.DailyRevenue, interfaces.DailyRevenue{Day: day, Revenue: revenue})
	}
	sort.Slice(rep.DailyRevenue, func(i, j int) bool {
		return rep.DailyRevenue[i].Day < rep.DailyRevenue[j].Day
	})

	return rep
}
