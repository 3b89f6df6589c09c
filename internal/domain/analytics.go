package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ProductSales aggregates one product's performance inside a window.
type ProductSales struct {
	ProductID string
	Name      string
	Units     int
	Revenue   decimal.Decimal
}

// SalesSummary is the analytics view for a vendor over a date window.
type SalesSummary struct {
	Orders        int
	Revenue       decimal.Decimal
	AvgOrderValue decimal.Decimal
	UnitsSold     int
	TopProducts   []ProductSales
}

// SummarizeSales aggregates payment-completed vendor orders and their
// line items. TopProducts is sorted by revenue descending, capped at topN.
func SummarizeSales(orders []VendorOrder, items []OrderItem, topN int) SalesSummary {
	s := SalesSummary{Revenue: decimal.Zero, AvgOrderValue: decimal.Zero}

	completed := make(map[string]bool, len(orders))
	for _, vo := range orders {
		if vo.Order.PaymentStatus != PaymentCompleted {
			continue
		}
		completed[vo.Order.ID] = true
		s.Orders++
		s.Revenue = s.Revenue.Add(vo.ItemsTotal)
	}
	if s.Orders > 0 {
		s.AvgOrderValue = RoundMoney(s.Revenue.Div(decimal.NewFromInt(int64(s.Orders))))
	}

	byProduct := make(map[string]*ProductSales)
	for _, item := range items {
		if !completed[item.OrderID] {
			continue
		}
		s.UnitsSold += item.Quantity
		ps, ok := byProduct[item.ProductID]
		if !ok {
			ps = &ProductSales{ProductID: item.ProductID, Name: item.Name, Revenue: decimal.Zero}
			byProduct[item.ProductID] = ps
		}
		ps.Units += item.Quantity
		ps.Revenue = ps.Revenue.Add(item.Subtotal)
	}

	top := make([]ProductSales, 0, len(byProduct))
	for _, ps := range byProduct {
		top = append(top, *ps)
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].Revenue.Equal(top[j].Revenue) {
			return top[i].Revenue.GreaterThan(top[j].Revenue)
		}
		return top[i].ProductID < top[j].ProductID
	})
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}
	s.TopProducts = top

	return s
}
