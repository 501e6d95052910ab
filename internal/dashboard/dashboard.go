package dashboard

import "github.com/storelane/shop-admin-backend/internal/order"

// Summary is the dashboard landing payload: three aggregate counters plus
// the most recent orders.
type Summary struct {
	TotalProducts  int64         `json:"totalProducts"`
	TotalOrders    int64         `json:"totalOrders"`
	TotalCustomers int64         `json:"totalCustomers"`
	RecentOrders   []order.Order `json:"recentOrders"`
}
