package dashboard

import "context"

// Repository answers the independent count queries behind the dashboard.
// Each method is a single aggregate query; the service fans them out
// concurrently.
type Repository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
}
