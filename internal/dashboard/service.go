package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/storelane/shop-admin-backend/internal/order"
)

// recentOrdersLimit matches what the dashboard landing page renders.
const recentOrdersLimit = 5

// Service aggregates the dashboard numbers. The four reads are independent
// and share no mutable state, so they run as a concurrent fan-out joined
// before responding. Each goroutine writes a distinct Summary field.
type Service struct {
	repo   Repository
	orders order.Repository
}

func NewService(repo Repository, orders order.Repository) *Service {
	return &Service{repo: repo, orders: orders}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	g, ctx := errgroup.WithContext(ctx)
	var sum Summary

	g.Go(func() error {
		n, err := s.repo.CountProducts(ctx)
		sum.TotalProducts = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountOrders(ctx)
		sum.TotalOrders = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountCustomers(ctx)
		sum.TotalCustomers = n
		return err
	})
	g.Go(func() error {
		orders, err := s.orders.List()
		if err != nil {
			return err
		}
		if len(orders) > recentOrdersLimit {
			orders = orders[:recentOrdersLimit]
		}
		sum.RecentOrders = orders
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if sum.RecentOrders == nil {
		sum.RecentOrders = []order.Order{}
	}
	return sum, nil
}
