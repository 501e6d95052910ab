package order

import (
	"time"

	"github.com/google/uuid"
)

// Service applies the status workflow in front of the repository. Concurrent
// updates to the same order are not serialized here; the store's last write
// wins, which is acceptable for low-frequency manual admin edits.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Get(id string) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List() ([]Order, error) {
	return s.repo.List()
}

// Update loads the current record, merges the request through the workflow
// rules and persists the result. Exactly one record is mutated per call; no
// notifications or downstream events follow a status change.
func (s *Service) Update(id string, req UpdateRequest) (Order, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	merged, err := req.Apply(current)
	if err != nil {
		return Order{}, err
	}
	merged.ID = current.ID
	return s.repo.Update(merged)
}

// Seed inserts the given orders, filling in ids, statuses and timestamps
// when absent. Only the dev seeding endpoint and tests use this.
func (s *Service) Seed(orders []Order) ([]Order, error) {
	out := make([]Order, 0, len(orders))
	for _, ord := range orders {
		if ord.ID == "" {
			ord.ID = uuid.New().String()
		}
		if ord.Status == "" {
			ord.Status = StatusPending
		}
		if ord.CreatedAt.IsZero() {
			ord.CreatedAt = time.Now().UTC()
		}
		created, err := s.repo.Create(ord)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}
