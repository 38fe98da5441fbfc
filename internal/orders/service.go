package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pizza-store/internal/authz"
	"pizza-store/internal/domain"
	"pizza-store/internal/mq"
)

// RecentLimit is how many orders the "past orders" shortcut shows.
const RecentLimit = 5

// PriceSource resolves an item's current price at placement time.
type PriceSource interface {
	PriceOf(ctx context.Context, name string) (decimal.Decimal, error)
}

// StoreDirectory answers whether a store id is valid.
type StoreDirectory interface {
	Exists(ctx context.Context, storeID int) (bool, error)
}

type Service struct {
	log    zerolog.Logger
	repo   Repository
	prices PriceSource
	stores StoreDirectory
	pub    mq.Publisher
}

func NewService(log zerolog.Logger, repo Repository, prices PriceSource, stores StoreDirectory, pub mq.Publisher) *Service {
	return &Service{log: log, repo: repo, prices: prices, stores: stores, pub: pub}
}

// Place validates and persists a new order. Duplicate item names are
// merged by summing quantities. The total is frozen at placement from
// each item's current price.
func (s *Service) Place(ctx context.Context, sess domain.Session, storeID int, lines []domain.OrderLine) (domain.Order, error) {
	if len(lines) == 0 {
		return domain.Order{}, fmt.Errorf("order must contain at least one item: %w", domain.ErrValidation)
	}
	for _, ln := range lines {
		if ln.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("quantity for %s must be positive: %w", ln.ItemName, domain.ErrValidation)
		}
	}

	ok, err := s.stores.Exists(ctx, storeID)
	if err != nil {
		return domain.Order{}, err
	}
	if !ok {
		return domain.Order{}, fmt.Errorf("store %d: %w", storeID, domain.ErrNotFound)
	}

	merged := mergeLines(lines)
	total := decimal.Zero
	for _, ln := range merged {
		price, err := s.prices.PriceOf(ctx, ln.ItemName)
		if err != nil {
			return domain.Order{}, err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}

	order := domain.Order{
		Login:     sess.Login,
		StoreID:   storeID,
		Total:     total,
		Timestamp: time.Now().UTC(),
		Status:    domain.StatusIncomplete,
		Lines:     merged,
	}
	order.ID, err = s.repo.Insert(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	s.log.Info().Int64("order_id", order.ID).Str("login", sess.Login).
		Str("total", total.StringFixed(2)).Msg("order placed")

	s.publishPlaced(ctx, order)
	return order, nil
}

// History returns the target account's orders, newest first, grouped
// with their lines. Customers may only see their own; drivers and
// managers may look up anyone.
func (s *Service) History(ctx context.Context, sess domain.Session, targetLogin string, limit int) ([]OrderGroup, error) {
	if targetLogin == "" {
		targetLogin = sess.Login
	}
	if sess.Role == domain.RoleCustomer && targetLogin != sess.Login {
		return nil, domain.ErrAccessDenied
	}
	rows, err := s.repo.HistoryRows(ctx, targetLogin, limit)
	if err != nil {
		return nil, err
	}
	return GroupRows(rows), nil
}

// Info returns a single order with its lines, enforcing ownership for
// customers.
func (s *Service) Info(ctx context.Context, sess domain.Session, orderID int64) (domain.Order, error) {
	o, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if sess.Role == domain.RoleCustomer && o.Login != sess.Login {
		return domain.Order{}, domain.ErrAccessDenied
	}
	return o, nil
}

// UpdateStatus moves an order between incomplete and complete. Driver
// and manager only.
func (s *Service) UpdateStatus(ctx context.Context, sess domain.Session, orderID int64, status domain.OrderStatus) error {
	if !authz.Allowed(sess.Role, authz.ActionUpdateOrderStatus) {
		return domain.ErrAccessDenied
	}
	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	s.log.Info().Int64("order_id", orderID).Str("status", string(status)).
		Str("by", sess.Login).Msg("order status updated")

	s.publishStatus(ctx, orderID, status, sess.Login)
	return nil
}

func (s *Service) publishPlaced(ctx context.Context, o domain.Order) {
	lines := make([]domain.OrderLineMsg, 0, len(o.Lines))
	for _, ln := range o.Lines {
		lines = append(lines, domain.OrderLineMsg{ItemName: ln.ItemName, Quantity: ln.Quantity})
	}
	ev := domain.OrderPlacedEvent{
		OrderID:    o.ID,
		Login:      o.Login,
		StoreID:    o.StoreID,
		TotalPrice: o.Total.StringFixed(2),
		Lines:      lines,
		PlacedAt:   o.Timestamp,
	}
	if err := s.pub.Publish(ctx, "order.placed", ev); err != nil {
		s.log.Error().Err(err).Int64("order_id", o.ID).Msg("failed to publish order.placed")
	}
}

func (s *Service) publishStatus(ctx context.Context, orderID int64, status domain.OrderStatus, by string) {
	ev := domain.OrderStatusChangedEvent{
		OrderID:   orderID,
		Status:    string(status),
		ChangedBy: by,
		ChangedAt: time.Now().UTC(),
	}
	key := fmt.Sprintf("order.status.%s", status)
	if err := s.pub.Publish(ctx, key, ev); err != nil {
		s.log.Error().Err(err).Int64("order_id", orderID).Msg("failed to publish status change")
	}
}

// mergeLines collapses duplicate item names, summing quantities, and
// keeps first-seen order.
func mergeLines(lines []domain.OrderLine) []domain.OrderLine {
	idx := make(map[string]int, len(lines))
	var out []domain.OrderLine
	for _, ln := range lines {
		if i, ok := idx[ln.ItemName]; ok {
			out[i].Quantity += ln.Quantity
			continue
		}
		idx[ln.ItemName] = len(out)
		out = append(out, ln)
	}
	return out
}
