package orders

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pizza-store/internal/domain"
	"pizza-store/internal/mq"
)

type fakeRepo struct {
	inserted   *domain.Order
	nextID     int64
	rows       []OrderRow
	askedLogin string
	askedLimit int
	stored     domain.Order
	statusSet  domain.OrderStatus
}

func (f *fakeRepo) Insert(_ context.Context, o domain.Order) (int64, error) {
	f.inserted = &o
	return f.nextID, nil
}

func (f *fakeRepo) HistoryRows(_ context.Context, login string, limit int) ([]OrderRow, error) {
	f.askedLogin, f.askedLimit = login, limit
	return f.rows, nil
}

func (f *fakeRepo) Get(_ context.Context, orderID int64) (domain.Order, error) {
	if f.stored.ID != orderID {
		return domain.Order{}, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return f.stored, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.OrderStatus) error {
	f.statusSet = status
	return nil
}

type fakePrices map[string]string

func (f fakePrices) PriceOf(_ context.Context, name string) (decimal.Decimal, error) {
	p, ok := f[name]
	if !ok {
		return decimal.Zero, fmt.Errorf("item %s: %w", name, domain.ErrNotFound)
	}
	return decimal.RequireFromString(p), nil
}

type fakeStores map[int]bool

func (f fakeStores) Exists(_ context.Context, id int) (bool, error) { return f[id], nil }

func newTestService(repo *fakeRepo) *Service {
	prices := fakePrices{"Pepperoni Pizza": "12.00", "Soda": "2.00"}
	return NewService(zerolog.Nop(), repo, prices, fakeStores{1: true}, mq.Noop{})
}

func customer() domain.Session { return domain.Session{Login: "alice", Role: domain.RoleCustomer} }

func TestPlaceComputesTotal(t *testing.T) {
	repo := &fakeRepo{nextID: 42}
	svc := newTestService(repo)

	o, err := svc.Place(context.Background(), customer(), 1, []domain.OrderLine{
		{ItemName: "Pepperoni Pizza", Quantity: 2},
		{ItemName: "Soda", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.Total.Equal(decimal.RequireFromString("26.00")) {
		t.Errorf("expected total 26.00, got %s", o.Total)
	}
	if o.ID != 42 {
		t.Errorf("expected id 42, got %d", o.ID)
	}
	if len(o.Lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(o.Lines))
	}
	if o.Status != domain.StatusIncomplete {
		t.Errorf("new order should be incomplete, got %s", o.Status)
	}
	if repo.inserted == nil {
		t.Fatal("order was not persisted")
	}
}

func TestPlaceEmptyLinesRejected(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Place(context.Background(), customer(), 1, nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.inserted != nil {
		t.Error("no order must be created for an empty line list")
	}
}

func TestPlaceNonPositiveQuantityRejected(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Place(context.Background(), customer(), 1, []domain.OrderLine{
		{ItemName: "Soda", Quantity: 0},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.inserted != nil {
		t.Error("no order must be created for a zero quantity")
	}
}

func TestPlaceUnknownStoreRejected(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Place(context.Background(), customer(), 99, []domain.OrderLine{
		{ItemName: "Soda", Quantity: 1},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestPlaceUnknownItemRejected(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Place(context.Background(), customer(), 1, []domain.OrderLine{
		{ItemName: "Calzone", Quantity: 1},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if repo.inserted != nil {
		t.Error("no order must be created when an item does not exist")
	}
}

func TestPlaceMergesDuplicateLines(t *testing.T) {
	repo := &fakeRepo{nextID: 7}
	svc := newTestService(repo)

	o, err := svc.Place(context.Background(), customer(), 1, []domain.OrderLine{
		{ItemName: "Soda", Quantity: 1},
		{ItemName: "Pepperoni Pizza", Quantity: 1},
		{ItemName: "Soda", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.Lines) != 2 {
		t.Fatalf("expected duplicates merged into 2 lines, got %d", len(o.Lines))
	}
	if o.Lines[0].ItemName != "Soda" || o.Lines[0].Quantity != 3 {
		t.Errorf("expected Soda x3 first, got %+v", o.Lines[0])
	}
	if !o.Total.Equal(decimal.RequireFromString("18.00")) {
		t.Errorf("expected total 18.00, got %s", o.Total)
	}
}

func TestHistoryCustomerDeniedOnOthers(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	_, err := svc.History(context.Background(), customer(), "bob", 0)
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestHistoryDefaultsToOwnLogin(t *testing.T) {
	repo := &fakeRepo{rows: []OrderRow{row(1, "Soda", 1)}}
	svc := newTestService(repo)

	groups, err := svc.History(context.Background(), customer(), "", RecentLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.askedLogin != "alice" {
		t.Errorf("expected history for alice, asked for %q", repo.askedLogin)
	}
	if repo.askedLimit != RecentLimit {
		t.Errorf("expected limit %d, got %d", RecentLimit, repo.askedLimit)
	}
	if len(groups) != 1 {
		t.Errorf("expected 1 group, got %d", len(groups))
	}
}

func TestInfoEnforcesOwnership(t *testing.T) {
	repo := &fakeRepo{stored: domain.Order{ID: 9, Login: "bob"}}
	svc := newTestService(repo)

	if _, err := svc.Info(context.Background(), customer(), 9); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}

	driver := domain.Session{Login: "dave", Role: domain.RoleDriver}
	if _, err := svc.Info(context.Background(), driver, 9); err != nil {
		t.Fatalf("driver should see any order, got %v", err)
	}
}

func TestUpdateStatusRoleGate(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), customer(), 1, domain.StatusComplete)
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("customer must not update status, got %v", err)
	}
	if repo.statusSet != "" {
		t.Error("status must not change on a denied update")
	}

	driver := domain.Session{Login: "dave", Role: domain.RoleDriver}
	if err := svc.UpdateStatus(context.Background(), driver, 1, domain.StatusComplete); err != nil {
		t.Fatalf("driver update failed: %v", err)
	}
	if repo.statusSet != domain.StatusComplete {
		t.Errorf("expected status complete, got %q", repo.statusSet)
	}
}
