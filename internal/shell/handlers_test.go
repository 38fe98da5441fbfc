package shell

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pizza-store/internal/domain"
	"pizza-store/internal/menu"
)

// listingRepo records the listing the shell asks for and returns a
// fixed catalog.
type listingRepo struct {
	asked *menu.Listing
}

func (f *listingRepo) List(_ context.Context, l menu.Listing) ([]domain.Item, error) {
	f.asked = &l
	return []domain.Item{{
		Name:     "Pepperoni Pizza",
		Category: domain.CategoryEntree,
		Price:    decimal.RequireFromString("12.00"),
	}}, nil
}

func (f *listingRepo) GetByName(_ context.Context, name string) (domain.Item, error) {
	return domain.Item{}, fmt.Errorf("item %s: %w", name, domain.ErrNotFound)
}
func (f *listingRepo) ItemExists(_ context.Context, _ string) (bool, error) { return false, nil }
func (f *listingRepo) PriceOf(_ context.Context, name string) (decimal.Decimal, error) {
	return decimal.Zero, fmt.Errorf("item %s: %w", name, domain.ErrNotFound)
}
func (f *listingRepo) Insert(_ context.Context, _ domain.Item) error      { return nil }
func (f *listingRepo) Update(_ context.Context, _ domain.Item) error      { return nil }
func (f *listingRepo) Rename(_ context.Context, _ string, _ string) error { return nil }

func menuShell(input string, repo menu.Repository) (*Shell, *bytes.Buffer) {
	var out bytes.Buffer
	svc := menu.NewService(zerolog.Nop(), repo)
	sh := New(zerolog.Nop(), strings.NewReader(input), &out, nil, svc, nil, nil, "")
	return sh, &out
}

func TestViewMenuBadFiltersFallBackToUnfiltered(t *testing.T) {
	repo := &listingRepo{}
	// Out-of-range category, unparseable price, garbage sort choice.
	sh, out := menuShell("9\ncheap\nnope\n", repo)

	err := sh.viewMenu(context.Background(), domain.Session{Login: "alice", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("listing must not abort on bad filter input: %v", err)
	}
	if repo.asked == nil {
		t.Fatal("listing never reached the repository")
	}
	if repo.asked.Category != nil {
		t.Errorf("out-of-range category must mean no filter, got %v", *repo.asked.Category)
	}
	if repo.asked.MaxPrice != nil {
		t.Errorf("unparseable price must mean no filter, got %v", *repo.asked.MaxPrice)
	}
	if repo.asked.Sort != menu.SortNone {
		t.Errorf("garbage sort choice must mean no sort, got %v", repo.asked.Sort)
	}
	if !strings.Contains(out.String(), "Pepperoni Pizza") {
		t.Error("catalog was not rendered")
	}
}

func TestViewMenuValidFiltersApplied(t *testing.T) {
	repo := &listingRepo{}
	sh, _ := menuShell("1\n10.50\n2\n", repo)

	if err := sh.viewMenu(context.Background(), domain.Session{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.asked == nil {
		t.Fatal("listing never reached the repository")
	}
	if repo.asked.Category == nil || *repo.asked.Category != domain.CategoryEntree {
		t.Errorf("expected entree filter, got %v", repo.asked.Category)
	}
	if repo.asked.MaxPrice == nil || !repo.asked.MaxPrice.Equal(decimal.RequireFromString("10.50")) {
		t.Errorf("expected max price 10.50, got %v", repo.asked.MaxPrice)
	}
	if repo.asked.Sort != menu.SortDesc {
		t.Errorf("expected descending sort, got %v", repo.asked.Sort)
	}
}
