package menu

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"pizza-store/internal/domain"
)

func TestBuildSQLNoFilters(t *testing.T) {
	sql, args := Listing{}.BuildSQL()
	if strings.Contains(sql, "WHERE") || strings.Contains(sql, "ORDER BY") {
		t.Errorf("unexpected clauses in %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildSQLCategoryOnly(t *testing.T) {
	cat := domain.CategoryDrinks
	sql, args := Listing{Category: &cat}.BuildSQL()
	if !strings.Contains(sql, "category = $1") {
		t.Errorf("missing category filter in %q", sql)
	}
	if len(args) != 1 || args[0] != "drinks" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestBuildSQLMaxPriceOnly(t *testing.T) {
	p := decimal.RequireFromString("9.99")
	sql, args := Listing{MaxPrice: &p}.BuildSQL()
	if !strings.Contains(sql, "price <= $1") {
		t.Errorf("missing price filter in %q", sql)
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %v", args)
	}
}

func TestBuildSQLFiltersCompose(t *testing.T) {
	cat := domain.CategoryEntree
	p := decimal.RequireFromString("15")
	sql, args := Listing{Category: &cat, MaxPrice: &p, Sort: SortAsc}.BuildSQL()

	if !strings.Contains(sql, "category = $1 AND price <= $2") {
		t.Errorf("filters did not compose: %q", sql)
	}
	if !strings.HasSuffix(sql, "ORDER BY price ASC") {
		t.Errorf("missing ascending sort: %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %v", args)
	}
}

func TestBuildSQLSortDescending(t *testing.T) {
	sql, _ := Listing{Sort: SortDesc}.BuildSQL()
	if !strings.HasSuffix(sql, "ORDER BY price DESC") {
		t.Errorf("missing descending sort: %q", sql)
	}
}
