package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pizza-store/internal/domain"
)

type SortDir int

const (
	SortNone SortDir = iota
	SortAsc
	SortDesc
)

// Listing describes a filtered, optionally sorted menu view. Absent
// filters match everything; filters compose with AND.
type Listing struct {
	Category *domain.Category
	MaxPrice *decimal.Decimal
	Sort     SortDir
}

// BuildSQL renders the listing as a parameterized SELECT.
func (l Listing) BuildSQL() (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT item_name, ingredients, category, price, description FROM items`)

	var args []any
	var conds []string
	if l.Category != nil {
		args = append(args, string(*l.Category))
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if l.MaxPrice != nil {
		args = append(args, *l.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	switch l.Sort {
	case SortAsc:
		b.WriteString(" ORDER BY price ASC")
	case SortDesc:
		b.WriteString(" ORDER BY price DESC")
	}
	return b.String(), args
}
