package shell

import (
	"fmt"
	"io"
	"strings"

	"pizza-store/internal/domain"
	"pizza-store/internal/orders"
)

// renderTable prints an aligned ASCII table with a header row.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	sep := "+"
	for _, wd := range widths {
		sep += strings.Repeat("-", wd+2) + "+"
	}

	printRow := func(cells []string) {
		fmt.Fprint(w, "|")
		for i, wd := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(w, " %-*s |", wd, cell)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, sep)
	printRow(headers)
	fmt.Fprintln(w, sep)
	for _, row := range rows {
		printRow(row)
	}
	fmt.Fprintln(w, sep)
}

func renderItems(w io.Writer, items []domain.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items found.")
		return
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Name, string(it.Category), it.Price.StringFixed(2), it.Ingredients, it.Description,
		})
	}
	renderTable(w, []string{"Item", "Category", "Price", "Ingredients", "Description"}, rows)
}

func renderStores(w io.Writer, sts []domain.Store) {
	if len(sts) == 0 {
		fmt.Fprintln(w, "No stores found.")
		return
	}
	rows := make([][]string, 0, len(sts))
	for _, st := range sts {
		open := "no"
		if st.IsOpen {
			open = "yes"
		}
		rows = append(rows, []string{
			fmt.Sprint(st.ID), st.Address, st.City, st.State, open, st.ReviewScore.StringFixed(1),
		})
	}
	renderTable(w, []string{"ID", "Address", "City", "State", "Open", "Review"}, rows)
}

func renderOrderGroups(w io.Writer, groups []orders.OrderGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No orders found.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "Order #%d  %s  total %s  [%s]\n",
			g.OrderID, g.Timestamp.Format("2006-01-02 15:04"), g.Total.StringFixed(2), g.Status)
		for _, ln := range g.Lines {
			fmt.Fprintf(w, "    %dx %s\n", ln.Quantity, ln.ItemName)
		}
	}
}

func renderOrder(w io.Writer, o domain.Order) {
	fmt.Fprintf(w, "Order #%d placed by %s at store %d\n", o.ID, o.Login, o.StoreID)
	fmt.Fprintf(w, "Placed:  %s\n", o.Timestamp.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Status:  %s\n", o.Status)
	fmt.Fprintf(w, "Total:   %s\n", o.Total.StringFixed(2))
	for _, ln := range o.Lines {
		fmt.Fprintf(w, "    %dx %s\n", ln.Quantity, ln.ItemName)
	}
}

func renderProfile(w io.Writer, a domain.Account) {
	fav := ""
	if a.FavoriteItem != nil {
		fav = *a.FavoriteItem
	}
	renderTable(w, []string{"Field", "Value"}, [][]string{
		{"Login", a.Login},
		{"Favorite Item", fav},
		{"Phone Number", a.PhoneNum},
		{"Role", string(a.Role)},
	})
}
