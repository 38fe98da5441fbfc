package shell

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"pizza-store/internal/domain"
	"pizza-store/internal/menu"
	"pizza-store/internal/orders"
)

func (s *Shell) createUser(ctx context.Context) error {
	login, err := s.readLine("Enter login: ")
	if err != nil {
		return err
	}
	password, err := s.readLine("Enter password: ")
	if err != nil {
		return err
	}
	phone, err := s.readLine("Enter phone number (XXX-XXX-XXXX): ")
	if err != nil {
		return err
	}
	if err := s.accounts.Register(ctx, login, password, phone); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "User created successfully!")
	return nil
}

func (s *Shell) logIn(ctx context.Context) (domain.Session, error) {
	prompt := "Enter login: "
	if s.loginHint != "" {
		prompt = fmt.Sprintf("Enter login [%s]: ", s.loginHint)
	}
	login, err := s.readLine(prompt)
	if err != nil {
		return domain.Session{}, err
	}
	if login == "" {
		login = s.loginHint
	}
	password, err := s.readLine("Enter password: ")
	if err != nil {
		return domain.Session{}, err
	}
	a, err := s.accounts.Login(ctx, login, password)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{Login: a.Login, Role: a.Role}, nil
}

func (s *Shell) viewProfile(ctx context.Context, sess domain.Session) error {
	a, err := s.accounts.Profile(ctx, sess.Login)
	if err != nil {
		return err
	}
	renderProfile(s.out, a)
	return nil
}

func (s *Shell) updateProfile(ctx context.Context, sess domain.Session) error {
	for {
		fmt.Fprintln(s.out, "\nUPDATE PROFILE")
		fmt.Fprintln(s.out, "--------------")
		fmt.Fprintln(s.out, "1. Change password")
		fmt.Fprintln(s.out, "2. Change phone number")
		fmt.Fprintln(s.out, "3. Change favorite item")
		fmt.Fprintln(s.out, "9. < EXIT")

		choice, err := s.readChoice()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			pass, err := s.readLine("New password: ")
			if err != nil {
				return err
			}
			if err := s.handle(s.accounts.ChangePassword(ctx, sess, pass)); err != nil {
				return err
			}
		case 2:
			phone, err := s.readLine("New phone number (XXX-XXX-XXXX): ")
			if err != nil {
				return err
			}
			if err := s.handle(s.accounts.ChangePhone(ctx, sess, phone)); err != nil {
				return err
			}
		case 3:
			item, err := s.readLine("New favorite item: ")
			if err != nil {
				return err
			}
			if err := s.handle(s.accounts.ChangeFavoriteItem(ctx, sess, item)); err != nil {
				return err
			}
		case 9:
			return nil
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}
	}
}

// viewMenu prompts for optional filters. Anything unparseable or out
// of range simply means "no filter" for that dimension.
func (s *Shell) viewMenu(ctx context.Context, _ domain.Session) error {
	var l menu.Listing

	fmt.Fprintln(s.out, "Filter by category? (1. entree 2. sides 3. drinks, anything else for all)")
	if n, err := s.readInt("Category: "); err == nil {
		if cat, ok := domain.CategoryFromChoice(n); ok {
			l.Category = &cat
		}
	}

	line, err := s.readLine("Max price (blank for none): ")
	if err != nil {
		return err
	}
	if line != "" {
		if p, perr := decimal.NewFromString(line); perr == nil {
			l.MaxPrice = &p
		} else {
			fmt.Fprintln(s.out, "Ignoring unparseable price.")
		}
	}

	if n, err := s.readInt("Sort by price? (1. ascending 2. descending, anything else for none): "); err == nil {
		switch n {
		case 1:
			l.Sort = menu.SortAsc
		case 2:
			l.Sort = menu.SortDesc
		}
	}

	items, err := s.menu.Browse(ctx, l)
	if err != nil {
		return err
	}
	renderItems(s.out, items)
	return nil
}

func (s *Shell) placeOrder(ctx context.Context, sess domain.Session) error {
	storeID, err := s.readInt("Store ID: ")
	if err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}

	var lines []domain.OrderLine
	fmt.Fprintln(s.out, "Add items to the order; blank item name finishes.")
	for {
		name, err := s.readLine("Item name: ")
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		qty, err := s.readInt("Quantity: ")
		if err != nil {
			return fmt.Errorf("%v: %w", err, domain.ErrValidation)
		}
		lines = append(lines, domain.OrderLine{ItemName: name, Quantity: qty})
	}

	o, err := s.orders.Place(ctx, sess, storeID, lines)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Order placed!")
	renderOrder(s.out, o)
	return nil
}

func (s *Shell) viewAllOrders(ctx context.Context, sess domain.Session) error {
	return s.viewHistory(ctx, sess, 0)
}

func (s *Shell) viewRecentOrders(ctx context.Context, sess domain.Session) error {
	return s.viewHistory(ctx, sess, orders.RecentLimit)
}

func (s *Shell) viewHistory(ctx context.Context, sess domain.Session, limit int) error {
	target := ""
	if sess.Role != domain.RoleCustomer {
		var err error
		target, err = s.readLine("Login to inspect (blank for your own): ")
		if err != nil {
			return err
		}
	}
	groups, err := s.orders.History(ctx, sess, target, limit)
	if err != nil {
		return err
	}
	renderOrderGroups(s.out, groups)
	return nil
}

func (s *Shell) viewOrderInfo(ctx context.Context, sess domain.Session) error {
	id, err := s.readInt("Order ID: ")
	if err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}
	o, err := s.orders.Info(ctx, sess, int64(id))
	if err != nil {
		return err
	}
	renderOrder(s.out, o)
	return nil
}

func (s *Shell) viewStores(ctx context.Context, _ domain.Session) error {
	sts, err := s.stores.ListAll(ctx)
	if err != nil {
		return err
	}
	renderStores(s.out, sts)
	return nil
}

func (s *Shell) updateOrderStatus(ctx context.Context, sess domain.Session) error {
	id, err := s.readInt("Order ID: ")
	if err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}
	fmt.Fprintln(s.out, "New status: 1. incomplete 2. complete")
	n, err := s.readChoice()
	if err != nil {
		return err
	}
	status, ok := domain.StatusFromChoice(n)
	if !ok {
		return fmt.Errorf("invalid status choice: %w", domain.ErrValidation)
	}
	if err := s.orders.UpdateStatus(ctx, sess, int64(id), status); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Order status updated.")
	return nil
}

func (s *Shell) updateMenu(ctx context.Context, sess domain.Session) error {
	for {
		fmt.Fprintln(s.out, "\nUPDATE MENU")
		fmt.Fprintln(s.out, "-----------")
		fmt.Fprintln(s.out, "1. Add item")
		fmt.Fprintln(s.out, "2. Edit item")
		fmt.Fprintln(s.out, "3. Rename item")
		fmt.Fprintln(s.out, "9. < EXIT")

		choice, err := s.readChoice()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			it, err := s.promptItem(domain.Item{})
			if err != nil {
				return err
			}
			if err := s.handle(s.menu.AddItem(ctx, sess, it)); err != nil {
				return err
			}
		case 2:
			name, err := s.readLine("Item to edit: ")
			if err != nil {
				return err
			}
			cur, err := s.menu.Get(ctx, name)
			if err != nil {
				if err := s.handle(err); err != nil {
					return err
				}
				continue
			}
			it, err := s.promptItem(cur)
			if err != nil {
				return err
			}
			if err := s.handle(s.menu.UpdateItem(ctx, sess, it)); err != nil {
				return err
			}
		case 3:
			oldName, err := s.readLine("Item to rename: ")
			if err != nil {
				return err
			}
			newName, err := s.readLine("New name: ")
			if err != nil {
				return err
			}
			if err := s.handle(s.menu.RenameItem(ctx, sess, oldName, newName)); err != nil {
				return err
			}
		case 9:
			return nil
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}
	}
}

// promptItem collects item fields; cur supplies the name for edits and
// defaults shown are not sticky, every field is re-entered.
func (s *Shell) promptItem(cur domain.Item) (domain.Item, error) {
	it := cur
	if it.Name == "" {
		name, err := s.readLine("Item name: ")
		if err != nil {
			return domain.Item{}, err
		}
		it.Name = name
	}
	fmt.Fprintln(s.out, "Category: 1. entree 2. sides 3. drinks")
	n, err := s.readChoice()
	if err != nil {
		return domain.Item{}, err
	}
	cat, ok := domain.CategoryFromChoice(n)
	if !ok {
		return domain.Item{}, fmt.Errorf("invalid category choice: %w", domain.ErrValidation)
	}
	it.Category = cat

	priceStr, err := s.readLine("Price: ")
	if err != nil {
		return domain.Item{}, err
	}
	price, perr := decimal.NewFromString(priceStr)
	if perr != nil {
		return domain.Item{}, fmt.Errorf("invalid price %q: %w", priceStr, domain.ErrValidation)
	}
	it.Price = price

	if it.Ingredients, err = s.readLine("Ingredients: "); err != nil {
		return domain.Item{}, err
	}
	if it.Description, err = s.readLine("Description: "); err != nil {
		return domain.Item{}, err
	}
	return it, nil
}

func (s *Shell) updateUser(ctx context.Context, sess domain.Session) error {
	target, err := s.readLine("Login of the user to update: ")
	if err != nil {
		return err
	}
	if _, err := s.accounts.Profile(ctx, target); err != nil {
		return err
	}

	for {
		fmt.Fprintf(s.out, "\nUPDATE USER: %s\n", target)
		fmt.Fprintln(s.out, "-----------")
		fmt.Fprintln(s.out, "1. Update user's login")
		fmt.Fprintln(s.out, "2. Update user's role")
		fmt.Fprintln(s.out, "9. < EXIT")

		choice, err := s.readChoice()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			newLogin, err := s.readLine("New user login: ")
			if err != nil {
				return err
			}
			err = s.accounts.RenameUser(ctx, sess, target, newLogin)
			if err == nil {
				target = newLogin
				fmt.Fprintln(s.out, "User login updated successfully.")
			}
			if err := s.handle(err); err != nil {
				return err
			}
		case 2:
			fmt.Fprintln(s.out, "Select new role: 1. Customer 2. Manager 3. Driver")
			n, err := s.readChoice()
			if err != nil {
				return err
			}
			role, ok := domain.RoleFromChoice(n)
			if !ok {
				fmt.Fprintln(s.out, "Invalid choice. Please select a valid role.")
				continue
			}
			err = s.accounts.ChangeRole(ctx, sess, target, role)
			if err == nil {
				fmt.Fprintln(s.out, "User role updated successfully.")
			}
			if err := s.handle(err); err != nil {
				return err
			}
		case 9:
			return nil
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}
	}
}
