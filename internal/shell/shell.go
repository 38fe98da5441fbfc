package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"pizza-store/internal/accounts"
	"pizza-store/internal/authz"
	"pizza-store/internal/domain"
	"pizza-store/internal/menu"
	"pizza-store/internal/orders"
	"pizza-store/internal/stores"
)

// Shell drives the two-level interactive menu: an anonymous main menu
// (create user, log in) and the per-session action menu. The session
// is an explicit value handed to every handler.
type Shell struct {
	prompter
	log       zerolog.Logger
	accounts  *accounts.Service
	menu      *menu.Service
	orders    *orders.Service
	stores    stores.Repository
	loginHint string
}

func New(log zerolog.Logger, in io.Reader, out io.Writer,
	acc *accounts.Service, mn *menu.Service, ord *orders.Service, st stores.Repository,
	loginHint string) *Shell {
	return &Shell{
		prompter:  prompter{in: bufio.NewReader(in), out: out},
		log:       log,
		accounts:  acc,
		menu:      mn,
		orders:    ord,
		stores:    st,
		loginHint: loginHint,
	}
}

func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "*******************************************************")
	fmt.Fprintln(s.out, "                    Pizza Store")
	fmt.Fprintln(s.out, "*******************************************************")

	for {
		fmt.Fprintln(s.out, "\nMAIN MENU")
		fmt.Fprintln(s.out, "---------")
		fmt.Fprintln(s.out, "1. Create user")
		fmt.Fprintln(s.out, "2. Log in")
		fmt.Fprintln(s.out, "9. < EXIT")

		choice, err := s.readChoice()
		if err != nil {
			return exitErr(err)
		}
		switch choice {
		case 1:
			if err := s.handle(s.createUser(ctx)); err != nil {
				return exitErr(err)
			}
		case 2:
			sess, err := s.logIn(ctx)
			if err != nil {
				if err := s.handle(err); err != nil {
					return exitErr(err)
				}
				continue
			}
			if err := s.userLoop(ctx, sess); err != nil {
				return exitErr(err)
			}
		case 9:
			fmt.Fprintln(s.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}
	}
}

type actionHandler struct {
	action authz.Action
	fn     func(context.Context, domain.Session) error
}

func (s *Shell) userLoop(ctx context.Context, sess domain.Session) error {
	dispatch := map[int]actionHandler{
		1:  {authz.ActionViewProfile, s.viewProfile},
		2:  {authz.ActionUpdateProfile, s.updateProfile},
		3:  {authz.ActionViewMenu, s.viewMenu},
		4:  {authz.ActionPlaceOrder, s.placeOrder},
		5:  {authz.ActionViewAllOrders, s.viewAllOrders},
		6:  {authz.ActionViewRecentOrders, s.viewRecentOrders},
		7:  {authz.ActionViewOrderInfo, s.viewOrderInfo},
		8:  {authz.ActionViewStores, s.viewStores},
		9:  {authz.ActionUpdateOrderStatus, s.updateOrderStatus},
		10: {authz.ActionUpdateMenu, s.updateMenu},
		11: {authz.ActionUpdateUser, s.updateUser},
	}

	for {
		fmt.Fprintf(s.out, "\nMAIN MENU (%s, %s)\n", sess.Login, sess.Role)
		fmt.Fprintln(s.out, "---------")
		fmt.Fprintln(s.out, "1. View Profile")
		fmt.Fprintln(s.out, "2. Update Profile")
		fmt.Fprintln(s.out, "3. View Menu")
		fmt.Fprintln(s.out, "4. Place Order")
		fmt.Fprintln(s.out, "5. View Full Order History")
		fmt.Fprintln(s.out, "6. View Past 5 Orders")
		fmt.Fprintln(s.out, "7. View Order Information")
		fmt.Fprintln(s.out, "8. View Stores")
		fmt.Fprintln(s.out, "9. Update Order Status")
		fmt.Fprintln(s.out, "10. Update Menu")
		fmt.Fprintln(s.out, "11. Update User")
		fmt.Fprintln(s.out, ".........................")
		fmt.Fprintln(s.out, "20. Log out")

		choice, err := s.readChoice()
		if err != nil {
			return exitErr(err)
		}
		if choice == 20 {
			return nil
		}
		h, ok := dispatch[choice]
		if !ok {
			fmt.Fprintln(s.out, "Unrecognized choice!")
			continue
		}
		// Policy check happens before the handler runs.
		if !authz.Allowed(sess.Role, h.action) {
			fmt.Fprintln(s.out, "Access denied.")
			continue
		}
		if err := s.handle(h.fn(ctx, sess)); err != nil {
			return err
		}
	}
}

// handle prints a one-line explanation for recoverable errors and
// keeps the session alive. Anything outside the taxonomy is a store
// failure and terminates.
func (s *Shell) handle(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict):
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	case errors.Is(err, domain.ErrAccessDenied):
		fmt.Fprintln(s.out, "Access denied.")
		return nil
	case errors.Is(err, io.EOF):
		return err
	default:
		s.log.Error().Err(err).Msg("store failure")
		return err
	}
}

// exitErr turns end-of-input into a clean exit.
func exitErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
