package authz

import "pizza-store/internal/domain"

type Action string

const (
	ActionViewProfile       Action = "view_profile"
	ActionUpdateProfile     Action = "update_profile"
	ActionViewMenu          Action = "view_menu"
	ActionPlaceOrder        Action = "place_order"
	ActionViewAllOrders     Action = "view_all_orders"
	ActionViewRecentOrders  Action = "view_recent_orders"
	ActionViewOrderInfo     Action = "view_order_info"
	ActionViewStores        Action = "view_stores"
	ActionUpdateOrderStatus Action = "update_order_status"
	ActionUpdateMenu        Action = "update_menu"
	ActionUpdateUser        Action = "update_user"
)

var customerActions = []Action{
	ActionViewProfile,
	ActionUpdateProfile,
	ActionViewMenu,
	ActionPlaceOrder,
	ActionViewAllOrders,
	ActionViewRecentOrders,
	ActionViewOrderInfo,
	ActionViewStores,
}

// Permitted returns the set of actions a role may invoke.
// Pure function of the role: drivers and managers extend the customer
// set with status updates, managers additionally get menu and user
// administration.
func Permitted(role domain.Role) map[Action]bool {
	set := make(map[Action]bool, len(customerActions)+3)
	for _, a := range customerActions {
		set[a] = true
	}
	switch role {
	case domain.RoleDriver:
		set[ActionUpdateOrderStatus] = true
	case domain.RoleManager:
		set[ActionUpdateOrderStatus] = true
		set[ActionUpdateMenu] = true
		set[ActionUpdateUser] = true
	}
	return set
}

func Allowed(role domain.Role, action Action) bool {
	return Permitted(role)[action]
}
