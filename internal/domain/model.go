package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleDriver   Role = "driver"
)

// RoleFromChoice maps a numeric menu selection to a role.
// The boundary validates once; everything past it works with the enum.
func RoleFromChoice(n int) (Role, bool) {
	switch n {
	case 1:
		return RoleCustomer, true
	case 2:
		return RoleManager, true
	case 3:
		return RoleDriver, true
	}
	return "", false
}

type Category string

const (
	CategoryEntree Category = "entree"
	CategorySides  Category = "sides"
	CategoryDrinks Category = "drinks"
)

func CategoryFromChoice(n int) (Category, bool) {
	switch n {
	case 1:
		return CategoryEntree, true
	case 2:
		return CategorySides, true
	case 3:
		return CategoryDrinks, true
	}
	return "", false
}

type OrderStatus string

const (
	StatusIncomplete OrderStatus = "incomplete"
	StatusComplete   OrderStatus = "complete"
)

func StatusFromChoice(n int) (OrderStatus, bool) {
	switch n {
	case 1:
		return StatusIncomplete, true
	case 2:
		return StatusComplete, true
	}
	return "", false
}

type Account struct {
	Login        string
	PasswordHash string
	Role         Role
	FavoriteItem *string
	PhoneNum     string
}

type Item struct {
	Name        string
	Ingredients string
	Category    Category
	Price       decimal.Decimal
	Description string
}

type Store struct {
	ID          int
	Address     string
	City        string
	State       string
	IsOpen      bool
	ReviewScore decimal.Decimal
}

type Order struct {
	ID        int64
	Login     string
	StoreID   int
	Total     decimal.Decimal
	Timestamp time.Time
	Status    OrderStatus
	Lines     []OrderLine
}

type OrderLine struct {
	ItemName string
	Quantity int
}
