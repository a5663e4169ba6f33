package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItemRow struct {
	MenuItem
	CategoryName string `json:"category_name"`
	TimesOrdered int64  `json:"times_ordered"`
}

// SearchableMenuItem is what the search index stores: the item plus whether
// its category is currently shown.
type SearchableMenuItem struct {
	MenuItem
	CategoryActive bool `json:"category_active"`
}

type CategoryRow struct {
	Category
	ItemCount      int64 `json:"item_count"`
	AvailableItems int64 `json:"available_items"`
}

type UserRow struct {
	User
	OrderCount int64 `json:"order_count"`
	TotalSpent Money `json:"total_spent"`
}

type StaffRow struct {
	Staff
	ActionsCount int64 `json:"actions_count"`
}

type MenuCategory struct {
	Category
	ItemCount int64         `json:"item_count"`
	Items     []MenuItemRow `json:"items" gorm:"-"`
}

type PopularItem struct {
	Name          string `json:"name"`
	OrderCount    int64  `json:"order_count"`
	TotalQuantity int64  `json:"total_quantity"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardStats struct {
	TotalOrders  int64         `json:"total_orders"`
	TodayOrders  int64         `json:"today_orders"`
	TotalRevenue float64       `json:"total_revenue"`
	TodayRevenue float64       `json:"today_revenue"`
	TotalUsers   int64         `json:"total_users"`
	ActiveStaff  int64         `json:"active_staff"`
	PopularItems []PopularItem `json:"popular_items"`
	OrderStatus  []StatusCount `json:"order_status"`
}

// OrderFact is the slice of an order that period reports aggregate over.
type OrderFact struct {
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}
