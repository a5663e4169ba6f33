package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const DefaultPreparationTime = 15

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	FullName     string    `gorm:"not null"                 json:"full_name"`
	Phone        string    `                                json:"phone"`
	CreatedAt    time.Time `gorm:"index"                    json:"created_at"`
	UpdatedAt    time.Time `                                json:"updated_at"`
}

type Admin struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	FullName     string    `gorm:"not null"                 json:"full_name"`
	CreatedAt    time.Time `                                json:"created_at"`
}

type Staff struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID      string    `gorm:"uniqueIndex;not null"     json:"staff_id"`
	FullName     string    `gorm:"not null"                 json:"full_name"`
	Role         string    `gorm:"not null"                 json:"role"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	IsActive     bool      `gorm:"not null"                 json:"is_active"`
	CreatedAt    time.Time `                                json:"created_at"`
}

func (Staff) TableName() string { return "staff" }

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `                                json:"description"`
	IsActive    bool      `gorm:"not null"                 json:"is_active"`
	CreatedAt   time.Time `                                json:"created_at"`
}

type MenuItem struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name            string    `gorm:"not null"                  json:"name"`
	Description     string    `                                 json:"description"`
	Price           Money     `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID      uint      `gorm:"index;not null"            json:"category_id"`
	PreparationTime int       `gorm:"not null"                  json:"preparation_time"`
	IsAvailable     bool      `gorm:"not null"                  json:"is_available"`
	CreatedAt       time.Time `                                 json:"created_at"`
	UpdatedAt       time.Time `                                 json:"updated_at"`
}

type Order struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"    json:"id"`
	UserID      uint      `gorm:"index;not null"              json:"user_id"`
	Status      string    `gorm:"index;not null"              json:"status"`
	TotalAmount Money     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt   time.Time `gorm:"index"                       json:"created_at"`
}

type OrderItem struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint `gorm:"index;not null"           json:"order_id"`
	MenuItemID uint `gorm:"index;not null"           json:"menu_item_id"`
	Quantity   int  `gorm:"not null"                 json:"quantity"`
}

type OrderStatusHistory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint      `gorm:"index;not null"           json:"order_id"`
	Status    string    `gorm:"not null"                 json:"status"`
	Notes     string    `                                json:"notes"`
	CreatedAt time.Time `                                json:"created_at"`
}

func (OrderStatusHistory) TableName() string { return "order_status_history" }

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&User{}, &Admin{}, &Staff{}, &Category{}, &MenuItem{},
		&Order{}, &OrderItem{}, &OrderStatusHistory{},
	}
}
