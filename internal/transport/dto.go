package transport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ID is a record id that clients send either as a JSON number or as a
// numeric string.
type ID uint

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("id %q is not a positive integer", s)
	}
	*id = ID(n)
	return nil
}

// Value returns 0 when the id was omitted.
func (id *ID) Value() uint {
	if id == nil {
		return 0
	}
	return uint(*id)
}

type MenuItemRequest struct {
	ID              *ID              `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	CategoryID      *ID              `json:"category_id"`
	PreparationTime *int             `json:"preparation_time"`
	IsAvailable     *bool            `json:"is_available"`
}

type CategoryRequest struct {
	ID          *ID    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type UserUpdateRequest struct {
	ID       *ID    `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type StaffRequest struct {
	ID       *ID    `json:"id"`
	StaffID  string `json:"staff_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Password string `json:"password"`
	IsActive *bool  `json:"is_active"`
}

type CustomerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`

	User   any    `json:"user,omitempty"`
	Admin  any    `json:"admin,omitempty"`
	Token  string `json:"token,omitempty"`
	Total  *int64 `json:"total,omitempty"`
	Period string `json:"period,omitempty"`
	Count  *int   `json:"count,omitempty"`
}
