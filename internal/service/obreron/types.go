package obreron

import (
	"github.com/Lucas-2000/obreron-admin/internal/model"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type RegisterRequest struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
}

// MessageResponse is the confirmation payload most mutations return.
type MessageResponse struct {
	Message string `json:"message"`
}

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetTokenInfo answers GET /reset-password?token=.
type ResetTokenInfo struct {
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	IsValid bool   `json:"isValid"`
}

type UpdateUserRequest struct {
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
}

type RestaurantRequest struct {
	ID          string                   `json:"id,omitempty"`
	Name        string                   `json:"name"`
	Address     string                   `json:"address"`
	Phone       string                   `json:"phone"`
	Category    model.RestaurantCategory `json:"category"`
	Description string                   `json:"description,omitempty"`
	OpeningHour int                      `json:"openingHour"`
	ClosingHour int                      `json:"closingHour"`
}

type ItemRequest struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PriceInCents    int      `json:"priceInCents"`
	Available       bool     `json:"available"`
	PreparationTime int      `json:"preparationTime"`
	Ingredients     []string `json:"ingredients"`
}

type CustomerRequest struct {
	ID          string               `json:"id,omitempty"`
	Name        string               `json:"name"`
	BirthDate   string               `json:"birthDate"`
	Phone       string               `json:"phone"`
	Address     string               `json:"address"`
	Email       string               `json:"email"`
	Gender      model.CustomerGender `json:"gender"`
	IsActive    bool                 `json:"isActive"`
	Observation string               `json:"observation"`
}

type OrderItemRequest struct {
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
	ItemID   string `json:"itemId"`
}

type OrderRequest struct {
	ID             string               `json:"id,omitempty"`
	Address        string               `json:"address"`
	PaymentType    model.PaymentType    `json:"paymentType"`
	DeliveryStatus model.DeliveryStatus `json:"deliveryStatus"`
	RestaurantID   string               `json:"restaurantId,omitempty"`
	CustomerID     string               `json:"customerId"`
	OrderItems     []OrderItemRequest   `json:"orderItems"`
}

// deleteRequest carries the id in the request body, the way the API expects
// deletes for items, customers and orders.
type deleteRequest struct {
	ID string `json:"id"`
}
