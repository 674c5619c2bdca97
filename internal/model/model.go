package model

// Entities as transmitted by the upstream API. Nothing here is stored
// client-side; the server is the single source of truth.

// Restaurant is the single restaurant owned by the authenticated account.
// ClosingHour may be lower than OpeningHour for overnight operation.
type Restaurant struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	Phone       string             `json:"phone"`
	Category    RestaurantCategory `json:"category"`
	Description string             `json:"description,omitempty"`
	OpeningHour int                `json:"openingHour"`
	ClosingHour int                `json:"closingHour"`
}

// Item is a menu item. PriceInCents is an integer in minor currency units;
// conversion to major units happens only at display time.
type Item struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PriceInCents    int      `json:"priceInCents"`
	Available       bool     `json:"available"`
	PreparationTime int      `json:"preparationTime"`
	Ingredients     []string `json:"ingredients"`
}

// Customer. BirthDate travels as dd/MM/yyyy text, no time component.
type Customer struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	BirthDate   string         `json:"birthDate"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	Email       string         `json:"email"`
	Gender      CustomerGender `json:"gender"`
	IsActive    bool           `json:"isActive"`
	Observation string         `json:"observation"`
}

// OrderCustomer is the customer reference embedded in an order.
type OrderCustomer struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
}

// OrderItem is one order line. Amount is server-computed, in cents.
type OrderItem struct {
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
	ItemID   string `json:"itemId"`
	Item     string `json:"item"`
	Amount   int    `json:"amount"`
}

// Order. Amount is the server-computed total in cents.
type Order struct {
	ID             string         `json:"id"`
	Address        string         `json:"address"`
	Amount         int            `json:"amount"`
	PaymentType    PaymentType    `json:"paymentType"`
	DeliveryStatus DeliveryStatus `json:"deliveryStatus"`
	UserID         string         `json:"userId"`
	RestaurantID   string         `json:"restaurantId"`
	Customer       OrderCustomer  `json:"customer"`
	OrderItems     []OrderItem    `json:"orderItems"`
}

// User is the authenticated account as returned by GET /users.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Statistic is one aggregate returned by /statistics/{routeName}/{restaurantId}.
// Count routes fill Count, revenue routes fill AmountInCents.
type Statistic struct {
	Count         int `json:"count"`
	AmountInCents int `json:"amountInCents"`
}
