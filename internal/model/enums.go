package model

// Closed vocabularies shared by forms, filters and the upstream API.
// Values are transmitted verbatim, so they stay in Portuguese.

type CustomerGender string

const (
	GenderMale   CustomerGender = "M"
	GenderFemale CustomerGender = "F"
)

var CustomerGenders = []CustomerGender{GenderMale, GenderFemale}

func (g CustomerGender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "Pendente"
	StatusPreparing DeliveryStatus = "Preparando"
	StatusShipped   DeliveryStatus = "Enviado"
	StatusDelivered DeliveryStatus = "Entregue"
)

// DeliveryStatuses is ordered as the usual progression; the update flow does
// not enforce forward-only transitions.
var DeliveryStatuses = []DeliveryStatus{
	StatusPending,
	StatusPreparing,
	StatusShipped,
	StatusDelivered,
}

func (s DeliveryStatus) Valid() bool {
	for _, v := range DeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the order is done from a delivery standpoint.
// The "Ativos" list filter excludes terminal orders.
func (s DeliveryStatus) Terminal() bool {
	return s == StatusDelivered
}

type PaymentType string

const (
	PaymentCredit PaymentType = "Cartão de crédito"
	PaymentDebit  PaymentType = "Cartão de débito"
	PaymentPix    PaymentType = "Pix"
	PaymentCash   PaymentType = "Dinheiro"
)

var PaymentTypes = []PaymentType{PaymentCredit, PaymentDebit, PaymentPix, PaymentCash}

func (p PaymentType) Valid() bool {
	for _, v := range PaymentTypes {
		if p == v {
			return true
		}
	}
	return false
}

type RestaurantCategory string

var RestaurantCategories = []RestaurantCategory{
	"Japonês",
	"Francês",
	"Italiano",
	"Chinês",
	"Brasileiro",
	"Fast Food",
	"Indiano",
	"Mexicano",
	"Tailandês",
	"Americano",
	"Mediterrâneo",
	"Vegetariano",
	"Vegano",
	"Frutos do Mar",
	"Churrascaria",
	"Pizza",
	"Sobremesas",
	"Cafeteria",
	"Bar",
	"Pub",
	"Food Truck",
	"Outra Categoria",
}

func (c RestaurantCategory) Valid() bool {
	for _, v := range RestaurantCategories {
		if c == v {
			return true
		}
	}
	return false
}
