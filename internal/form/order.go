package form

import (
	"fmt"
	"strconv"

	"github.com/Lucas-2000/obreron-admin/internal/model"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
	"github.com/Lucas-2000/obreron-admin/internal/validate"
)

// OrderItemRow is one dynamically added line of the order form. Rows are
// validated independently: the item must be selected and the quantity must
// be a positive integer.
type OrderItemRow struct {
	ItemID   string `json:"itemId"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes"`
}

type OrderForm struct {
	Address     string         `json:"address"`
	PaymentType string         `json:"paymentType"`
	CustomerID  string         `json:"customerId"`
	Items       []OrderItemRow `json:"orderItems"`
}

func NewOrderForm() OrderForm {
	return OrderForm{}
}

func paymentTypes() []string {
	out := make([]string, len(model.PaymentTypes))
	for i, p := range model.PaymentTypes {
		out[i] = string(p)
	}
	return out
}

func deliveryStatuses() []string {
	out := make([]string, len(model.DeliveryStatuses))
	for i, s := range model.DeliveryStatuses {
		out[i] = string(s)
	}
	return out
}

func (f OrderForm) Validate() validate.Errors {
	errs := validate.Errors{}
	errs.Field("address", f.Address,
		validate.MinLen(1, "Endereço"), validate.MaxLen(255, "Endereço"))
	errs.Field("paymentType", f.PaymentType,
		validate.OneOf(paymentTypes(), "Selecione um tipo de pagamento."))
	errs.Field("customerId", f.CustomerID,
		validate.MinLen(1, "Cliente"), validate.MaxLen(255, "Cliente"))
	for i, row := range f.Items {
		errs.Field(fmt.Sprintf("orderItems.%d.itemId", i), row.ItemID,
			validate.MinLen(1, "Item"), validate.MaxLen(255, "Item"))
		errs.Field(fmt.Sprintf("orderItems.%d.quantity", i), row.Quantity,
			validate.PositiveInt("Quantidade precisa ser um número inteiro positivo."))
	}
	return errs
}

// Request shapes the order for creation. The restaurant id comes from the
// restaurant binding at submit time; new orders start Pendente.
func (f OrderForm) Request(restaurantID string) (obreron.OrderRequest, error) {
	items := make([]obreron.OrderItemRequest, 0, len(f.Items))
	for _, row := range f.Items {
		qty, err := strconv.Atoi(row.Quantity)
		if err != nil {
			return obreron.OrderRequest{}, fmt.Errorf("invalid quantity %q", row.Quantity)
		}
		items = append(items, obreron.OrderItemRequest{
			Quantity: qty,
			Notes:    row.Notes,
			ItemID:   row.ItemID,
		})
	}

	return obreron.OrderRequest{
		Address:        f.Address,
		PaymentType:    model.PaymentType(f.PaymentType),
		DeliveryStatus: model.StatusPending,
		RestaurantID:   restaurantID,
		CustomerID:     f.CustomerID,
		OrderItems:     items,
	}, nil
}

// OrderStatusForm updates just the delivery status; the rest of the order is
// carried over unchanged. Any status can be set from any other, the usual
// progression is not enforced here.
type OrderStatusForm struct {
	Order          model.Order `json:"-"`
	DeliveryStatus string      `json:"deliveryStatus"`
}

func EditOrderStatusForm(o model.Order) OrderStatusForm {
	return OrderStatusForm{Order: o, DeliveryStatus: string(o.DeliveryStatus)}
}

func (f OrderStatusForm) Validate() validate.Errors {
	errs := validate.Errors{}
	errs.Field("deliveryStatus", f.DeliveryStatus,
		validate.OneOf(deliveryStatuses(), "Selecione pelo menos um status."))
	return errs
}

func (f OrderStatusForm) Request() obreron.OrderRequest {
	items := make([]obreron.OrderItemRequest, 0, len(f.Order.OrderItems))
	for _, line := range f.Order.OrderItems {
		items = append(items, obreron.OrderItemRequest{
			Quantity: line.Quantity,
			Notes:    line.Notes,
			ItemID:   line.ItemID,
		})
	}

	return obreron.OrderRequest{
		ID:             f.Order.ID,
		Address:        f.Order.Address,
		PaymentType:    f.Order.PaymentType,
		DeliveryStatus: model.DeliveryStatus(f.DeliveryStatus),
		CustomerID:     f.Order.Customer.CustomerID,
		OrderItems:     items,
	}
}
