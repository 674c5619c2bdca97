package form

import (
	"fmt"
	"strconv"

	"github.com/Lucas-2000/obreron-admin/internal/model"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
	"github.com/Lucas-2000/obreron-admin/internal/validate"
)

type RestaurantForm struct {
	Mode Mode   `json:"-"`
	ID   string `json:"-"`

	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	Description string `json:"description"`
	OpeningHour string `json:"openingHour"`
	ClosingHour string `json:"closingHour"`
}

func NewRestaurantForm() RestaurantForm {
	return RestaurantForm{Mode: ModeCreate}
}

// EditRestaurantForm rebuilds the field values from the existing restaurant.
func EditRestaurantForm(r model.Restaurant) RestaurantForm {
	return RestaurantForm{
		Mode:        ModeEdit,
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Category:    string(r.Category),
		Description: r.Description,
		OpeningHour: strconv.Itoa(r.OpeningHour),
		ClosingHour: strconv.Itoa(r.ClosingHour),
	}
}

func restaurantCategories() []string {
	out := make([]string, len(model.RestaurantCategories))
	for i, c := range model.RestaurantCategories {
		out[i] = string(c)
	}
	return out
}

func (f RestaurantForm) Validate() validate.Errors {
	errs := validate.Errors{}
	errs.Field("name", f.Name,
		validate.MinLen(1, "Nome"), validate.MaxLen(255, "Nome"))
	errs.Field("address", f.Address,
		validate.MinLen(1, "Endereço"), validate.MaxLen(255, "Endereço"))
	errs.Field("phone", f.Phone,
		validate.ExactLen(11, "Telefone"))
	if f.Description != "" {
		errs.Field("description", f.Description, validate.MaxLen(255, "Descrição"))
	}
	errs.Field("category", f.Category,
		validate.OneOf(restaurantCategories(), "Selecione pelo menos uma categoria."))
	errs.Field("openingHour", f.OpeningHour,
		validate.Hour("Horário de abertura"))
	errs.Field("closingHour", f.ClosingHour,
		validate.Hour("Horário de fechamento"))
	return errs
}

// Request shapes the validated values for the wire. Call only after
// Validate passed; the hour fields must already match the 0-23 pattern.
func (f RestaurantForm) Request() (obreron.RestaurantRequest, error) {
	opening, err := strconv.Atoi(f.OpeningHour)
	if err != nil {
		return obreron.RestaurantRequest{}, fmt.Errorf("invalid opening hour %q", f.OpeningHour)
	}
	closing, err := strconv.Atoi(f.ClosingHour)
	if err != nil {
		return obreron.RestaurantRequest{}, fmt.Errorf("invalid closing hour %q", f.ClosingHour)
	}

	req := obreron.RestaurantRequest{
		Name:        f.Name,
		Address:     f.Address,
		Phone:       f.Phone,
		Category:    model.RestaurantCategory(f.Category),
		Description: f.Description,
		OpeningHour: opening,
		ClosingHour: closing,
	}
	if f.Mode == ModeEdit {
		req.ID = f.ID
	}
	return req, nil
}
