package form

import (
	"strconv"

	"github.com/Lucas-2000/obreron-admin/internal/model"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
	"github.com/Lucas-2000/obreron-admin/internal/validate"
)

type ItemForm struct {
	Mode Mode   `json:"-"`
	ID   string `json:"-"`

	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"` // major units as typed, transmitted as cents
	Available       bool   `json:"available"`
	PreparationTime string `json:"preparationTime"`
	Ingredients     string `json:"ingredients"` // comma-separated display form
}

func NewItemForm() ItemForm {
	return ItemForm{Mode: ModeCreate, Available: true}
}

func EditItemForm(it model.Item) ItemForm {
	return ItemForm{
		Mode:            ModeEdit,
		ID:              it.ID,
		Name:            it.Name,
		Description:     it.Description,
		Price:           CentsToDisplay(it.PriceInCents),
		Available:       it.Available,
		PreparationTime: strconv.Itoa(it.PreparationTime),
		Ingredients:     JoinIngredients(it.Ingredients),
	}
}

func (f ItemForm) Validate() validate.Errors {
	errs := validate.Errors{}
	errs.Field("name", f.Name,
		validate.MinLen(1, "Nome"), validate.MaxLen(255, "Nome"))
	errs.Field("description", f.Description,
		validate.MinLen(1, "Descrição"), validate.MaxLen(255, "Descrição"))
	errs.Field("priceInCents", f.Price,
		validate.MinLen(1, "Preço"))
	errs.Field("preparationTime", f.PreparationTime,
		validate.MinLen(1, "Tempo de preparação"))
	errs.Field("ingredients", f.Ingredients,
		validate.MinLen(1, "Ingredientes"))
	return errs
}

func (f ItemForm) Request() (obreron.ItemRequest, error) {
	cents, err := DisplayToCents(f.Price)
	if err != nil {
		return obreron.ItemRequest{}, err
	}
	prep, err := strconv.Atoi(f.PreparationTime)
	if err != nil {
		return obreron.ItemRequest{}, err
	}

	req := obreron.ItemRequest{
		Name:            f.Name,
		Description:     f.Description,
		PriceInCents:    cents,
		Available:       f.Available,
		PreparationTime: prep,
		Ingredients:     SplitIngredients(f.Ingredients),
	}
	if f.Mode == ModeEdit {
		req.ID = f.ID
	}
	return req, nil
}
