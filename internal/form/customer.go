package form

import (
	"github.com/Lucas-2000/obreron-admin/internal/model"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
	"github.com/Lucas-2000/obreron-admin/internal/validate"
)

type CustomerForm struct {
	Mode Mode   `json:"-"`
	ID   string `json:"-"`

	Name        string `json:"name"`
	BirthDate   string `json:"birthDate"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Gender      string `json:"gender"`
	IsActive    bool   `json:"isActive"`
	Observation string `json:"observation"`
}

func NewCustomerForm() CustomerForm {
	return CustomerForm{Mode: ModeCreate, IsActive: true}
}

func EditCustomerForm(c model.Customer) CustomerForm {
	return CustomerForm{
		Mode:        ModeEdit,
		ID:          c.ID,
		Name:        c.Name,
		BirthDate:   InputDate(c.BirthDate),
		Phone:       c.Phone,
		Address:     c.Address,
		Email:       c.Email,
		Gender:      string(c.Gender),
		IsActive:    c.IsActive,
		Observation: c.Observation,
	}
}

func (f CustomerForm) Validate() validate.Errors {
	errs := validate.Errors{}
	errs.Field("name", f.Name,
		validate.MinLen(1, "Nome"), validate.MaxLen(255, "Nome"))
	errs.Field("birthDate", f.BirthDate,
		validate.MinLen(1, "Data"), validate.MaxLen(255, "Data"))
	errs.Field("phone", f.Phone,
		validate.MinLen(1, "Telefone"), validate.MaxLen(255, "Telefone"))
	errs.Field("address", f.Address,
		validate.MinLen(1, "Endereço"), validate.MaxLen(255, "Endereço"))
	errs.Field("email", f.Email,
		validate.MinLen(1, "Email"), validate.MaxLen(255, "Email"))
	errs.Field("gender", f.Gender,
		validate.OneOf([]string{string(model.GenderMale), string(model.GenderFemale)},
			"Selecione pelo menos um gênero."))
	return errs
}

func (f CustomerForm) Request() (obreron.CustomerRequest, error) {
	birthDate, err := WireDate(f.BirthDate)
	if err != nil {
		return obreron.CustomerRequest{}, err
	}

	req := obreron.CustomerRequest{
		Name:        f.Name,
		BirthDate:   birthDate,
		Phone:       f.Phone,
		Address:     f.Address,
		Email:       f.Email,
		Gender:      model.CustomerGender(f.Gender),
		IsActive:    f.IsActive,
		Observation: f.Observation,
	}
	if f.Mode == ModeEdit {
		req.ID = f.ID
	}
	return req, nil
}
