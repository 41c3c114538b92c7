package registration

import (
	"github.com/unicsmcr/hs_dashboard/entities"
)

// FieldType is the HTML input type of a form field
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
)

// FormField describes an input of the register form
type FormField struct {
	Key       entities.UserField
	Label     string
	Type      FieldType
	Required  bool
	MinLength int
	Value     string
	Errors    []string
}

// Form is the register form of a visitor
type Form struct {
	Fields []FormField
	// Submitting is true while the registration request is in flight
	Submitting bool
}

// NewForm builds an empty register form
func NewForm() *Form {
	return &Form{
		Fields: []FormField{
			{Key: entities.UserUsername, Label: "Username", Type: FieldText, Required: true, MinLength: 3},
			{Key: entities.UserFirstname, Label: "Firstname", Type: FieldText, Required: true, MinLength: 3},
			{Key: entities.UserLastname, Label: "Lastname", Type: FieldText, Required: true, MinLength: 3},
			{Key: entities.UserEmail, Label: "Email", Type: FieldEmail, Required: true},
			{Key: entities.UserPassword, Label: "Password", Type: FieldPassword, Required: true, MinLength: 3},
			{Key: entities.UserConfirmPassword, Label: "Confirm password", Type: FieldPassword, Required: true, MinLength: 3},
		},
	}
}

// Field returns the field with the given key, nil if the form has no such field
func (f *Form) Field(key entities.UserField) *FormField {
	for i := range f.Fields {
		if f.Fields[i].Key == key {
			return &f.Fields[i]
		}
	}
	return nil
}

// Bind fills the form with the values of the request
func (f *Form) Bind(request entities.UserRequest) {
	values := map[entities.UserField]string{
		entities.UserUsername:        request.Username,
		entities.UserFirstname:       request.Firstname,
		entities.UserLastname:        request.Lastname,
		entities.UserEmail:           request.Email,
		entities.UserPassword:        request.Password,
		entities.UserConfirmPassword: request.ConfirmPassword,
	}
	for i := range f.Fields {
		f.Fields[i].Value = values[f.Fields[i].Key]
	}
}

// Request returns the registration request made of the form values
func (f *Form) Request() entities.UserRequest {
	value := func(key entities.UserField) string {
		if field := f.Field(key); field != nil {
			return field.Value
		}
		return ""
	}

	return entities.UserRequest{
		Username:        value(entities.UserUsername),
		Firstname:       value(entities.UserFirstname),
		Lastname:        value(entities.UserLastname),
		Email:           value(entities.UserEmail),
		Password:        value(entities.UserPassword),
		ConfirmPassword: value(entities.UserConfirmPassword),
	}
}

// Valid tells if no field has validation errors
func (f *Form) Valid() bool {
	for _, field := range f.Fields {
		if len(field.Errors) > 0 {
			return false
		}
	}
	return true
}

func (f *Form) clearErrors() {
	for i := range f.Fields {
		f.Fields[i].Errors = nil
	}
}
