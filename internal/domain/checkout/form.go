package checkout

import (
	"fmt"

	"github.com/stylesphere/storefront/internal/domain/shared"
)

// DefaultCountry is prefilled into a fresh shipping address and stays editable
const DefaultCountry = "India"

// CustomerInfo holds the contact details collected at checkout
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ShippingAddress holds the delivery address collected at checkout
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Form sections
const (
	SectionCustomerInfo    = "customer_info"
	SectionShippingAddress = "shipping_address"
)

// Customer info fields
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

// Shipping address fields
const (
	FieldStreet  = "street"
	FieldCity    = "city"
	FieldState   = "state"
	FieldZipCode = "zip_code"
	FieldCountry = "country"
)

// FormState holds the checkout form as two nested sections. Updates are
// structural: changing one field produces a new FormState with every sibling
// field untouched.
type FormState struct {
	CustomerInfo    CustomerInfo    `json:"customer_info"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
}

// NewFormState creates an empty form with the default country prefilled
func NewFormState() FormState {
	return FormState{
		ShippingAddress: ShippingAddress{Country: DefaultCountry},
	}
}

// Update returns a new FormState equal to f except section.field == value.
// Unknown sections or fields are rejected.
func (f FormState) Update(section, field, value string) (FormState, error) {
	switch section {
	case SectionCustomerInfo:
		switch field {
		case FieldName:
			f.CustomerInfo.Name = value
		case FieldEmail:
			f.CustomerInfo.Email = value
		case FieldPhone:
			f.CustomerInfo.Phone = value
		default:
			return FormState{}, shared.NewDomainError("INVALID_FIELD",
				fmt.Sprintf("Unknown customer info field %q", field))
		}
	case SectionShippingAddress:
		switch field {
		case FieldStreet:
			f.ShippingAddress.Street = value
		case FieldCity:
			f.ShippingAddress.City = value
		case FieldState:
			f.ShippingAddress.State = value
		case FieldZipCode:
			f.ShippingAddress.ZipCode = value
		case FieldCountry:
			f.ShippingAddress.Country = value
		default:
			return FormState{}, shared.NewDomainError("INVALID_FIELD",
				fmt.Sprintf("Unknown shipping address field %q", field))
		}
	default:
		return FormState{}, shared.NewDomainError("INVALID_SECTION",
			fmt.Sprintf("Unknown form section %q", section))
	}
	return f, nil
}
