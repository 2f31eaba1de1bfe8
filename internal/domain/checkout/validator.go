package checkout

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const phoneDigits = 10

// FieldErrors maps a form field name to a human-readable error message.
// An empty map means the form is valid.
type FieldErrors map[string]string

// IsValid reports whether no field failed validation
func (e FieldErrors) IsValid() bool {
	return len(e) == 0
}

// Validate checks the checkout form and reports every failing field in one
// pass. It is a pure function: no network, no external state, and identical
// input always yields identical errors.
func Validate(info CustomerInfo, addr ShippingAddress) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(info.Name) == "" {
		errs["customer_info.name"] = "Full name is required"
	}
	if strings.TrimSpace(info.Email) == "" {
		errs["customer_info.email"] = "Email address is required"
	} else if !emailPattern.MatchString(info.Email) {
		errs["customer_info.email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(info.Phone) == "" {
		errs["customer_info.phone"] = "Phone number is required"
	} else if len(stripNonDigits(info.Phone)) != phoneDigits {
		errs["customer_info.phone"] = "Please enter a valid 10-digit phone number"
	}

	if strings.TrimSpace(addr.Street) == "" {
		errs["shipping_address.street"] = "Street address is required"
	}
	if strings.TrimSpace(addr.City) == "" {
		errs["shipping_address.city"] = "City is required"
	}
	if strings.TrimSpace(addr.State) == "" {
		errs["shipping_address.state"] = "State is required"
	}
	if strings.TrimSpace(addr.ZipCode) == "" {
		errs["shipping_address.zip_code"] = "ZIP code is required"
	}

	return errs
}

// stripNonDigits removes every non-digit rune from s
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
