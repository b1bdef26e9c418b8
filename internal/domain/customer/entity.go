package customer

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPhone = errors.New("phone number cannot be empty")
	ErrEmptyName  = errors.New("customer name cannot be empty")
)

// Customer is one row of the returning-customer directory, keyed by the
// local-format phone number.
type Customer struct {
	PhoneRaw   string
	PhoneLocal string // 08xx..., the directory key
	PhoneIntl  string // 628xx..., the WhatsApp form
	Name       string
	LastBarber string
}

func New(rawPhone, name, lastBarber string) (Customer, error) {
	local := NormalizeLocal(rawPhone)
	if local == "" {
		return Customer{}, ErrEmptyPhone
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyName
	}
	return Customer{
		PhoneRaw:   strings.TrimSpace(rawPhone),
		PhoneLocal: local,
		PhoneIntl:  NormalizeIntl(rawPhone),
		Name:       name,
		LastBarber: strings.TrimSpace(lastBarber),
	}, nil
}

// NormalizeLocal strips separators and renders the 0-prefixed local form used
// as the directory key: "62812..." and "812..." both become "0812...".
func NormalizeLocal(raw string) string {
	cleaned := stripSeparators(raw)
	switch {
	case cleaned == "":
		return ""
	case strings.HasPrefix(cleaned, "62"):
		return "0" + cleaned[2:]
	case strings.HasPrefix(cleaned, "8"):
		return "0" + cleaned
	default:
		return cleaned
	}
}

// NormalizeIntl renders the 62-prefixed international form.
func NormalizeIntl(raw string) string {
	cleaned := stripSeparators(raw)
	switch {
	case cleaned == "":
		return ""
	case strings.HasPrefix(cleaned, "0"):
		return "62" + cleaned[1:]
	case strings.HasPrefix(cleaned, "62"):
		return cleaned
	default:
		return "62" + cleaned
	}
}

func stripSeparators(raw string) string {
	replacer := strings.NewReplacer("-", "", " ", "", "+", "", ".", "")
	return replacer.Replace(strings.TrimSpace(raw))
}
