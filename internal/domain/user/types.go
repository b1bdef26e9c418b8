package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role distinguishes the two trusted operator accounts: the cashier runs the
// daily queue, the owner additionally controls the discount policy and sees
// profit reports.
type Role string

const (
	RoleCashier Role = "cashier"
	RoleOwner   Role = "owner"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCashier, RoleOwner:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
