package queries

import (
	"context"

	"barberbook/internal/domain/customer"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"
)

var (
	ErrCustomerNotFound = errs.New("customer not found")
	ErrInvalidPhone     = errs.New("invalid phone number")
)

type CustomerReadStore interface {
	FindByPhone(ctx context.Context, phoneLocal string) (*CustomerView, error)
}

type CustomerQueries interface {
	// FindByPhone accepts any phone format and looks up the directory by the
	// normalized local form.
	FindByPhone(ctx context.Context, phone string) (*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) FindByPhone(ctx context.Context, phone string) (*CustomerView, error) {
	local := customer.NormalizeLocal(phone)
	if local == "" {
		return nil, ErrInvalidPhone
	}
	view, err := q.readStore.FindByPhone(ctx, local)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}
