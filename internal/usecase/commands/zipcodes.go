package commands

import (
	"context"
	"strings"

	"bloom-express/internal/infra"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
)

type ZipcodeCommands interface {
	Create(ctx context.Context, zipcode, city string) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type zipcodeCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewZipcodeCommands(uow shared.UnitOfWork) ZipcodeCommands {
	return &zipcodeCommandsImpl{uow: uow}
}

func (c *zipcodeCommandsImpl) Create(ctx context.Context, zipcode, city string) (uuid.UUID, error) {
	zipcode = strings.TrimSpace(zipcode)
	city = strings.TrimSpace(city)
	if len(zipcode) != 5 || city == "" {
		return uuid.Nil, errs.Mark(errs.New("zipcode must be 5 digits and city non-empty"), errs.ErrDomainValidation)
	}
	for _, r := range zipcode {
		if r < '0' || r > '9' {
			return uuid.Nil, errs.Mark(errs.New("zipcode must be 5 digits and city non-empty"), errs.ErrDomainValidation)
		}
	}

	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Zipcodes().Create(ctx, zipcode, city)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *zipcodeCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var existed bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		existed, err = tx.Zipcodes().Delete(ctx, id)
		return err
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !existed {
		return errs.ErrZipcodeNotFound
	}
	return nil
}
