package commands

import (
	"context"

	"bloom-express/internal/infra"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/pkg/jwt"
	"bloom-express/internal/pkg/password"
	"bloom-express/internal/usecase/shared"
)

type LoginResult struct {
	Token string
	Email string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, jwt: jwtService}
}

// Login never distinguishes an unknown email from a wrong password.
func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	admin, err := c.uow.CommandReads().AdminByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.Compare(admin.PasswordHash, rawPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := c.jwt.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, Email: admin.Email}, nil
}
