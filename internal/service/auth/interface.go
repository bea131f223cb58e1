package auth_service

import (
	"context"

	"inkwell-blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/auth --outpkg auth_mock --filename Service.go
type Service interface {
	Register(ctx context.Context, dto *model.RegisterUserDTO) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	VerifyToken(token string) (*Claims, error)
	GetProfile(ctx context.Context, userID int64) (*model.User, error)
}
