package post_repository

import (
	"context"

	"inkwell-blog-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg post_mock --filename Repository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context) ([]*model.Post, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
}
