package post_service

import (
	"context"

	"inkwell-blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post_service --outpkg post_service_mock --filename Service.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	ListPosts(ctx context.Context) ([]*model.PostDetailed, error)
	UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, userID int64, id int64) error
}
