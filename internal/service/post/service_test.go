package post_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
	post_service "inkwell-blog-service/internal/service/post"
	post_mock "inkwell-blog-service/mocks/post"
	postgres_mock "inkwell-blog-service/mocks/postgres"
	user_mock "inkwell-blog-service/mocks/user"
)

func strPtr(s string) *string { return &s }

func newService(postRepo *post_mock.Repository, userRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork) *post_service.PostService {
	log := logger.New("test")
	return post_service.NewPostService(postRepo, userRepo, uow, log)
}

func TestPostService_CreatePost(t *testing.T) {
	tests := []struct {
		name        string
		mocks       func(postRepo *post_mock.Repository, userRepo *user_mock.Repository)
		dto         *model.CreatePostDTO
		want        *model.Post
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_mock.Repository, userRepo *user_mock.Repository) {
				userRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, Name: "Alice"}, nil)
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
					Return(&model.Post{ID: 1, AuthorID: 1, Title: "Hi", Content: "World"}, nil)
			},
			dto:  &model.CreatePostDTO{AuthorID: 1, Title: "Hi", Content: "World"},
			want: &model.Post{ID: 1, AuthorID: 1, Title: "Hi", Content: "World"},
		},
		{
			name: "AuthorNotFound",
			mocks: func(postRepo *post_mock.Repository, userRepo *user_mock.Repository) {
				userRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, custom_errors.ErrUserNotFound)
			},
			dto:         &model.CreatePostDTO{AuthorID: 7, Title: "Hi", Content: "World"},
			wantErrType: custom_errors.ErrUserNotFound,
		},
		{
			name: "RepositoryError",
			mocks: func(postRepo *post_mock.Repository, userRepo *user_mock.Repository) {
				userRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.User{ID: 1}, nil)
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
					Return(nil, custom_errors.ErrDatabaseQuery)
			},
			dto:         &model.CreatePostDTO{AuthorID: 1, Title: "Hi", Content: "World"},
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_mock.Repository)
			userRepo := new(user_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tt.mocks(postRepo, userRepo)

			svc := newService(postRepo, userRepo, uow)
			got, err := svc.CreatePost(context.Background(), tt.dto)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			postRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	tests := []struct {
		name        string
		mocks       func(postRepo *post_mock.Repository, userRepo *user_mock.Repository)
		id          int64
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_mock.Repository, userRepo *user_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, AuthorID: 2, Title: "Hi"}, nil)
				userRepo.On("GetByID", mock.Anything, int64(2)).
					Return(&model.User{ID: 2, Name: "Bob", Email: "bob@example.com"}, nil)
			},
			id: 1,
		},
		{
			name: "PostNotFound",
			mocks: func(postRepo *post_mock.Repository, userRepo *user_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, custom_errors.ErrPostNotFound)
			},
			id:          99,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "AuthorMissing",
			mocks: func(postRepo *post_mock.Repository, userRepo *user_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, AuthorID: 2}, nil)
				userRepo.On("GetByID", mock.Anything, int64(2)).Return(nil, custom_errors.ErrUserNotFound)
			},
			id:          1,
			wantErrType: custom_errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_mock.Repository)
			userRepo := new(user_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tt.mocks(postRepo, userRepo)

			svc := newService(postRepo, userRepo, uow)
			got, err := svc.GetPostByID(context.Background(), tt.id)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Bob", got.AuthorName)
				assert.Equal(t, "bob@example.com", got.AuthorEmail)
			}
			postRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_ListPosts(t *testing.T) {
	t.Run("EnrichesWithAuthor", func(t *testing.T) {
		postRepo := new(post_mock.Repository)
		userRepo := new(user_mock.Repository)
		uow := new(postgres_mock.UnitOfWork)

		postRepo.On("List", mock.Anything).Return([]*model.Post{
			{ID: 2, AuthorID: 1, Title: "Second"},
			{ID: 1, AuthorID: 1, Title: "First"},
		}, nil)
		userRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

		svc := newService(postRepo, userRepo, uow)
		posts, err := svc.ListPosts(context.Background())

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Alice", posts[0].AuthorName)
		assert.Equal(t, "alice@example.com", posts[0].AuthorEmail)
		assert.Equal(t, int64(2), posts[0].Post.ID)
	})

	t.Run("SkipsPostsWithMissingAuthor", func(t *testing.T) {
		postRepo := new(post_mock.Repository)
		userRepo := new(user_mock.Repository)
		uow := new(postgres_mock.UnitOfWork)

		postRepo.On("List", mock.Anything).Return([]*model.Post{
			{ID: 2, AuthorID: 9, Title: "Orphan"},
			{ID: 1, AuthorID: 1, Title: "First"},
		}, nil)
		userRepo.On("GetByID", mock.Anything, int64(9)).Return(nil, custom_errors.ErrUserNotFound)
		userRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

		svc := newService(postRepo, userRepo, uow)
		posts, err := svc.ListPosts(context.Background())

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, int64(1), posts[0].Post.ID)
	})

	t.Run("EmptyStore", func(t *testing.T) {
		postRepo := new(post_mock.Repository)
		userRepo := new(user_mock.Repository)
		uow := new(postgres_mock.UnitOfWork)

		postRepo.On("List", mock.Anything).Return(nil, nil)

		svc := newService(postRepo, userRepo, uow)
		posts, err := svc.ListPosts(context.Background())

		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	tests := []struct {
		name        string
		mocks       func(postRepo *post_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction)
		userID      int64
		postID      int64
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, AuthorID: 10}, nil)
				postRepo.On("Update", mock.Anything, int64(1), mock.AnythingOfType("*model.UpdatePostDTO")).
					Return(&model.Post{ID: 1, AuthorID: 10, Title: "Changed"}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			userID: 10,
			postID: 1,
		},
		{
			name: "NotFound",
			mocks: func(postRepo *post_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, custom_errors.ErrPostNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			userID:      10,
			postID:      99,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Forbidden",
			mocks: func(postRepo *post_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, AuthorID: 10}, nil)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			userID:      11,
			postID:      1,
			wantErrType: custom_errors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_mock.Repository)
			userRepo := new(user_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tx := new(postgres_mock.Transaction)
			tt.mocks(postRepo, uow, tx)

			svc := newService(postRepo, userRepo, uow)
			got, err := svc.UpdatePost(context.Background(), tt.userID, tt.postID, &model.UpdatePostDTO{Title: strPtr("Changed")})

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Changed", got.Title)
			}
			postRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	tests := []struct {
		name        string
		mocks       func(postRepo *post_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction)
		userID      int64
		postID      int64
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, AuthorID: 10}, nil)
				postRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			userID: 10,
			postID: 1,
		},
		{
			name: "Forbidden",
			mocks: func(postRepo *post_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, AuthorID: 10}, nil)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			userID:      11,
			postID:      1,
			wantErrType: custom_errors.ErrForbidden,
		},
		{
			name: "NotFound",
			mocks: func(postRepo *post_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, custom_errors.ErrPostNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			userID:      10,
			postID:      99,
			wantErrType: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_mock.Repository)
			userRepo := new(user_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tx := new(postgres_mock.Transaction)
			tt.mocks(postRepo, uow, tx)

			svc := newService(postRepo, userRepo, uow)
			err := svc.DeletePost(context.Background(), tt.userID, tt.postID)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
			} else {
				require.NoError(t, err)
			}
			postRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
		})
	}
}
