package post_service

import (
	"context"
	"errors"
	"log/slog"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
	post_repository "inkwell-blog-service/internal/repository/post"
	"inkwell-blog-service/internal/repository/postgres"
	user_repository "inkwell-blog-service/internal/repository/user"
)

type PostService struct {
	postRepo post_repository.Repository
	userRepo user_repository.Repository
	uow      postgres.UnitOfWork
	log      *logger.Logger
}

func NewPostService(
	postRepo post_repository.Repository,
	userRepo user_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		uow:      uow,
		log:      log,
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, post.AuthorID); err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Author not found for create", slog.Int64("authorID", post.AuthorID))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get author", slog.String("error", err.Error()), slog.Int64("authorID", post.AuthorID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	newPost := &model.Post{
		AuthorID: post.AuthorID,
		Title:    post.Title,
		Content:  post.Content,
	}

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdPost, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("Author not found", slog.Int64("authorID", post.AuthorID))
			return nil, custom_errors.ErrUserNotFound
		default:
			s.log.Error("Failed to get author",
				slog.String("error", err.Error()),
				slog.Int64("authorID", post.AuthorID))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	return &model.PostDetailed{
		Post:        post,
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
	}, nil
}

// ListPosts returns all posts newest first, each enriched with the author's
// name and email. Posts whose author cannot be resolved are skipped, the
// same result a SQL join over users would produce.
func (s *PostService) ListPosts(ctx context.Context) ([]*model.PostDetailed, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		author, err := s.userRepo.GetByID(ctx, post.AuthorID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrUserNotFound) {
				s.log.Debug("Author not found, skipping post", slog.Int64("authorID", post.AuthorID), slog.Int64("postID", post.ID))
				continue
			}
			s.log.Error("Failed to get author", slog.String("error", err.Error()), slog.Int64("authorID", post.AuthorID))
			return nil, custom_errors.ErrDatabaseQuery
		}

		result = append(result, &model.PostDetailed{
			Post:        post,
			AuthorName:  author.Name,
			AuthorEmail: author.Email,
		})
	}
	return result, nil
}

func (s *PostService) UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) (result *model.Post, err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	postRepo := tx.PostRepository()

	existingPost, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for update", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if existingPost.AuthorID != userID {
		s.log.Debug("User is not author of post", slog.Int64("userID", userID), slog.Int64("authorID", existingPost.AuthorID))
		return nil, custom_errors.ErrForbidden
	}

	updatedPost, err := postRepo.Update(ctx, id, post)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return updatedPost, nil
}

func (s *PostService) DeletePost(ctx context.Context, userID int64, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	postRepo := tx.PostRepository()

	post, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for delete", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}
	if post.AuthorID != userID {
		s.log.Debug("User is not author of post", slog.Int64("userID", userID), slog.Int64("authorID", post.AuthorID))
		return custom_errors.ErrForbidden
	}

	if err = postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return nil
}
