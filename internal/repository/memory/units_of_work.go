package memory

import (
	"context"
	"sync"

	"inkwell-blog-service/internal/logger"
	post_repository "inkwell-blog-service/internal/repository/post"
	"inkwell-blog-service/internal/repository/postgres"
	user_repository "inkwell-blog-service/internal/repository/user"
)

// MemoryUnitOfWork serializes transactions over the in-memory repositories.
// A transaction holds a process-wide lock from Begin until Commit or
// Rollback, so a read-modify-write sequence (ownership check followed by an
// update or delete) cannot interleave with another writer. There is no undo:
// Rollback only releases the lock.
type MemoryUnitOfWork struct {
	mu       sync.Mutex
	log      *logger.Logger
	userRepo user_repository.Repository
	postRepo post_repository.Repository
}

func NewMemoryUOW(userRepo user_repository.Repository, postRepo post_repository.Repository, log *logger.Logger) postgres.UnitOfWork {
	return &MemoryUnitOfWork{
		log:      log,
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (uow *MemoryUnitOfWork) Begin(ctx context.Context) (postgres.Transaction, error) {
	uow.mu.Lock()
	return &MemoryTransaction{uow: uow}, nil
}

type MemoryTransaction struct {
	uow  *MemoryUnitOfWork
	done bool
}

func (t *MemoryTransaction) Commit(ctx context.Context) error {
	t.release()
	return nil
}

func (t *MemoryTransaction) Rollback(ctx context.Context) error {
	t.release()
	return nil
}

func (t *MemoryTransaction) release() {
	if !t.done {
		t.done = true
		t.uow.mu.Unlock()
	}
}

func (t *MemoryTransaction) UserRepository() user_repository.Repository {
	return t.uow.userRepo
}

func (t *MemoryTransaction) PostRepository() post_repository.Repository {
	return t.uow.postRepo
}
