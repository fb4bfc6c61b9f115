package usecases

import (
	"context"
	"sync"
	"testing"
	"time"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaveUserRepositoryStub struct {
	mu    sync.Mutex
	users map[domain.ID]domain.User
}

func (r *leaveUserRepositoryStub) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *leaveUserRepositoryStub) GetByID(_ context.Context, id domain.ID) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *leaveUserRepositoryStub) GetByEmail(_ context.Context, _ string) (domain.User, error) {
	return domain.User{}, ErrUserNotFound
}

func (r *leaveUserRepositoryStub) Update(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *leaveUserRepositoryStub) FindAll(_ context.Context, _ Pagination) ([]domain.User, int, error) {
	return nil, 0, nil
}

func (r *leaveUserRepositoryStub) FindAllOnLeave(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.User
	for _, user := range r.users {
		if user.Status == domain.UserStatusOnLeave {
			result = append(result, user)
		}
	}
	return result, nil
}

func TestRevertExpiredLeaves(t *testing.T) {
	repository := &leaveUserRepositoryStub{users: make(map[domain.ID]domain.User)}
	ctx := context.Background()

	expired, err := domain.NewUserBuilder().
		WithName("Ana").
		WithEmail("ana@example.com").
		Build()
	require.NoError(t, err)
	expired.BeginLeave(utils.Time{Time: time.Now().Add(-time.Hour)})
	require.NoError(t, repository.Create(ctx, expired))

	ongoing, err := domain.NewUserBuilder().
		WithName("Bruno").
		WithEmail("bruno@example.com").
		Build()
	require.NoError(t, err)
	ongoing.BeginLeave(utils.Time{Time: time.Now().Add(time.Hour)})
	require.NoError(t, repository.Create(ctx, ongoing))

	worker := NewLeaveReversionWorker(repository)
	worker.revertExpiredLeaves(ctx)

	reverted, err := repository.GetByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusActive, reverted.Status)
	assert.Nil(t, reverted.LeaveUntil)

	untouched, err := repository.GetByID(ctx, ongoing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusOnLeave, untouched.Status)
}
