// Package repository provides testify mocks for the domain repository
// interfaces.
package repository

import (
	"context"

	"suja/internal/domain/entity"
	"suja/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return m.Called().Get(0).(repository.ProfileRepository)
}

func (m *MockRepositoryFactory) PostRepo() repository.PostRepository {
	return m.Called().Get(0).(repository.PostRepository)
}

func (m *MockRepositoryFactory) LikeRepo() repository.LikeRepository {
	return m.Called().Get(0).(repository.LikeRepository)
}

func (m *MockRepositoryFactory) FollowerRepo() repository.FollowerRepository {
	return m.Called().Get(0).(repository.FollowerRepository)
}

func (m *MockRepositoryFactory) MessageRepo() repository.MessageRepository {
	return m.Called().Get(0).(repository.MessageRepository)
}

func (m *MockRepositoryFactory) PresenceRepo() repository.PresenceRepository {
	return m.Called().Get(0).(repository.PresenceRepository)
}

// MockProfileRepository mocks repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func NewMockProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

// MockPostRepository mocks repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func NewMockPostRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPostRepository {
	m := &MockPostRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPostRepository) List(ctx context.Context, query repository.PostQuery) ([]*entity.Post, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	return m.Called(ctx, id, profileID).Error(0)
}

func (m *MockPostRepository) CountByAuthor(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)

	return args.Get(0).(int64), args.Error(1)
}

// MockLikeRepository mocks repository.LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

func NewMockLikeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLikeRepository {
	m := &MockLikeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLikeRepository) Set(ctx context.Context, profileID, postID uuid.UUID, liked bool) error {
	return m.Called(ctx, profileID, postID, liked).Error(0)
}

func (m *MockLikeRepository) Count(ctx context.Context, postID uuid.UUID) (int64, error) {
	args := m.Called(ctx, postID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) HasLiked(ctx context.Context, profileID, postID uuid.UUID) (bool, error) {
	args := m.Called(ctx, profileID, postID)

	return args.Bool(0), args.Error(1)
}

// MockFollowerRepository mocks repository.FollowerRepository.
type MockFollowerRepository struct {
	mock.Mock
}

func NewMockFollowerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFollowerRepository {
	m := &MockFollowerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFollowerRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return m.Called(ctx, followerID, followingID).Error(0)
}

func (m *MockFollowerRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return m.Called(ctx, followerID, followingID).Error(0)
}

func (m *MockFollowerRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followingID)

	return args.Bool(0), args.Error(1)
}

func (m *MockFollowerRepository) CountFollowers(ctx context.Context, followingID uuid.UUID) (int64, error) {
	args := m.Called(ctx, followingID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowerRepository) CountFollowing(ctx context.Context, followerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, followerID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowerRepository) SearchMutuals(ctx context.Context, profileID uuid.UUID, query string) ([]*entity.Profile, error) {
	args := m.Called(ctx, profileID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Profile), args.Error(1)
}

// MockMessageRepository mocks repository.MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func NewMockMessageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageRepository {
	m := &MockMessageRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Message), args.Error(1)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMessageRepository) Conversation(ctx context.Context, profileID, otherID uuid.UUID) ([]*entity.Message, error) {
	args := m.Called(ctx, profileID, otherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Message), args.Error(1)
}

// MockPresenceRepository mocks repository.PresenceRepository.
type MockPresenceRepository struct {
	mock.Mock
}

func NewMockPresenceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPresenceRepository {
	m := &MockPresenceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPresenceRepository) Upsert(ctx context.Context, presence *entity.Presence) error {
	return m.Called(ctx, presence).Error(0)
}

func (m *MockPresenceRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.Presence, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Presence), args.Error(1)
}
