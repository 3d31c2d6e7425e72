package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	ProfileRepo() ProfileRepository
	PostRepo() PostRepository
	LikeRepo() LikeRepository
	FollowerRepo() FollowerRepository
	MessageRepo() MessageRepository
	PresenceRepo() PresenceRepository
}

// TransactionManager runs a unit of work inside a single database
// transaction. The callback receives a factory whose repositories all share
// that transaction; returning an error rolls it back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
