package repository

import "messenger/internal/domain/entity"

// Seed is the fixture set written by DatabaseSeeder.Reset.
// Members lists, per conversation index, the indexes into Users that join it.
type Seed struct {
	Users         []*entity.User
	Conversations []*entity.Conversation
	Members       map[int][]int
}
