package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Subject(t *testing.T) {
	u := &User{ID: 42}
	assert.Equal(t, "42", u.Subject())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Name: "root", Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Name: "admin", Role: RoleUser}).IsAdmin())
}

func TestRole(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.Equal(t, RoleUser, RoleOrDefault(""))
	assert.Equal(t, RoleAdmin, RoleOrDefault(RoleAdmin))
}

func TestMessage_IsDirect(t *testing.T) {
	recipient := int64(2)
	conversation := int64(7)

	assert.True(t, (&Message{RecipientID: &recipient}).IsDirect())
	assert.False(t, (&Message{ConversationID: &conversation}).IsDirect())
}
