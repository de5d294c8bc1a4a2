package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser_Valid(t *testing.T) {
	user := NewUser("Ana", ManagerRole)

	assert.True(t, user.IsValid())
	assert.True(t, user.IsManager())
}

func TestNewUser_BlankFields(t *testing.T) {
	user := NewUser("", "  ")

	assert.False(t, user.IsValid())

	notifs := user.Notifications()
	assert.Len(t, notifs, 2)
	assert.Equal(t, "Name", notifs[0].Key)
	assert.Equal(t, "Role", notifs[1].Key)
}

func TestUser_IsManager(t *testing.T) {
	dev := NewUser("Bruno", "Desenvolvedor")
	manager := NewUser("Carla", "Gerente")

	assert.False(t, dev.IsManager())
	assert.True(t, manager.IsManager())
}
