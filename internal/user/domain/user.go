package domain

import (
	"github.com/google/uuid"

	sharedDomain "github.com/tasklab/tasks-management/internal/shared/domain"
)

// ManagerRole é o único papel com permissão para gerar relatórios.
const ManagerRole = "Gerente"

// User representa um usuário dono de projetos.
type User struct {
	sharedDomain.Entity
	Name string `json:"name"`
	Role string `json:"role"`
}

// NewUser cria e valida um usuário.
func NewUser(name, role string) *User {
	u := &User{
		Entity: sharedDomain.NewEntity(),
		Name:   name,
		Role:   role,
	}
	u.validate()
	return u
}

// RestoreUser reidrata um usuário persistido, sem validar.
func RestoreUser(id uuid.UUID, name, role string) *User {
	return &User{
		Entity: sharedDomain.RestoreEntity(id),
		Name:   name,
		Role:   role,
	}
}

// IsManager indica se o usuário possui o papel de gerente.
func (u *User) IsManager() bool {
	return u.Role == ManagerRole
}

// A validação recomputa a lista de notificações a partir do estado atual.
func (u *User) validate() {
	u.ClearNotifications()
	u.RequireNotBlank(u.Name, "Name")
	u.RequireNotBlank(u.Role, "Role")
}
