package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Notification representa uma violação de regra de validação ou de negócio:
// um par (campo, mensagem).
type Notification struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// Notifiable acumula notificações produzidas durante a construção e a mutação
// de uma entidade. A validade é sempre derivada da lista — nunca um booleano
// mantido em separado.
type Notifiable struct {
	notifications []Notification
}

// AddNotification registra uma violação para o campo informado.
func (n *Notifiable) AddNotification(key, message string) {
	n.notifications = append(n.notifications, Notification{Key: key, Message: message})
}

// AddNotifications registra várias violações de uma vez.
func (n *Notifiable) AddNotifications(notifications ...Notification) {
	n.notifications = append(n.notifications, notifications...)
}

// ClearNotifications descarta as notificações acumuladas. Cada validação
// recomeça do zero: quem valida limpa a lista e reavalia todos os campos.
func (n *Notifiable) ClearNotifications() {
	n.notifications = nil
}

// Notifications devolve uma cópia da lista de notificações.
func (n *Notifiable) Notifications() []Notification {
	out := make([]Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// IsValid é função pura da lista de notificações.
func (n *Notifiable) IsValid() bool {
	return len(n.notifications) == 0
}

// JoinedMessages junta as mensagens das notificações em uma única string,
// no formato usado nas mensagens de erro dos serviços.
func (n *Notifiable) JoinedMessages() string {
	msgs := make([]string, 0, len(n.notifications))
	for _, notif := range n.notifications {
		msgs = append(msgs, notif.Message)
	}
	return strings.Join(msgs, ", ")
}

// Entity é a base das entidades de domínio: identificador gerado + lista de
// notificações.
type Entity struct {
	ID uuid.UUID `json:"id"`
	Notifiable
}

// NewEntity cria a base com um novo identificador.
func NewEntity() Entity {
	return Entity{ID: uuid.New()}
}

// RestoreEntity recria a base a partir de um identificador persistido, sem
// validar. Usada pelos repositórios na reidratação.
func RestoreEntity(id uuid.UUID) Entity {
	return Entity{ID: id}
}
