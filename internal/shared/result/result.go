// Package result define o envelope de saída usado por todos os serviços:
// sucesso/falha, mensagem opcional, código de status sugerido para a borda
// HTTP e a lista de notificações que motivou a falha.
package result

import (
	sharedDomain "github.com/tasklab/tasks-management/internal/shared/domain"
)

// Códigos de status sugeridos à borda HTTP. O núcleo preenche o código por
// tipo de falha; a borda nunca precisa deduzi-lo da mensagem.
const (
	StatusNotFound      = 404
	StatusUnauthorized  = 401
	StatusUnprocessable = 422
	StatusInternal      = 500
)

// Empty é o payload das operações sem retorno (Update, Delete).
type Empty struct{}

// Result carrega o desfecho de uma operação de serviço.
// O sucesso é derivado da ausência de notificações, nunca de um flag à parte.
type Result[T any] struct {
	data          T
	message       string
	statusCode    int
	notifications []sharedDomain.Notification
}

// Success cria um resultado bem-sucedido com payload.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// SuccessWithMessage cria um resultado bem-sucedido com payload e mensagem.
func SuccessWithMessage[T any](data T, message string) Result[T] {
	return Result[T]{data: data, message: message}
}

// Failure cria um resultado de falha. Política adotada (contrato público):
// quando nenhuma notificação é fornecida, uma notificação genérica
// ("GenericFailure", "A operação falhou.") é sintetizada, de modo que todo
// resultado de falha carrega ao menos uma notificação.
func Failure[T any](message string, statusCode int, notifications ...sharedDomain.Notification) Result[T] {
	if len(notifications) == 0 {
		notifications = []sharedDomain.Notification{
			{Key: "GenericFailure", Message: "A operação falhou."},
		}
	}
	return Result[T]{
		message:       message,
		statusCode:    statusCode,
		notifications: notifications,
	}
}

// Done é o Success das operações sem payload.
func Done() Result[Empty] {
	return Success(Empty{})
}

// IsSuccess é função pura da lista de notificações.
func (r Result[T]) IsSuccess() bool {
	return len(r.notifications) == 0
}

// IsValid é sinônimo de IsSuccess, mantido pela simetria com as entidades.
func (r Result[T]) IsValid() bool {
	return r.IsSuccess()
}

// Data devolve o payload (valor zero em falhas).
func (r Result[T]) Data() T {
	return r.data
}

// Message devolve a mensagem humana, se houver.
func (r Result[T]) Message() string {
	return r.message
}

// StatusCode devolve o código sugerido para a borda (0 quando não definido).
func (r Result[T]) StatusCode() int {
	return r.statusCode
}

// Notifications devolve a lista de notificações da falha.
func (r Result[T]) Notifications() []sharedDomain.Notification {
	out := make([]sharedDomain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}
