package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sharedDomain "github.com/tasklab/tasks-management/internal/shared/domain"
	"github.com/tasklab/tasks-management/internal/shared/result"
)

// ErrorResponse é o corpo padrão das respostas de erro: a mensagem do
// resultado e a lista de notificações que motivou a falha.
type ErrorResponse struct {
	Message       string                      `json:"message"`
	Notifications []sharedDomain.Notification `json:"notifications,omitempty"`
}

// SendSuccess envia uma resposta bem-sucedida com payload.
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"data": data,
	})
}

// SendError envia uma resposta de erro no formato padronizado.
func SendError(c *gin.Context, statusCode int, message string, notifications ...sharedDomain.Notification) {
	c.JSON(statusCode, gin.H{
		"error": ErrorResponse{
			Message:       message,
			Notifications: notifications,
		},
	})
}

// SendResult traduz um Result para HTTP: StatusCode do resultado nas falhas
// (500 quando ausente), status de sucesso informado nos êxitos. A borda não
// rededuz nada da mensagem.
func SendResult[T any](c *gin.Context, res result.Result[T], successStatus int) {
	if !res.IsSuccess() {
		status := res.StatusCode()
		if status == 0 {
			status = http.StatusInternalServerError
		}
		SendError(c, status, res.Message(), res.Notifications()...)
		return
	}

	if successStatus == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	SendSuccess(c, successStatus, res.Data())
}

// SendBadRequest responde 400 para entradas malformadas, antes do núcleo.
func SendBadRequest(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, message)
}
