package domain

import (
	"fmt"
	"strings"
	"time"
)

// Verificações de campo compartilhadas pelas entidades. Cada verificação
// adiciona no máximo uma notificação, com a chave igual ao nome do campo.

// RequireNotBlank falha quando o valor é vazio ou apenas espaços.
func (n *Notifiable) RequireNotBlank(value, field string) {
	if strings.TrimSpace(value) == "" {
		n.AddNotification(field, fmt.Sprintf("Campo %s não foi informado.", field))
	}
}

// RequireFutureDate falha quando a data é estritamente anterior a agora.
// Deve ser chamada apenas no momento da construção ou mutação — nunca ao ler
// uma entidade persistida, pois o resultado depende do relógio.
func (n *Notifiable) RequireFutureDate(value time.Time, field string) {
	if value.Before(time.Now().UTC()) {
		n.AddNotification(field, fmt.Sprintf("Campo %s deve ser uma data futura.", field))
	}
}
