package domain

import (
	"github.com/google/uuid"

	sharedDomain "github.com/tasklab/tasks-management/internal/shared/domain"
	taskDomain "github.com/tasklab/tasks-management/internal/task/domain"
)

// MaxTasks é o teto absoluto de tarefas por projeto, qualquer que seja o
// status delas.
const MaxTasks = 20

// Project agrega tarefas de um usuário. As invariantes de capacidade e de
// exclusão são do agregado, não do armazenamento.
type Project struct {
	sharedDomain.Entity
	Name   string    `json:"name"`
	UserID uuid.UUID `json:"userId"`

	tasks []*taskDomain.TaskItem
}

// NewProject cria e valida um projeto.
func NewProject(name string, userID uuid.UUID) *Project {
	p := &Project{
		Entity: sharedDomain.NewEntity(),
		Name:   name,
		UserID: userID,
	}
	p.validate()
	return p
}

// RestoreProject reidrata um projeto persistido com suas tarefas, sem validar.
func RestoreProject(id uuid.UUID, name string, userID uuid.UUID, tasks []*taskDomain.TaskItem) *Project {
	return &Project{
		Entity: sharedDomain.RestoreEntity(id),
		Name:   name,
		UserID: userID,
		tasks:  tasks,
	}
}

// Tasks devolve as tarefas carregadas do projeto.
func (p *Project) Tasks() []*taskDomain.TaskItem {
	return p.tasks
}

// AddTask adiciona uma tarefa respeitando o teto de 20 tarefas. Ao atingir o
// teto, a lista não muda e uma notificação é registrada.
func (p *Project) AddTask(t *taskDomain.TaskItem) {
	if len(p.tasks) >= MaxTasks {
		p.AddNotification("Tasks", "Não é possível inserir mais de 20 tarefas em um projeto.")
		return
	}
	p.tasks = append(p.tasks, t)
}

// RemoveTask remove a tarefa do projeto, se presente.
func (p *Project) RemoveTask(t *taskDomain.TaskItem) {
	for i, task := range p.tasks {
		if task.ID == t.ID {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			return
		}
	}
	p.AddNotification("Tasks", "Tarefa não encontrada no projeto.")
}

// Update renomeia o projeto e revalida.
func (p *Project) Update(name string) {
	p.Name = name
	p.validate()
}

// PendingTaskCount conta apenas tarefas no status Pending — InProgress não
// conta como pendente para as regras de capacidade e de exclusão.
func (p *Project) PendingTaskCount() int {
	count := 0
	for _, t := range p.tasks {
		if t.Status == taskDomain.StatusPending {
			count++
		}
	}
	return count
}

// ValidateForDelete bloqueia a exclusão enquanto houver tarefas pendentes.
func (p *Project) ValidateForDelete() {
	p.validate()
	if p.PendingTaskCount() > 0 {
		p.AddNotification("Tasks", "Não é possível remover o projeto enquanto houver tarefas pendentes. Conclua ou remova as tarefas antes de excluir o projeto.")
	}
}

func (p *Project) validate() {
	p.ClearNotifications()
	p.RequireNotBlank(p.Name, "Name")
}
