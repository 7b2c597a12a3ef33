package repository

import "github.com/airtribe-projects/task-manager-api-akki772/internal/domain"

// TaskRepository owns every Task record and the id counter. Implementations
// hand out copies; mutating a returned Task never changes stored state.
// Lookups on an absent id return storage.ErrNotFound.
type TaskRepository interface {
	List() []domain.Task
	Get(id int64) (domain.Task, error)
	Create(title, description string, completed bool) domain.Task
	Update(id int64, title, description string, completed bool) (domain.Task, error)
	Delete(id int64) (domain.Task, error)
	Len() int
}
