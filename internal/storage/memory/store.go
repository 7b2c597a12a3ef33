package memory

import (
	"strings"
	"sync"

	"github.com/airtribe-projects/task-manager-api-akki772/internal/domain"
	"github.com/airtribe-projects/task-manager-api-akki772/internal/storage"
)

// Store keeps tasks in insertion order and assigns strictly increasing ids
// starting at 1. net/http runs handlers concurrently, so every operation
// holds the mutex for its full read-modify-write.
type Store struct {
	mu     sync.Mutex
	tasks  []domain.Task
	nextID int64
}

func New() *Store {
	return &Store{tasks: make([]domain.Task, 0, 16), nextID: 1}
}

// Seed replaces the contents with the bootstrap tasks and moves the id
// counter past the largest seeded id.
func (s *Store) Seed(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks[:0], tasks...)
	s.nextID = 1
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
}

func (s *Store) List() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(id int64) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, storage.ErrNotFound
}

func (s *Store) Create(title, description string, completed bool) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := domain.Task{
		ID:          s.nextID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Completed:   completed,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// Update replaces every mutable field of the task with the given id. The id
// itself is immutable.
func (s *Store) Update(id int64, title, description string, completed bool) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Title = strings.TrimSpace(title)
			s.tasks[i].Description = strings.TrimSpace(description)
			s.tasks[i].Completed = completed
			return s.tasks[i], nil
		}
	}
	return domain.Task{}, storage.ErrNotFound
}

// Delete removes the task with the given id and returns it. Deleted ids are
// never reassigned.
func (s *Store) Delete(id int64) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return t, nil
		}
	}
	return domain.Task{}, storage.ErrNotFound
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
