package domain

// Task is the single domain record. IDs are assigned by the store and never
// reused; Title and Description are stored trimmed and non-empty.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
