package app

import (
	"log"
	"net/http"

	"github.com/airtribe-projects/task-manager-api-akki772/internal/bootstrap"
	"github.com/airtribe-projects/task-manager-api-akki772/internal/config"
	httphandlers "github.com/airtribe-projects/task-manager-api-akki772/internal/handler/http"
	"github.com/airtribe-projects/task-manager-api-akki772/internal/storage/memory"
)

type App struct {
	Config config.Config
	Router http.Handler
	Store  *memory.Store
}

// New wires config, bootstrap seed, store and handlers. A failed seed load
// is logged and the store starts empty; startup never aborts on it.
func New(cfg config.Config) *App {
	store := memory.New()
	if tasks, err := bootstrap.Load(cfg.TasksFile); err != nil {
		log.Printf("seed load failed, starting with empty task list: %v", err)
	} else {
		store.Seed(tasks)
	}
	return &App{
		Config: cfg,
		Router: httphandlers.New(store),
		Store:  store,
	}
}
