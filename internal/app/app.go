package app

import (
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/routes"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/repository"
)

// App bundles the wired application dependencies. The store is exposed so
// the caller can run schema initialization before serving and close the
// connection on shutdown.
type App struct {
	Services *routes.ServiceContainer
	Store    repository.TranscriptDAO
}

// NewApp creates a new App from its parts.
func NewApp(services *routes.ServiceContainer, store repository.TranscriptDAO) *App {
	return &App{
		Services: services,
		Store:    store,
	}
}
