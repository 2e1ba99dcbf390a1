package cli

import (
	"github.com/kz2wd/time-tracker/internal/api"
)

// App represents the main CLI application
type App struct {
	api api.API
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API) *App {
	return &App{
		api: apiInstance,
	}
}
