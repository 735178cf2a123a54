package app

import (
	"whisper-vault/internal/api/server"
	"whisper-vault/internal/app/repository"
)

// Application is the assembled HTTP service.
type Application struct {
	Server     *server.Server
	Repository repository.TranscriptionDAO
}

// NewApplication creates a new Application
func NewApplication(srv *server.Server, dao repository.TranscriptionDAO) *Application {
	return &Application{
		Server:     srv,
		Repository: dao,
	}
}
