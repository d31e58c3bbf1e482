package api

import (
	"github.com/lumiderm/lumiderm/internal/prompts"
	"github.com/lumiderm/lumiderm/internal/routines"
	"github.com/lumiderm/lumiderm/internal/tasks"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts  prompts.System
	Routines routines.System
	Tasks    tasks.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	routinesSystem := routines.New(
		runtime.Invoker,
		promptsSystem,
		runtime.Logger,
	)

	tasksSystem := tasks.New(
		runtime.Lifecycle.Context(),
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
		runtime.Storage,
		runtime.Invoker,
		promptsSystem,
		routinesSystem,
	)

	return &Domain{
		Prompts:  promptsSystem,
		Routines: routinesSystem,
		Tasks:    tasksSystem,
	}
}
