// Package wire provides dependency injection for the checkdigit application.
// It creates singleton services with lazy initialization.
package wire

import (
	"sync"

	"github.com/example/checkdigit/internal/app"
	"github.com/example/checkdigit/internal/core/scheme"
	"github.com/example/checkdigit/internal/ports/primary"
)

var (
	methodService primary.MethodService
	numberService primary.NumberService
	once          sync.Once
)

// MethodService returns the singleton MethodService instance.
func MethodService() primary.MethodService {
	once.Do(initServices)
	return methodService
}

// NumberService returns the singleton NumberService instance.
func NumberService() primary.NumberService {
	once.Do(initServices)
	return numberService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	registry := scheme.DefaultRegistry()

	methodService = app.NewMethodService(registry)
	numberService = app.NewNumberService(registry)
}
