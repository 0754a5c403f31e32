// Package command содержит интерфейс команды CLI и реестр команд.
// Обработчики регистрируются явно через handlers.RegisterAll.
package command

import (
	"context"

	"github.com/Kargones/travis/internal/config"
)

// Handler — обработчик команды CLI.
type Handler interface {
	// Name — имя команды в kebab-case, совпадает с constants.Act*.
	Name() string

	// Description — однострочное описание для help.
	Description() string

	// Usage — синтаксис аргументов, например "<slug> <name> <value> [--public]".
	Usage() string

	// Execute выполняет команду и пишет результат в stdout.
	Execute(ctx context.Context, cfg *config.Config) error
}
