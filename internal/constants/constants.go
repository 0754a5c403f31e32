// Package constants содержит константы CLI travis.
package constants

// Версия сборки. Перезаписывается через -ldflags:
//
//	go build -ldflags "-X github.com/Kargones/travis/internal/constants.Version=1.2.0"
var (
	Version    = "dev"
	CommitHash = "unknown"
)

// APIVersion — версия формата output.Result.
const APIVersion = "v1"

// Константы действий (команд)
const (
	ActHelp         = "help"
	ActVersion      = "version"
	ActWhoami       = "whoami"
	ActRepos        = "repos"
	ActBuilds       = "builds"
	ActBuildRestart = "build-restart"
	ActBuildCancel  = "build-cancel"
	ActJobs         = "jobs"
	ActJobLog       = "job-log"
	ActEnvList      = "env-list"
	ActEnvSet       = "env-set"
	ActEnvDelete    = "env-delete"
)

// Коды завершения процесса.
const (
	ExitOK      = 0
	ExitUsage   = 2
	ExitConfig  = 5
	ExitFailure = 8
)

// Константы сообщений приложения
const (
	MsgAppExit       = "Завершение работы программы"
	MsgErrProcessing = "Обработка ошибки"
)
