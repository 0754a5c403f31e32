package travis

import (
	"context"
	"io"
	"iter"
)

// UserReader — операции с текущим пользователем.
type UserReader interface {
	CurrentUser(ctx context.Context) (*User, error)
}

// RepoReader — чтение репозиториев.
type RepoReader interface {
	ListRepos(ctx context.Context, owner string, opts RepoListOptions) (*Page[Repository], error)
	Repos(ctx context.Context, owner string, opts RepoListOptions) iter.Seq2[Repository, error]
	GetRepo(ctx context.Context, slug string) (*Repository, error)
}

// BuildReader — чтение сборок.
type BuildReader interface {
	ListBuilds(ctx context.Context, slug string, opts BuildListOptions) (*Page[Build], error)
	Builds(ctx context.Context, slug string, opts BuildListOptions) iter.Seq2[Build, error]
	GetBuild(ctx context.Context, id int64) (*Build, error)
}

// BuildController — управление сборками.
type BuildController interface {
	RestartBuild(ctx context.Context, id int64) (*BuildAction, error)
	CancelBuild(ctx context.Context, id int64) (*BuildAction, error)
}

// JobReader — чтение заданий.
type JobReader interface {
	ListJobs(ctx context.Context, buildID int64) ([]Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
}

// LogReader — чтение логов заданий.
type LogReader interface {
	RawLog(ctx context.Context, jobID int64) (io.ReadCloser, error)
}

// EnvVarManager — управление переменными окружения репозитория.
type EnvVarManager interface {
	ListEnvVars(ctx context.Context, slug string) ([]EnvVar, error)
	GetEnvVar(ctx context.Context, slug, id string) (*EnvVar, error)
	CreateEnvVar(ctx context.Context, slug string, in EnvVarInput) (*EnvVar, error)
	UpdateEnvVar(ctx context.Context, slug, id string, patch EnvVarPatch) (*EnvVar, error)
	DeleteEnvVar(ctx context.Context, slug, id string) error
}

// API — полный набор типизированных операций Travis.
// Потребители зависят от минимального подинтерфейса.
type API interface {
	UserReader
	RepoReader
	BuildReader
	BuildController
	JobReader
	LogReader
	EnvVarManager
}

// Compile-time проверка что Client реализует API.
var _ API = (*Client)(nil)
