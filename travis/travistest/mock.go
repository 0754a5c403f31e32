package travistest

import (
	"context"
	"io"
	"iter"
	"strings"

	"github.com/Kargones/travis/travis"
)

// Compile-time проверки реализации интерфейсов
var (
	_ travis.API             = (*MockClient)(nil)
	_ travis.UserReader      = (*MockClient)(nil)
	_ travis.RepoReader      = (*MockClient)(nil)
	_ travis.BuildReader     = (*MockClient)(nil)
	_ travis.BuildController = (*MockClient)(nil)
	_ travis.JobReader       = (*MockClient)(nil)
	_ travis.LogReader       = (*MockClient)(nil)
	_ travis.EnvVarManager   = (*MockClient)(nil)
)

// MockClient — мок-реализация travis.API для тестирования.
// Использует функциональные поля для гибкой настройки поведения в тестах.
type MockClient struct {
	// UserReader
	CurrentUserFunc func(ctx context.Context) (*travis.User, error)

	// RepoReader
	ListReposFunc func(ctx context.Context, owner string, opts travis.RepoListOptions) (*travis.Page[travis.Repository], error)
	ReposFunc     func(ctx context.Context, owner string, opts travis.RepoListOptions) iter.Seq2[travis.Repository, error]
	GetRepoFunc   func(ctx context.Context, slug string) (*travis.Repository, error)

	// BuildReader
	ListBuildsFunc func(ctx context.Context, slug string, opts travis.BuildListOptions) (*travis.Page[travis.Build], error)
	BuildsFunc     func(ctx context.Context, slug string, opts travis.BuildListOptions) iter.Seq2[travis.Build, error]
	GetBuildFunc   func(ctx context.Context, id int64) (*travis.Build, error)

	// BuildController
	RestartBuildFunc func(ctx context.Context, id int64) (*travis.BuildAction, error)
	CancelBuildFunc  func(ctx context.Context, id int64) (*travis.BuildAction, error)

	// JobReader
	ListJobsFunc func(ctx context.Context, buildID int64) ([]travis.Job, error)
	GetJobFunc   func(ctx context.Context, id int64) (*travis.Job, error)

	// LogReader
	RawLogFunc func(ctx context.Context, jobID int64) (io.ReadCloser, error)

	// EnvVarManager
	ListEnvVarsFunc  func(ctx context.Context, slug string) ([]travis.EnvVar, error)
	GetEnvVarFunc    func(ctx context.Context, slug, id string) (*travis.EnvVar, error)
	CreateEnvVarFunc func(ctx context.Context, slug string, in travis.EnvVarInput) (*travis.EnvVar, error)
	UpdateEnvVarFunc func(ctx context.Context, slug, id string, patch travis.EnvVarPatch) (*travis.EnvVar, error)
	DeleteEnvVarFunc func(ctx context.Context, slug, id string) error
}

// NewMockClient создаёт MockClient с поведением по умолчанию.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// CurrentUser возвращает текущего пользователя.
// При отсутствии пользовательской функции возвращает тестового пользователя.
func (m *MockClient) CurrentUser(ctx context.Context) (*travis.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &travis.User{ID: 1, Login: "test-user", Name: "Test User"}, nil
}

// ListRepos возвращает страницу репозиториев.
// При отсутствии пользовательской функции возвращает пустую последнюю страницу.
func (m *MockClient) ListRepos(ctx context.Context, owner string, opts travis.RepoListOptions) (*travis.Page[travis.Repository], error) {
	if m.ListReposFunc != nil {
		return m.ListReposFunc(ctx, owner, opts)
	}
	return emptyPage[travis.Repository]("repositories"), nil
}

// Repos обходит репозитории владельца.
// При отсутствии пользовательской функции обходит результат ListRepos.
func (m *MockClient) Repos(ctx context.Context, owner string, opts travis.RepoListOptions) iter.Seq2[travis.Repository, error] {
	if m.ReposFunc != nil {
		return m.ReposFunc(ctx, owner, opts)
	}
	page, err := m.ListRepos(ctx, owner, opts)
	return pageSeq(page, err)
}

// GetRepo возвращает репозиторий по slug.
func (m *MockClient) GetRepo(ctx context.Context, slug string) (*travis.Repository, error) {
	if m.GetRepoFunc != nil {
		return m.GetRepoFunc(ctx, slug)
	}
	name := slug
	if i := strings.LastIndex(slug, "/"); i >= 0 {
		name = slug[i+1:]
	}
	return &travis.Repository{ID: 1, Slug: slug, Name: name, Active: true}, nil
}

// ListBuilds возвращает страницу сборок.
// При отсутствии пользовательской функции возвращает пустую последнюю страницу.
func (m *MockClient) ListBuilds(ctx context.Context, slug string, opts travis.BuildListOptions) (*travis.Page[travis.Build], error) {
	if m.ListBuildsFunc != nil {
		return m.ListBuildsFunc(ctx, slug, opts)
	}
	return emptyPage[travis.Build]("builds"), nil
}

// Builds обходит сборки репозитория.
func (m *MockClient) Builds(ctx context.Context, slug string, opts travis.BuildListOptions) iter.Seq2[travis.Build, error] {
	if m.BuildsFunc != nil {
		return m.BuildsFunc(ctx, slug, opts)
	}
	page, err := m.ListBuilds(ctx, slug, opts)
	return pageSeq(page, err)
}

// GetBuild возвращает сборку.
// При отсутствии пользовательской функции возвращает успешную сборку.
func (m *MockClient) GetBuild(ctx context.Context, id int64) (*travis.Build, error) {
	if m.GetBuildFunc != nil {
		return m.GetBuildFunc(ctx, id)
	}
	return &travis.Build{ID: id, Number: "1", State: travis.StatePassed}, nil
}

// RestartBuild перезапускает сборку.
func (m *MockClient) RestartBuild(ctx context.Context, id int64) (*travis.BuildAction, error) {
	if m.RestartBuildFunc != nil {
		return m.RestartBuildFunc(ctx, id)
	}
	return &travis.BuildAction{Type: "pending", Build: travis.BuildRef{ID: id}, StateChange: "restart"}, nil
}

// CancelBuild отменяет сборку.
func (m *MockClient) CancelBuild(ctx context.Context, id int64) (*travis.BuildAction, error) {
	if m.CancelBuildFunc != nil {
		return m.CancelBuildFunc(ctx, id)
	}
	return &travis.BuildAction{Type: "pending", Build: travis.BuildRef{ID: id}, StateChange: "cancel"}, nil
}

// ListJobs возвращает задания сборки.
// При отсутствии пользовательской функции возвращает пустой срез.
func (m *MockClient) ListJobs(ctx context.Context, buildID int64) ([]travis.Job, error) {
	if m.ListJobsFunc != nil {
		return m.ListJobsFunc(ctx, buildID)
	}
	return []travis.Job{}, nil
}

// GetJob возвращает задание.
func (m *MockClient) GetJob(ctx context.Context, id int64) (*travis.Job, error) {
	if m.GetJobFunc != nil {
		return m.GetJobFunc(ctx, id)
	}
	return &travis.Job{ID: id, Number: "1.1", State: travis.StatePassed}, nil
}

// RawLog возвращает лог задания.
// При отсутствии пользовательской функции возвращает пустой лог.
func (m *MockClient) RawLog(ctx context.Context, jobID int64) (io.ReadCloser, error) {
	if m.RawLogFunc != nil {
		return m.RawLogFunc(ctx, jobID)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

// ListEnvVars возвращает переменные окружения.
func (m *MockClient) ListEnvVars(ctx context.Context, slug string) ([]travis.EnvVar, error) {
	if m.ListEnvVarsFunc != nil {
		return m.ListEnvVarsFunc(ctx, slug)
	}
	return []travis.EnvVar{}, nil
}

// GetEnvVar возвращает переменную окружения.
func (m *MockClient) GetEnvVar(ctx context.Context, slug, id string) (*travis.EnvVar, error) {
	if m.GetEnvVarFunc != nil {
		return m.GetEnvVarFunc(ctx, slug, id)
	}
	return &travis.EnvVar{ID: id, Name: "TEST_VAR"}, nil
}

// CreateEnvVar создаёт переменную окружения.
// При отсутствии пользовательской функции возвращает переменную из входных данных.
func (m *MockClient) CreateEnvVar(ctx context.Context, slug string, in travis.EnvVarInput) (*travis.EnvVar, error) {
	if m.CreateEnvVarFunc != nil {
		return m.CreateEnvVarFunc(ctx, slug, in)
	}
	v := &travis.EnvVar{ID: "mock-id", Name: in.Name, Public: in.Public, Branch: in.Branch}
	if in.Public {
		v.Value = in.Value
	}
	return v, nil
}

// UpdateEnvVar обновляет переменную окружения.
func (m *MockClient) UpdateEnvVar(ctx context.Context, slug, id string, patch travis.EnvVarPatch) (*travis.EnvVar, error) {
	if m.UpdateEnvVarFunc != nil {
		return m.UpdateEnvVarFunc(ctx, slug, id, patch)
	}
	v := &travis.EnvVar{ID: id}
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Public != nil {
		v.Public = *patch.Public
	}
	return v, nil
}

// DeleteEnvVar удаляет переменную окружения.
func (m *MockClient) DeleteEnvVar(ctx context.Context, slug, id string) error {
	if m.DeleteEnvVarFunc != nil {
		return m.DeleteEnvVarFunc(ctx, slug, id)
	}
	return nil
}

func emptyPage[T any](typ string) *travis.Page[T] {
	return &travis.Page[T]{
		Type:       typ,
		Items:      []T{},
		Pagination: &travis.Pagination{IsFirst: true, IsLast: true},
	}
}

// pageSeq превращает одну страницу в итератор.
func pageSeq[T any](page *travis.Page[T], err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		if page == nil {
			return
		}
		for _, item := range page.Items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Seq возвращает итератор по заданным элементам. Удобен для BuildsFunc и ReposFunc.
func Seq[T any](items ...T) iter.Seq2[T, error] {
	return pageSeq(&travis.Page[T]{Items: items}, nil)
}

// ErrSeq возвращает итератор, который выдаёт элементы и затем ошибку.
func ErrSeq[T any](err error, items ...T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
		var zero T
		yield(zero, err)
	}
}
