package travis

import "time"

// User — текущий пользователь (GET /user).
type User struct {
	ID        int64      `json:"id"`
	Login     string     `json:"login"`
	Name      string     `json:"name"`
	GithubID  int64      `json:"github_id"`
	AvatarURL string     `json:"avatar_url"`
	Email     string     `json:"email,omitempty"`
	IsSyncing bool       `json:"is_syncing"`
	SyncedAt  *time.Time `json:"synced_at,omitempty"`
}

// Owner — владелец репозитория (пользователь или организация).
type Owner struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Branch — ссылка на ветку.
type Branch struct {
	Name string `json:"name"`
}

// Repository — репозиторий Travis.
type Repository struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	Description    string  `json:"description,omitempty"`
	GithubID       int64   `json:"github_id,omitempty"`
	GithubLanguage string  `json:"github_language,omitempty"`
	Active         bool    `json:"active"`
	Private        bool    `json:"private"`
	Starred        bool    `json:"starred"`
	Owner          *Owner  `json:"owner,omitempty"`
	DefaultBranch  *Branch `json:"default_branch,omitempty"`
}

// Commit — коммит, для которого запущена сборка.
type Commit struct {
	ID          int64      `json:"id"`
	SHA         string     `json:"sha"`
	Ref         string     `json:"ref,omitempty"`
	Message     string     `json:"message"`
	CompareURL  string     `json:"compare_url,omitempty"`
	CommittedAt *time.Time `json:"committed_at,omitempty"`
}

// JobRef — минимальное представление задания внутри сборки.
type JobRef struct {
	ID int64 `json:"id"`
}

// BuildRef — минимальное представление сборки внутри задания.
type BuildRef struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	State  State  `json:"state"`
}

// Build — сборка Travis.
type Build struct {
	ID                int64       `json:"id"`
	Number            string      `json:"number"`
	State             State       `json:"state"`
	PreviousState     State       `json:"previous_state,omitempty"`
	Duration          int64       `json:"duration,omitempty"`
	EventType         string      `json:"event_type"`
	PullRequestTitle  string      `json:"pull_request_title,omitempty"`
	PullRequestNumber int64       `json:"pull_request_number,omitempty"`
	StartedAt         *time.Time  `json:"started_at,omitempty"`
	FinishedAt        *time.Time  `json:"finished_at,omitempty"`
	UpdatedAt         *time.Time  `json:"updated_at,omitempty"`
	Private           bool        `json:"private"`
	Repository        *Repository `json:"repository,omitempty"`
	Branch            *Branch     `json:"branch,omitempty"`
	Commit            *Commit     `json:"commit,omitempty"`
	Jobs              []JobRef    `json:"jobs,omitempty"`
	CreatedBy         *Owner      `json:"created_by,omitempty"`
}

// Stage — стадия сборки.
type Stage struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
	State  State  `json:"state"`
}

// Job — задание сборки.
type Job struct {
	ID           int64       `json:"id"`
	Number       string      `json:"number"`
	State        State       `json:"state"`
	AllowFailure bool        `json:"allow_failure"`
	Queue        string      `json:"queue,omitempty"`
	StartedAt    *time.Time  `json:"started_at,omitempty"`
	FinishedAt   *time.Time  `json:"finished_at,omitempty"`
	CreatedAt    *time.Time  `json:"created_at,omitempty"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
	Build        *BuildRef   `json:"build,omitempty"`
	Repository   *Repository `json:"repository,omitempty"`
	Commit       *Commit     `json:"commit,omitempty"`
	Stage        *Stage      `json:"stage,omitempty"`
	Owner        *Owner      `json:"owner,omitempty"`
}

// BuildAction — ответ на restart/cancel сборки.
type BuildAction struct {
	Type        string   `json:"@type"`
	Build       BuildRef `json:"build"`
	StateChange string   `json:"state_change"`
}

// EnvVar — переменная окружения репозитория.
// Value заполняется Travis только для публичных переменных.
type EnvVar struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Value  string `json:"value,omitempty"`
	Public bool   `json:"public"`
	Branch string `json:"branch,omitempty"`
}
