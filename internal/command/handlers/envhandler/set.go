package envhandler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Kargones/travis/internal/command/handlers/shared"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/travis"
)

// SetData — результат env-set.
type SetData struct {
	Slug    string        `json:"slug"`
	Created bool          `json:"created"`
	EnvVar  travis.EnvVar `json:"env_var"`
}

// WriteText сообщает, создана переменная или обновлена.
func (d *SetData) WriteText(w io.Writer) error {
	verb := "обновлена"
	if d.Created {
		verb = "создана"
	}
	_, err := fmt.Fprintf(w, "Переменная %s=%s%s %s (id: %s)\n",
		d.EnvVar.Name, displayValue(d.EnvVar), branchSuffix(d.EnvVar), verb, d.EnvVar.ID)
	return err
}

// SetHandler обрабатывает env-set.
type SetHandler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.EnvVarManager
}

func (h *SetHandler) Name() string { return constants.ActEnvSet }

func (h *SetHandler) Description() string {
	return "Создать или обновить переменную окружения. --public делает значение видимым в логах, --branch ограничивает ветку"
}

func (h *SetHandler) Usage() string { return "<owner/name> <NAME> <value> [--public] [--branch b]" }

// Execute ищет переменную по имени и ветке: найденная обновляется PATCH,
// иначе создаётся POST.
func (h *SetHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return shared.Run(ctx, cfg, constants.ActEnvSet, func(ctx context.Context) (*shared.Outcome, error) {
		slug, err := slugArg(cfg, 3, h.Usage())
		if err != nil {
			return nil, err
		}
		name, value := cfg.Args[1], cfg.Args[2]
		if name == "" {
			return nil, apperrors.NewAppError(apperrors.ErrCommandUsage, "имя переменной не может быть пустым", nil)
		}
		public, branch := cfg.Flags.Public, cfg.Flags.Branch

		client, err := resolve(ctx, cfg, h.client)
		if err != nil {
			return nil, err
		}
		log := shared.Logger(cfg)

		vars, err := shared.Retry(ctx, cfg.Retry, log, func(ctx context.Context) ([]travis.EnvVar, error) {
			return client.ListEnvVars(ctx, slug)
		})
		if err != nil {
			return nil, err
		}

		existing := find(vars, name, branch)
		if existing == nil {
			log.Debug("Создание переменной окружения", slog.String("slug", slug), slog.String("name", name))
			created, err := shared.Retry(ctx, cfg.Retry, log, func(ctx context.Context) (*travis.EnvVar, error) {
				return client.CreateEnvVar(ctx, slug, travis.EnvVarInput{Name: name, Value: value, Public: public, Branch: branch})
			})
			if err != nil {
				return nil, err
			}
			return &shared.Outcome{Data: &SetData{Slug: slug, Created: true, EnvVar: *created}}, nil
		}

		log.Debug("Обновление переменной окружения",
			slog.String("slug", slug), slog.String("name", name), slog.String("id", existing.ID))
		updated, err := shared.Retry(ctx, cfg.Retry, log, func(ctx context.Context) (*travis.EnvVar, error) {
			return client.UpdateEnvVar(ctx, slug, existing.ID, travis.EnvVarPatch{Value: &value, Public: &public})
		})
		if err != nil {
			return nil, err
		}
		return &shared.Outcome{Data: &SetData{Slug: slug, EnvVar: *updated}}, nil
	})
}

// find возвращает переменную с тем же именем и веткой.
func find(vars []travis.EnvVar, name, branch string) *travis.EnvVar {
	for i := range vars {
		if vars[i].Name == name && vars[i].Branch == branch {
			return &vars[i]
		}
	}
	return nil
}
