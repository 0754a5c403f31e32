package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/pkg/apperrors"
)

// RequireArgs проверяет количество позиционных аргументов команды.
func RequireArgs(cfg *config.Config, n int, usage string) error {
	if len(cfg.Args) != n {
		return apperrors.NewAppError(apperrors.ErrCommandUsage,
			fmt.Sprintf("использование: travis %s %s", cfg.Command, usage), nil)
	}
	return nil
}

// ParseID разбирает числовой идентификатор сборки или задания.
func ParseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewAppError(apperrors.ErrCommandUsage,
			fmt.Sprintf("%s должен быть положительным числом: %q", kind, arg), nil)
	}
	return id, nil
}

// ValidateSlug проверяет формат owner/name.
func ValidateSlug(slug string) error {
	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return apperrors.NewAppError(apperrors.ErrCommandUsage,
			fmt.Sprintf("slug репозитория должен иметь вид owner/name: %q", slug), nil)
	}
	return nil
}
