package command

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// Ошибки регистрации.
var (
	ErrNilHandler    = errors.New("command: nil handler")
	ErrInvalidName   = errors.New("command: имя команды должно быть в kebab-case")
	ErrDuplicateName = errors.New("command: команда уже зарегистрирована")
)

var (
	registry = make(map[string]Handler)
	mu       sync.RWMutex

	// commandNamePattern — строгий kebab-case: начинается с буквы, без двойных и завершающих дефисов.
	commandNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
)

// Register добавляет обработчик в реестр.
func Register(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	name := h.Name()
	if !commandNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	registry[name] = h
	return nil
}

// Get возвращает обработчик по имени.
func Get(name string) (Handler, bool) {
	mu.RLock()
	defer mu.RUnlock()
	h, ok := registry[name]
	return h, ok
}

// Names возвращает отсортированные имена команд.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All возвращает обработчики, отсортированные по имени.
func All() []Handler {
	names := Names()
	mu.RLock()
	defer mu.RUnlock()
	result := make([]Handler, 0, len(names))
	for _, name := range names {
		if h, ok := registry[name]; ok {
			result = append(result, h)
		}
	}
	return result
}

// clearRegistry очищает реестр. Используется в тестах.
func clearRegistry() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Handler)
}
