// Package travistest предоставляет тестовые утилиты для пакета travis:
// мок-реализацию travis.API, заглушки Transport и конструкторы ответов.
package travistest
