// Package transport собирает цепочку travis.Transport для CLI:
// HTTP клиент с таймаутом, ограничение частоты на стороне клиента,
// метрики и трейсинг каждого запроса.
//
// Библиотека travis не повторяет запросы и не ограничивает частоту сама,
// всё это настраивается здесь и в обработчиках команд.
package transport
