package travis

// State — состояние сборки или задания Travis.
type State string

// Состояния сборок и заданий.
const (
	StateReceived State = "received"
	StateCreated  State = "created"
	StateQueued   State = "queued"
	StateStarted  State = "started"
	StateCanceled State = "canceled"
	StatePassed   State = "passed"
	StateFailed   State = "failed"
	StateErrored  State = "errored"
)

// Finished сообщает, завершена ли сборка (успешно или нет).
func (s State) Finished() bool {
	switch s {
	case StateCanceled, StatePassed, StateFailed, StateErrored:
		return true
	default:
		return false
	}
}

// Succeeded — true только для passed.
func (s State) Succeeded() bool {
	return s == StatePassed
}

// Valid сообщает, является ли значение известным состоянием.
func (s State) Valid() bool {
	switch s {
	case StateReceived, StateCreated, StateQueued, StateStarted,
		StateCanceled, StatePassed, StateFailed, StateErrored:
		return true
	default:
		return false
	}
}
