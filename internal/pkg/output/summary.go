package output

// SummaryInfo — сводка ключевых метрик команды.
type SummaryInfo struct {
	KeyMetrics    []KeyMetric `json:"key_metrics,omitempty"`
	WarningsCount int         `json:"warnings_count"`
	Warnings      []string    `json:"warnings,omitempty"`
}

// KeyMetric — одна метрика сводки, например "Сборок" = "25".
type KeyMetric struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// NewSummaryInfo создаёт пустую сводку.
func NewSummaryInfo() *SummaryInfo {
	return &SummaryInfo{}
}

// AddMetric добавляет метрику и возвращает сводку для цепочки вызовов.
func (s *SummaryInfo) AddMetric(name, value, unit string) *SummaryInfo {
	s.KeyMetrics = append(s.KeyMetrics, KeyMetric{Name: name, Value: value, Unit: unit})
	return s
}

// AddWarning добавляет предупреждение.
func (s *SummaryInfo) AddWarning(msg string) *SummaryInfo {
	s.Warnings = append(s.Warnings, msg)
	s.WarningsCount++
	return s
}
