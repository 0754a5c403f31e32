package config

import "github.com/Kargones/travis/internal/pkg/logging"

// LoggingConfig — настройки логирования, переменные TRAVIS_LOG_*.
type LoggingConfig struct {
	Level    string `yaml:"level" env:"TRAVIS_LOG_LEVEL" env-default:"info"`
	Format   string `yaml:"format" env:"TRAVIS_LOG_FORMAT" env-default:"text"`
	Output   string `yaml:"output" env:"TRAVIS_LOG_OUTPUT" env-default:"stderr"`
	FilePath string `yaml:"filePath" env:"TRAVIS_LOG_FILE_PATH" env-default:"/var/log/travis.log"`

	MaxSize    int `yaml:"maxSize" env:"TRAVIS_LOG_MAX_SIZE" env-default:"100"`
	MaxBackups int `yaml:"maxBackups" env:"TRAVIS_LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int `yaml:"maxAge" env:"TRAVIS_LOG_MAX_AGE" env-default:"7"`

	// NoCompress отключает gzip архивов. Инвертирован: cleanenv не отличает
	// false из YAML от отсутствующего значения.
	NoCompress bool `yaml:"noCompress" env:"TRAVIS_LOG_NO_COMPRESS"`
}

// ToLogging конвертирует секцию в logging.Config.
func (lc LoggingConfig) ToLogging() logging.Config {
	return logging.Config{
		Level:      lc.Level,
		Format:     lc.Format,
		Output:     lc.Output,
		FilePath:   lc.FilePath,
		MaxSize:    lc.MaxSize,
		MaxBackups: lc.MaxBackups,
		MaxAge:     lc.MaxAge,
		Compress:   !lc.NoCompress,
	}
}
