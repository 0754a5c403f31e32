package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// flagValues — значения глобальных флагов до наложения на Config.
type flagValues struct {
	configPath  string
	pro         bool
	endpoint    string
	format      string
	token       string
	githubToken string
	logLevel    string
	cmd         CommandFlags
}

// NewFlagSet создаёт набор флагов CLI. Флаги допускаются в любом месте командной строки.
func NewFlagSet() *pflag.FlagSet {
	fs, _ := newFlagSet()
	return fs
}

func newFlagSet() (*pflag.FlagSet, *flagValues) {
	v := &flagValues{}
	fs := pflag.NewFlagSet("travis", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(true)

	fs.StringVarP(&v.configPath, "config", "c", "", "путь к YAML файлу конфигурации (TRAVIS_CONFIG)")
	fs.BoolVar(&v.pro, "pro", false, "использовать api.travis-ci.com (TRAVIS_PRO)")
	fs.StringVar(&v.endpoint, "endpoint", "", "базовый URL API для Travis Enterprise (TRAVIS_ENDPOINT)")
	fs.StringVarP(&v.format, "format", "f", "", "формат вывода: text или json (TRAVIS_OUTPUT_FORMAT)")
	fs.StringVar(&v.token, "token", "", "токен Travis API (TRAVIS_TOKEN)")
	fs.StringVar(&v.githubToken, "github-token", "", "токен GitHub для обмена (TRAVIS_GITHUB_TOKEN)")
	fs.StringVar(&v.logLevel, "log-level", "", "уровень логирования (TRAVIS_LOG_LEVEL)")

	fs.IntVarP(&v.cmd.Limit, "limit", "n", 0, "размер страницы для repos и builds")
	fs.BoolVar(&v.cmd.All, "all", false, "обойти все страницы")
	fs.StringVar(&v.cmd.Branch, "branch", "", "фильтр builds по ветке")
	fs.StringVar(&v.cmd.State, "state", "", "фильтр builds по состоянию")
	fs.BoolVar(&v.cmd.Public, "public", false, "env-set: значение видно в логах сборки")
	fs.BoolVarP(&v.cmd.Help, "help", "h", false, "показать справку")

	return fs, v
}

// apply накладывает явно заданные флаги поверх конфигурации.
func (v *flagValues) apply(fs *pflag.FlagSet, cfg *Config) {
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}
	set("pro", func() { cfg.Travis.Pro = v.pro })
	set("endpoint", func() { cfg.Travis.Endpoint = v.endpoint })
	set("format", func() { cfg.Output.Format = v.format })
	set("token", func() { cfg.Travis.Token = v.token })
	set("github-token", func() { cfg.Travis.GithubToken = v.githubToken })
	set("log-level", func() { cfg.Logging.Level = v.logLevel })
	cfg.Flags = v.cmd
}

// PrintDefaults печатает описание флагов в w.
func PrintDefaults(w io.Writer) {
	fs := NewFlagSet()
	fs.SetOutput(w)
	if _, err := fmt.Fprintln(w, "Флаги:"); err != nil {
		return
	}
	fs.PrintDefaults()
}
