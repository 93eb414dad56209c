package config

import (
	"bytes"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"strings"
)

const (
	KeyInputPath      = "input.path"
	KeyOutputPath     = "output.path"
	KeyOutputFormat   = "output.format"
	KeyOutputLanguage = "output.language"
	KeyOutputPreview  = "output.preview"
	KeyArchiveDB      = "archive.db"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"

	EnvPrefix = "CUSTDESC"

	DefaultInputPath  = "web_clients_correct.csv"
	DefaultOutputPath = "customers_descriptions.txt"
)

type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Log     LogConfig     `mapstructure:"log"`
}

type InputConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type OutputConfig struct {
	Path     string `mapstructure:"path" validate:"required"`
	Format   string `mapstructure:"format" validate:"oneof=text txt csv excel xlsx"`
	Language string `mapstructure:"language" validate:"oneof=ru en"`
	Preview  int    `mapstructure:"preview" validate:"gte=0"`
}

type ArchiveConfig struct {
	// DB is the SQLite archive path; empty disables archiving.
	DB string `mapstructure:"db"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// BindEnv enables CUSTDESC_* environment overrides, e.g. CUSTDESC_INPUT_PATH.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# custdesc configuration
input:
  path: "web_clients_correct.csv"

output:
  path: "customers_descriptions.txt"
  # text | csv | excel
  format: "text"
  # ru | en
  language: "ru"
  preview: 3

archive:
  # SQLite file for run history; leave empty to disable
  db: ""

log:
  # debug | info | warn | error
  level: "warn"
  # text | json
  format: "text"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Output.Language = strings.ToLower(strings.TrimSpace(cfg.Output.Language))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyInputPath, DefaultInputPath)
	v.SetDefault(KeyOutputPath, DefaultOutputPath)
	v.SetDefault(KeyOutputFormat, "text")
	v.SetDefault(KeyOutputLanguage, "ru")
	v.SetDefault(KeyOutputPreview, 3)
	v.SetDefault(KeyArchiveDB, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
}
