package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	DocumentConfig struct {
		// IANA name of the source encoding, overrides BOM-less detection
		Encoding string `yaml:"encoding"`
		// code page for non UTF-8 file names in zip archives
		ArchiveCodePage string `yaml:"archive_codepage"`
		MaxSize         int64  `yaml:"max_size" validate:"gte=0"`
	}

	RenderConfig struct {
		Format               string              `yaml:"format" validate:"oneof=tree xml"`
		StrictColors         bool                `yaml:"strict_colors"`
		BorderRadiusFallback bool                `yaml:"border_radius_fallback"`
		Aliases              map[string][]string `yaml:"aliases" validate:"dive,keys,required,excludesall= ,endkeys,min=1"`
		Overwrite            bool                `yaml:"overwrite"`
		// size of vector path previews stored in debug report
		PreviewSize          int                 `yaml:"preview_size" validate:"gte=8,lte=1024"`
	}

	WatchConfig struct {
		Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Render    RenderConfig   `yaml:"render"`
		Watch     WatchConfig    `yaml:"watch"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if !process {
		return cfg, nil
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, err
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfiguration expands embedded configuration template to get defaults,
// then superimposes values from the file at the given path (if any) and
// validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	if data, err = os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if cfg, err = unmarshalConfig(data, cfg, true); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns expanded default configuration.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump returns configuration in YAML form.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
