package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Poster pipeline
	OCR        OCRConfig
	Extraction ExtractionConfig
	Calendar   CalendarConfig
	Web        WebConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	MaxUploadMB int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OCRConfig configures the Tesseract engine.
type OCRConfig struct {
	Languages      []string
	TessdataPrefix string // empty = engine default
	PageSegMode    int
	Timeout        time.Duration
	MaxEngines     int
}

// ExtractionConfig bounds the request pipeline.
type ExtractionConfig struct {
	Timeout   time.Duration
	MaxTokens int
}

type CalendarConfig struct {
	Name      string
	Timezone  string // empty = floating local time
	ProductID string
}

type WebConfig struct {
	StaticDir string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // bound on the whole fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/poster-events/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/poster-events/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.MaxUploadMB = v.GetInt("http_server.max_upload_mb")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// OCR
	cfg.OCR.Languages = splitList(v.GetStringSlice("ocr.languages"))
	cfg.OCR.TessdataPrefix = v.GetString("ocr.tessdata_prefix")
	if prefix := os.Getenv("TESSDATA_PREFIX"); cfg.OCR.TessdataPrefix == "" && prefix != "" {
		cfg.OCR.TessdataPrefix = prefix
	}
	cfg.OCR.PageSegMode = v.GetInt("ocr.page_seg_mode")
	cfg.OCR.Timeout = v.GetDuration("ocr.timeout")
	cfg.OCR.MaxEngines = v.GetInt("ocr.max_engines")

	// Extraction
	cfg.Extraction.Timeout = v.GetDuration("extraction.timeout")
	cfg.Extraction.MaxTokens = v.GetInt("extraction.max_tokens")

	// Calendar export
	cfg.Calendar.Name = v.GetString("calendar.name")
	cfg.Calendar.Timezone = v.GetString("calendar.timezone")
	cfg.Calendar.ProductID = v.GetString("calendar.product_id")
	if cfg.Calendar.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Calendar.Timezone); err != nil {
			return nil, fmt.Errorf("calendar.timezone: %w", err)
		}
	}

	cfg.Web.StaticDir = v.GetString("web.static_dir")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	// Load provider configurations
	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Validate LLM config
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w - please check the llm.providers section of config.yaml", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.max_upload_mb", 10)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Poster pipeline defaults
	v.SetDefault("ocr.languages", []string{"rus"})
	v.SetDefault("ocr.page_seg_mode", 3)
	v.SetDefault("ocr.timeout", "30s")
	v.SetDefault("ocr.max_engines", 4)
	v.SetDefault("extraction.timeout", "90s")
	v.SetDefault("extraction.max_tokens", 1024)
	v.SetDefault("calendar.name", "My events")
	v.SetDefault("calendar.product_id", "-//poster-events//ics export//EN")
	v.SetDefault("web.static_dir", "./web/static")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", false)
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	if cfg.MaxTotalTimeout != "" {
		if _, err := time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return fmt.Errorf("max_total_timeout: %w", err)
		}
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// splitList accepts both YAML lists and comma or plus separated env values ("rus+eng").
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == '+' }) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
