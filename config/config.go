package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultBackendTimeout     = 30 * time.Second
	defaultSearchDebounce     = 400 * time.Millisecond
	defaultEmptyDebounce      = 100 * time.Millisecond
	defaultSearchPageSize     = 50
	defaultOrdersPageSize     = 25
	defaultHealthyMargin      = 18.0
	defaultPurchasingEmail    = "purchasing@justjeeps.com"
	localEnvFile              = ".env.local"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the upstream API that owns orders, products and purchase orders
	Backend BackendConfig `json:"backend" yaml:"backend"`

	Session SessionConfig `json:"session" yaml:"session"`

	Pricing PricingConfig `json:"pricing" yaml:"pricing"`

	Search SearchConfig `json:"search" yaml:"search"`

	Orders OrdersConfig `json:"orders" yaml:"orders"`

	// Cache configuration for the brand lookup cache (optional, in-memory when unset)
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Export configuration for spreadsheet storage (optional)
	Export *ExportConfig `json:"export" yaml:"export"`

	// PubSub configuration for audit event publishing (optional)
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines how the console reaches the backend API
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Requests per second allowed towards the backend, zero disables limiting
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`
}

// SessionConfig defines where the operator token is persisted
type SessionConfig struct {
	// Path to the token file, empty keeps the token in memory only
	TokenPath string `json:"tokenPath" yaml:"tokenPath"`
}

// PricingConfig defines the margin presentation policy
type PricingConfig struct {
	HealthyMarginPercent float64 `json:"healthyMarginPercent" yaml:"healthyMarginPercent"`
}

// SearchConfig defines catalog search debounce and paging
type SearchConfig struct {
	Debounce      time.Duration `json:"debounce" yaml:"debounce"`
	EmptyDebounce time.Duration `json:"emptyDebounce" yaml:"emptyDebounce"`
	PageSize      int           `json:"pageSize" yaml:"pageSize"`
}

// OrdersConfig defines order grid defaults
type OrdersConfig struct {
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// Storefront admin order URL, the entity id is appended
	AdminOrderURL string `json:"adminOrderUrl" yaml:"adminOrderUrl"`

	// Purchaser recorded on purchase orders when the session has no user
	DefaultPurchaserID int `json:"defaultPurchaserId" yaml:"defaultPurchaserId"`

	// Fallback recipient for supplier ETA requests
	PurchasingEmail string `json:"purchasingEmail" yaml:"purchasingEmail"`
}

// CacheConfig defines the Redis connection for the brand cache
type CacheConfig struct {
	RedisAddr string        `json:"redisAddr" yaml:"redisAddr"`
	Password  string        `json:"password" yaml:"password"`
	DB        int           `json:"db" yaml:"db"`
	TTL       time.Duration `json:"ttl" yaml:"ttl"`
}

// ExportConfig defines where generated workbooks are stored
type ExportConfig struct {
	// gocloud.dev bucket URL, e.g. file:///var/exports or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// PubSubConfig defines Pub/Sub configuration for audit event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// BACKEND_BASEURL -> backend.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	loadLocalEnvFile()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadLocalEnvFile loads .env.local into the process environment when APP_ENV is "local".
// Variables already set in the environment win.
func loadLocalEnvFile() {
	if os.Getenv("APP_ENV") != "local" {
		return
	}
	_ = godotenv.Load(localEnvFile)
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Backend.BaseURL), "/")
	if cfg.Backend.BaseURL == "" {
		return errors.New("backend.baseUrl is required")
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}
	if cfg.Backend.RateLimit > 0 && cfg.Backend.Burst <= 0 {
		cfg.Backend.Burst = 1
	}

	if cfg.Pricing.HealthyMarginPercent <= 0 {
		cfg.Pricing.HealthyMarginPercent = defaultHealthyMargin
	}

	if cfg.Search.Debounce <= 0 {
		cfg.Search.Debounce = defaultSearchDebounce
	}
	if cfg.Search.EmptyDebounce <= 0 {
		cfg.Search.EmptyDebounce = defaultEmptyDebounce
	}
	if cfg.Search.PageSize <= 0 {
		cfg.Search.PageSize = defaultSearchPageSize
	}

	if cfg.Orders.PageSize <= 0 {
		cfg.Orders.PageSize = defaultOrdersPageSize
	}
	if cfg.Orders.PurchasingEmail == "" {
		cfg.Orders.PurchasingEmail = defaultPurchasingEmail
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
