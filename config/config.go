package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultOSRMBaseURL    = "https://router.project-osrm.org/route/v1/driving"
	defaultOSRMTimeout    = 5 * time.Second
	defaultOSRMMaxRetries = 2
	defaultOSRMBaseDelay  = 500 * time.Millisecond

	defaultDraftsDriver     = "sqlite"
	defaultDraftsSQLitePath = "drafts.db"

	defaultPongWait = 60 * time.Second
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Routing configuration for the external routing API
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// Drafts configuration for the journey draft session store
	Drafts *DraftsConfig `json:"drafts" yaml:"drafts"`

	// PubSub configuration for journey step events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// LiveRoute configuration for websocket route sessions
	LiveRoute *LiveRouteConfig `json:"liveRoute" yaml:"liveRoute"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RoutingConfig defines routing configuration
type RoutingConfig struct {
	OSRM OSRMConfig `json:"osrm" yaml:"osrm"`
}

// OSRMConfig defines the OSRM-compatible routing endpoint and its resilience settings
type OSRMConfig struct {
	// Base URL up to and including the profile, e.g. https://router.project-osrm.org/route/v1/driving
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Per-attempt request timeout
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Retries after the first attempt (defaults to 2)
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`

	// Backoff base delay; attempt n waits baseDelay * 2^n
	BaseDelay time.Duration `json:"baseDelay" yaml:"baseDelay"`
}

// DraftsConfig defines where journey drafts are stored
type DraftsConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the database file used by the sqlite driver
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "amqp"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP broker URL (for amqp provider)
	AMQPURL string `json:"amqpUrl" yaml:"amqpUrl"`

	// AMQP topic exchange name (for amqp provider)
	Exchange string `json:"exchange" yaml:"exchange"`
}

// LiveRouteConfig defines websocket keep-alive settings
type LiveRouteConfig struct {
	PongWait   time.Duration `json:"pongWait" yaml:"pongWait"`
	PingPeriod time.Duration `json:"pingPeriod" yaml:"pingPeriod"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the optional sections so the rest of the service never sees nil config.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Routing == nil {
		cfg.Routing = &RoutingConfig{}
	}
	osrm := &cfg.Routing.OSRM
	if osrm.BaseURL == "" {
		osrm.BaseURL = defaultOSRMBaseURL
	}
	if osrm.Timeout <= 0 {
		osrm.Timeout = defaultOSRMTimeout
	}
	if osrm.MaxRetries <= 0 {
		osrm.MaxRetries = defaultOSRMMaxRetries
	}
	if osrm.BaseDelay <= 0 {
		osrm.BaseDelay = defaultOSRMBaseDelay
	}

	if cfg.Drafts == nil {
		cfg.Drafts = &DraftsConfig{}
	}
	if cfg.Drafts.Driver == "" {
		cfg.Drafts.Driver = defaultDraftsDriver
	}
	if cfg.Drafts.SQLitePath == "" {
		cfg.Drafts.SQLitePath = defaultDraftsSQLitePath
	}

	if cfg.LiveRoute == nil {
		cfg.LiveRoute = &LiveRouteConfig{}
	}
	if cfg.LiveRoute.PongWait <= 0 {
		cfg.LiveRoute.PongWait = defaultPongWait
	}
	if cfg.LiveRoute.PingPeriod <= 0 || cfg.LiveRoute.PingPeriod >= cfg.LiveRoute.PongWait {
		cfg.LiveRoute.PingPeriod = cfg.LiveRoute.PongWait * 9 / 10
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
