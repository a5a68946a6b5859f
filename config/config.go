package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"courtcrowd/internal/domain/constants"

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

	defaultFallbackRadiusMeters = 15.0
	defaultMinDistanceMeters    = 10.0
	defaultBatchInterval        = 60 * time.Second
	defaultCourtRefresh         = 5 * time.Minute
	defaultFixRateLimit         = 1.0
	defaultFixBurst             = 5
	defaultDeviceTimeout        = 30 * time.Second
	defaultEvaluationWorkers    = 8
	defaultGridCellSizeKm       = 1.0
	defaultRadarBaseURL         = "https://api.radar.io"
	defaultRadarTimeout         = 10 * time.Second
	defaultRedisCourtKey        = "courts:geo"
	defaultRabbitMQExchange     = "courtcrowd.presence"
	defaultRabbitMQQueue        = "presence-confirmations"
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

	// Supabase configuration for access token validation
	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	// Radar configuration for the geofencing SDK
	Radar *RadarConfig `json:"radar" yaml:"radar"`

	// Geofencing tunables for the coordinator and the background fallback
	Geofencing *GeofencingConfig `json:"geofencing" yaml:"geofencing"`

	// CourtIndex configuration for proximity lookups
	CourtIndex *CourtIndexConfig `json:"courtIndex" yaml:"courtIndex"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SupabaseConfig defines how access tokens issued by Supabase Auth are verified
type SupabaseConfig struct {
	// HS256 secret shared with the Supabase project
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// Expected audience claim, usually "authenticated"
	Audience string `json:"audience" yaml:"audience"`
}

// RadarConfig defines Radar geofencing configuration
type RadarConfig struct {
	// Enable Radar; when disabled or without a key the SDK probes as unavailable
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Secret API key used for server-side calls
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Base URL of the Radar API
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Signing secret used to verify webhook deliveries
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`

	// Timeout for Radar API calls
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// GeofencingConfig defines geofencing behaviour
type GeofencingConfig struct {
	// Start tracking on session start when permission is already granted
	AutoStart bool `json:"autoStart" yaml:"autoStart"`

	// Radius in meters used by the background proximity scan
	FallbackRadiusMeters float64 `json:"fallbackRadiusMeters" yaml:"fallbackRadiusMeters"`

	// Minimum movement in meters between accepted background fixes
	MinDistanceMeters float64 `json:"minDistanceMeters" yaml:"minDistanceMeters"`

	// Interval at which accepted background fixes are evaluated
	BatchInterval time.Duration `json:"batchInterval" yaml:"batchInterval"`

	// Interval at which the court index is rebuilt from the database
	CourtRefreshInterval time.Duration `json:"courtRefreshInterval" yaml:"courtRefreshInterval"`

	// Per-user fix ingestion rate (fixes per second) and burst
	FixRateLimit float64 `json:"fixRateLimit" yaml:"fixRateLimit"`
	FixBurst     int     `json:"fixBurst" yaml:"fixBurst"`

	// Maximum time to wait for a device to answer a permission or location request
	DeviceTimeout time.Duration `json:"deviceTimeout" yaml:"deviceTimeout"`

	// Number of users evaluated concurrently per batch
	EvaluationWorkers int `json:"evaluationWorkers" yaml:"evaluationWorkers"`
}

// CourtIndexConfig defines the court proximity index
type CourtIndexConfig struct {
	// Provider type: "memory" for the in-process grid or "redis" for Redis GEO
	Provider string `json:"provider" yaml:"provider"`

	// Grid cell size in kilometers for the memory provider
	GridCellSizeKm float64 `json:"gridCellSizeKm" yaml:"gridCellSizeKm"`

	Redis RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the Redis connection used by the redis court index
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Key      string `json:"key" yaml:"key"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "kafka" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of Pub/Sub push OIDC tokens (worker)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	Kafka    KafkaConfig    `json:"kafka" yaml:"kafka"`
	RabbitMQ RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`
}

// KafkaConfig defines the Kafka topic used by the kafka provider
type KafkaConfig struct {
	Brokers []string `json:"brokers" yaml:"brokers"`
	Topic   string   `json:"topic" yaml:"topic"`
	GroupID string   `json:"groupId" yaml:"groupId"`
}

// RabbitMQConfig defines the topic exchange used by the rabbitmq provider
type RabbitMQConfig struct {
	URL      string `json:"url" yaml:"url"`
	Exchange string `json:"exchange" yaml:"exchange"`

	// Durable queue the worker consumes confirmations from
	Queue string `json:"queue" yaml:"queue"`
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
				mapstructure.StringToSliceHookFunc(","),
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills unset tunables so that every optional section is non-nil.
func (c *Config) applyDefaults() {
	if c.Supabase == nil {
		c.Supabase = &SupabaseConfig{}
	}

	if c.Radar == nil {
		c.Radar = &RadarConfig{}
	}
	if c.Radar.BaseURL == "" {
		c.Radar.BaseURL = defaultRadarBaseURL
	}
	if c.Radar.Timeout <= 0 {
		c.Radar.Timeout = defaultRadarTimeout
	}

	if c.Geofencing == nil {
		c.Geofencing = &GeofencingConfig{}
	}
	g := c.Geofencing
	if g.FallbackRadiusMeters <= 0 {
		g.FallbackRadiusMeters = defaultFallbackRadiusMeters
	}
	if g.MinDistanceMeters <= 0 {
		g.MinDistanceMeters = defaultMinDistanceMeters
	}
	if g.BatchInterval <= 0 {
		g.BatchInterval = defaultBatchInterval
	}
	if g.CourtRefreshInterval <= 0 {
		g.CourtRefreshInterval = defaultCourtRefresh
	}
	if g.FixRateLimit <= 0 {
		g.FixRateLimit = defaultFixRateLimit
	}
	if g.FixBurst <= 0 {
		g.FixBurst = defaultFixBurst
	}
	if g.DeviceTimeout <= 0 {
		g.DeviceTimeout = defaultDeviceTimeout
	}
	if g.EvaluationWorkers <= 0 {
		g.EvaluationWorkers = defaultEvaluationWorkers
	}

	if c.CourtIndex == nil {
		c.CourtIndex = &CourtIndexConfig{}
	}
	if c.CourtIndex.Provider == "" {
		c.CourtIndex.Provider = constants.CourtIndexProviderMemory
	}
	if c.CourtIndex.GridCellSizeKm <= 0 {
		c.CourtIndex.GridCellSizeKm = defaultGridCellSizeKm
	}
	if c.CourtIndex.Redis.Key == "" {
		c.CourtIndex.Redis.Key = defaultRedisCourtKey
	}

	if c.PubSub == nil {
		c.PubSub = &PubSubConfig{}
	}
	if c.PubSub.RabbitMQ.Exchange == "" {
		c.PubSub.RabbitMQ.Exchange = defaultRabbitMQExchange
	}
	if c.PubSub.RabbitMQ.Queue == "" {
		c.PubSub.RabbitMQ.Queue = defaultRabbitMQQueue
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
