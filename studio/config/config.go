/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"time"

	"d7y.io/studio/internal/job"
)

type Config struct {
	// Console prints logs to stdout instead of log files.
	Console bool `yaml:"console" mapstructure:"console"`

	// Verbose enables debug logs and the monitor.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// PProfPort is the pprof and statsview port, -1 disables it.
	PProfPort int `yaml:"pprofPort" mapstructure:"pprofPort"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Database configuration.
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`

	// Cache configuration.
	Cache CacheConfig `yaml:"cache" mapstructure:"cache"`

	// Job configuration.
	Job JobConfig `yaml:"job" mapstructure:"job"`

	// Compute service configuration.
	Compute ComputeConfig `yaml:"compute" mapstructure:"compute"`

	// Notification configuration.
	Notification NotificationConfig `yaml:"notification" mapstructure:"notification"`

	// Upload configuration.
	Upload UploadConfig `yaml:"upload" mapstructure:"upload"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// ListenIP is listen ip, like: 0.0.0.0, 192.168.0.1.
	ListenIP net.IP `yaml:"listenIP" mapstructure:"listenIP"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// PublicAddr is the base URL the compute worker calls back.
	PublicAddr string `yaml:"publicAddr" mapstructure:"publicAddr"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// DataDir stores uploaded datasets.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`
}

type DatabaseConfig struct {
	// Database type, mysql, mariadb or postgres.
	Type string `yaml:"type" mapstructure:"type"`

	// Mysql configuration.
	Mysql MysqlConfig `yaml:"mysql" mapstructure:"mysql"`

	// Postgres configuration.
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`

	// Redis configuration.
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
}

type MysqlConfig struct {
	User      string `yaml:"user" mapstructure:"user"`
	Password  string `yaml:"password" mapstructure:"password"`
	Host      string `yaml:"host" mapstructure:"host"`
	Port      int    `yaml:"port" mapstructure:"port"`
	DBName    string `yaml:"dbname" mapstructure:"dbname"`
	TLSConfig string `yaml:"tlsConfig" mapstructure:"tlsConfig"`
	Migrate   bool   `yaml:"migrate" mapstructure:"migrate"`
}

type PostgresConfig struct {
	User                 string `yaml:"user" mapstructure:"user"`
	Password             string `yaml:"password" mapstructure:"password"`
	Host                 string `yaml:"host" mapstructure:"host"`
	Port                 int    `yaml:"port" mapstructure:"port"`
	DBName               string `yaml:"dbname" mapstructure:"dbname"`
	SSLMode              string `yaml:"sslMode" mapstructure:"sslMode"`
	PreferSimpleProtocol bool   `yaml:"preferSimpleProtocol" mapstructure:"preferSimpleProtocol"`
	Timezone             string `yaml:"timezone" mapstructure:"timezone"`
	Migrate              bool   `yaml:"migrate" mapstructure:"migrate"`
}

type RedisConfig struct {
	Addrs      []string `yaml:"addrs" mapstructure:"addrs"`
	MasterName string   `yaml:"masterName" mapstructure:"masterName"`
	Username   string   `yaml:"username" mapstructure:"username"`
	Password   string   `yaml:"password" mapstructure:"password"`
	DB         int      `yaml:"db" mapstructure:"db"`
	BrokerDB   int      `yaml:"brokerDB" mapstructure:"brokerDB"`
	BackendDB  int      `yaml:"backendDB" mapstructure:"backendDB"`
}

type CacheConfig struct {
	Redis RedisCacheConfig `yaml:"redis" mapstructure:"redis"`
	Local LocalCacheConfig `yaml:"local" mapstructure:"local"`
}

type RedisCacheConfig struct {
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type LocalCacheConfig struct {
	Size int           `yaml:"size" mapstructure:"size"`
	TTL  time.Duration `yaml:"ttl" mapstructure:"ttl"`

	// Channel is the redis channel broadcasting evictions to every replica.
	Channel string `yaml:"channel" mapstructure:"channel"`
}

type JobConfig struct {
	// Queue is the worker pool suffix of the compute queue.
	Queue string `yaml:"queue" mapstructure:"queue"`

	EdaTimeout        time.Duration `yaml:"edaTimeout" mapstructure:"edaTimeout"`
	TrainTimeout      time.Duration `yaml:"trainTimeout" mapstructure:"trainTimeout"`
	HypothesisTimeout time.Duration `yaml:"hypothesisTimeout" mapstructure:"hypothesisTimeout"`
	FlowTimeout       time.Duration `yaml:"flowTimeout" mapstructure:"flowTimeout"`

	// Polling of job states in the result backend.
	Polling PollingConfig `yaml:"polling" mapstructure:"polling"`
}

type PollingConfig struct {
	InitBackoff float64 `yaml:"initBackoff" mapstructure:"initBackoff"`
	MaxBackoff  float64 `yaml:"maxBackoff" mapstructure:"maxBackoff"`
}

type ComputeConfig struct {
	// Addr is the base URL of the compute service.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// Timeout of one request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// RetryMax is the number of retries after a failed request.
	RetryMax int `yaml:"retryMax" mapstructure:"retryMax"`
}

type NotificationConfig struct {
	// Channel is the redis pub/sub channel shared by replicas.
	Channel string `yaml:"channel" mapstructure:"channel"`

	WriteTimeout   time.Duration `yaml:"writeTimeout" mapstructure:"writeTimeout"`
	PongTimeout    time.Duration `yaml:"pongTimeout" mapstructure:"pongTimeout"`
	PingPeriod     time.Duration `yaml:"pingPeriod" mapstructure:"pingPeriod"`
	MaxMessageSize int64         `yaml:"maxMessageSize" mapstructure:"maxMessageSize"`
	SendBufferSize int           `yaml:"sendBufferSize" mapstructure:"sendBufferSize"`
}

type UploadConfig struct {
	// MaxSize is the largest accepted dataset in bytes.
	MaxSize int64 `yaml:"maxSize" mapstructure:"maxSize"`

	// AllowedExtensions are the accepted dataset extensions without dot.
	AllowedExtensions []string `yaml:"allowedExtensions" mapstructure:"allowedExtensions"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		PProfPort: -1,
		Server: ServerConfig{
			Port:          DefaultServerPort,
			LogDir:        DefaultLogDir,
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
			DataDir:       DefaultDataDir,
		},
		Database: DatabaseConfig{
			Type: DatabaseTypeMysql,
			Mysql: MysqlConfig{
				Port:    3306,
				Migrate: true,
			},
			Postgres: PostgresConfig{
				Port:     5432,
				SSLMode:  "disable",
				Timezone: "UTC",
				Migrate:  true,
			},
			Redis: RedisConfig{
				BrokerDB:  DefaultRedisBrokerDB,
				BackendDB: DefaultRedisBackendDB,
			},
		},
		Cache: CacheConfig{
			Redis: RedisCacheConfig{
				TTL: DefaultRedisCacheTTL,
			},
			Local: LocalCacheConfig{
				Size:    DefaultLFUCacheSize,
				TTL:     DefaultLFUCacheTTL,
				Channel: DefaultCacheEvictChannel,
			},
		},
		Job: JobConfig{
			EdaTimeout:        DefaultJobEdaTimeout,
			TrainTimeout:      DefaultJobTrainTimeout,
			HypothesisTimeout: DefaultJobHypothesisTimeout,
			FlowTimeout:       DefaultJobFlowTimeout,
			Polling: PollingConfig{
				InitBackoff: DefaultJobPollingInitBackoff,
				MaxBackoff:  DefaultJobPollingMaxBackoff,
			},
		},
		Compute: ComputeConfig{
			Addr:     DefaultComputeAddr,
			Timeout:  DefaultComputeTimeout,
			RetryMax: DefaultComputeRetryMax,
		},
		Notification: NotificationConfig{
			Channel:        DefaultNotificationChannel,
			WriteTimeout:   DefaultNotificationWriteTimeout,
			PongTimeout:    DefaultNotificationPongTimeout,
			PingPeriod:     DefaultNotificationPingPeriod,
			MaxMessageSize: DefaultNotificationMaxMessageSize,
			SendBufferSize: DefaultNotificationSendBufferSize,
		},
		Upload: UploadConfig{
			MaxSize:           DefaultUploadMaxSize,
			AllowedExtensions: append([]string(nil), DefaultUploadAllowedExtensions...),
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.ListenIP == nil {
		return errors.New("server requires parameter listenIP")
	}

	if cfg.Server.Port <= 0 {
		return errors.New("server requires parameter port")
	}

	if cfg.Server.PublicAddr == "" {
		return errors.New("server requires parameter publicAddr")
	}

	if cfg.Server.DataDir == "" {
		return errors.New("server requires parameter dataDir")
	}

	switch cfg.Database.Type {
	case DatabaseTypeMysql, DatabaseTypeMariaDB:
		if cfg.Database.Mysql.User == "" {
			return errors.New("mysql requires parameter user")
		}

		if cfg.Database.Mysql.Host == "" {
			return errors.New("mysql requires parameter host")
		}

		if cfg.Database.Mysql.Port <= 0 {
			return errors.New("mysql requires parameter port")
		}

		if cfg.Database.Mysql.DBName == "" {
			return errors.New("mysql requires parameter dbname")
		}
	case DatabaseTypePostgres:
		if cfg.Database.Postgres.User == "" {
			return errors.New("postgres requires parameter user")
		}

		if cfg.Database.Postgres.Host == "" {
			return errors.New("postgres requires parameter host")
		}

		if cfg.Database.Postgres.Port <= 0 {
			return errors.New("postgres requires parameter port")
		}

		if cfg.Database.Postgres.DBName == "" {
			return errors.New("postgres requires parameter dbname")
		}
	default:
		return fmt.Errorf("invalid database type %s", cfg.Database.Type)
	}

	if len(cfg.Database.Redis.Addrs) == 0 {
		return errors.New("redis requires parameter addrs")
	}

	if cfg.Database.Redis.BrokerDB < 0 {
		return errors.New("redis requires parameter brokerDB")
	}

	if cfg.Database.Redis.BackendDB < 0 {
		return errors.New("redis requires parameter backendDB")
	}

	if cfg.Cache.Redis.TTL == 0 {
		return errors.New("redis requires parameter ttl")
	}

	if cfg.Cache.Local.Size == 0 {
		return errors.New("local requires parameter size")
	}

	if cfg.Cache.Local.TTL == 0 {
		return errors.New("local requires parameter ttl")
	}

	if cfg.Cache.Local.Channel == "" {
		return errors.New("local requires parameter channel")
	}

	if _, err := job.GetQueue(cfg.Job.Queue); err != nil {
		return fmt.Errorf("job requires parameter queue: %w", err)
	}

	if cfg.Job.Polling.InitBackoff <= 0 || cfg.Job.Polling.MaxBackoff < cfg.Job.Polling.InitBackoff {
		return errors.New("polling requires parameter initBackoff and maxBackoff")
	}

	if cfg.Compute.Addr == "" {
		return errors.New("compute requires parameter addr")
	}

	if cfg.Compute.RetryMax < 0 {
		return errors.New("compute requires parameter retryMax")
	}

	if cfg.Notification.Channel == "" {
		return errors.New("notification requires parameter channel")
	}

	if cfg.Notification.PingPeriod <= 0 || cfg.Notification.PingPeriod >= cfg.Notification.PongTimeout {
		return errors.New("notification requires parameter pingPeriod shorter than pongTimeout")
	}

	if cfg.Notification.SendBufferSize <= 0 {
		return errors.New("notification requires parameter sendBufferSize")
	}

	if cfg.Upload.MaxSize <= 0 {
		return errors.New("upload requires parameter maxSize")
	}

	if len(cfg.Upload.AllowedExtensions) == 0 {
		return errors.New("upload requires parameter allowedExtensions")
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	return nil
}

// Convert fills derived parameters.
func (cfg *Config) Convert() error {
	if cfg.Server.ListenIP == nil {
		cfg.Server.ListenIP = net.IPv4zero
	}

	if cfg.Server.PublicAddr == "" {
		cfg.Server.PublicAddr = fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	}
	cfg.Server.PublicAddr = strings.TrimSuffix(cfg.Server.PublicAddr, "/")
	cfg.Compute.Addr = strings.TrimSuffix(cfg.Compute.Addr, "/")

	if cfg.Server.DataDir != "" {
		dataDir, err := filepath.Abs(cfg.Server.DataDir)
		if err != nil {
			return err
		}
		cfg.Server.DataDir = dataDir
	}

	for i, ext := range cfg.Upload.AllowedExtensions {
		cfg.Upload.AllowedExtensions[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
	}

	return nil
}

// Addr is the listen address of the REST API.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.ListenIP.String(), fmt.Sprint(s.Port))
}
