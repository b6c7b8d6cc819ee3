package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Payment   PaymentConfig   `yaml:"payment"   validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"20s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"eshomes"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type BookingConfig struct {
	// PendingTTL is how long an unpaid booking holds its dates.
	PendingTTL time.Duration `yaml:"pending_ttl" env:"BOOKING_PENDING_TTL" env-default:"30m" validate:"required,gt=0"`
}

type PaymentConfig struct {
	BaseURL       string        `yaml:"base_url"        env:"PAYMENT_BASE_URL"        env-default:"https://api.flutterwave.com/v3" validate:"required,url"`
	SecretKey     string        `yaml:"secret_key"      env:"PAYMENT_SECRET_KEY"`
	PublicKey     string        `yaml:"public_key"      env:"PAYMENT_PUBLIC_KEY"`
	WebhookHash   string        `yaml:"webhook_hash"    env:"PAYMENT_WEBHOOK_HASH"`
	Currency      string        `yaml:"currency"        env:"PAYMENT_CURRENCY"        env-default:"NGN"        validate:"required,len=3"`
	TxRefPrefix   string        `yaml:"tx_ref_prefix"   env:"PAYMENT_TX_REF_PREFIX"   env-default:"ESHOMES"    validate:"required"`
	CallbackURL   string        `yaml:"callback_url"    env:"PAYMENT_CALLBACK_URL"    env-default:"http://localhost:8080/api/payments/callback" validate:"required"`
	SuccessURL    string        `yaml:"success_url"     env:"PAYMENT_SUCCESS_URL"     env-default:"/thank-you" validate:"required"`
	FailureURL    string        `yaml:"failure_url"     env:"PAYMENT_FAILURE_URL"     env-default:"/profile"   validate:"required"`
	VerifyTimeout time.Duration `yaml:"verify_timeout"  env:"PAYMENT_VERIFY_TIMEOUT"  env-default:"10s"        validate:"gt=0"`
	LockTimeout   time.Duration `yaml:"lock_timeout"    env:"PAYMENT_LOCK_TIMEOUT"    env-default:"30s"        validate:"gt=0"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	// LockTTL is the lease on a reconciliation lock. It must outlive a
	// gateway verify call plus the settling DB transaction.
	LockTTL time.Duration `yaml:"lock_ttl" env:"REDIS_LOCK_TTL" env-default:"1m" validate:"gt=0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func Load() (*Config, error) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Check validates relations between fields.
func (c *Config) Check() error {
	if c.Redis.Enabled() && c.Redis.LockTTL <= c.Payment.VerifyTimeout {
		return fmt.Errorf("redis lock_ttl %s must exceed payment verify_timeout %s",
			c.Redis.LockTTL, c.Payment.VerifyTimeout)
	}
	return nil
}
