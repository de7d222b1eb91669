package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/LiteBots/VelorieMarket/domain"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	UserTTL  string `yaml:"user_ttl"`
	AdminTTL string `yaml:"admin_ttl"`
}

type OTPConfig struct {
	TTL string `yaml:"ttl"`
}

type DiscordConfig struct {
	Token          string `yaml:"token"`
	AlertChannelID string `yaml:"alert_channel_id"`
	StatsChannelID string `yaml:"stats_channel_id"`
	StatsInterval  string `yaml:"stats_interval"`
}

// AdminEntry declares one admin credential. The secret itself is read from
// the named environment variable so it never lives in the config file.
type AdminEntry struct {
	SecretEnv   string `yaml:"secret_env"`
	RecipientID string `yaml:"recipient_id"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ShopConfig struct {
	VerificationPrice int64 `yaml:"verification_price"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Discord  DiscordConfig  `yaml:"discord"`
	Shop     ShopConfig     `yaml:"shop"`
	Admins   []AdminEntry   `yaml:"admins"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port              string
	GinMode           string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	JWTIssuer         string
	UserTokenTTL      time.Duration
	AdminTokenTTL     time.Duration
	OTPTTL            time.Duration
	DiscordToken      string
	AlertChannelID    string
	StatsChannelID    string
	StatsInterval     time.Duration
	VerificationPrice int64
	AdminCreds        []domain.AdminCredential
	CasbinModelPath   string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	userTTL, err := time.ParseDuration(configFile.JWT.UserTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT user TTL: %w", err)
	}

	adminTTL, err := time.ParseDuration(configFile.JWT.AdminTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT admin TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	statsInterval, err := time.ParseDuration(configFile.Discord.StatsInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid stats interval: %w", err)
	}

	adminCreds, err := resolveAdminCreds(configFile.Admins)
	if err != nil {
		return nil, err
	}

	price := configFile.Shop.VerificationPrice
	if price <= 0 {
		price = defaultVerificationPrice
	}

	return &Config{
		Port:              fmt.Sprintf("%d", configFile.App.Port),
		GinMode:           configFile.App.GinMode,
		DSN:               env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:         configFile.Redis.Addr,
		RedisPassword:     configFile.Redis.Password,
		RedisDB:           configFile.Redis.DB,
		JWTSecret:         env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:         configFile.JWT.Issuer,
		UserTokenTTL:      userTTL,
		AdminTokenTTL:     adminTTL,
		OTPTTL:            otpTTL,
		DiscordToken:      env("DISCORD_TOKEN", configFile.Discord.Token),
		AlertChannelID:    configFile.Discord.AlertChannelID,
		StatsChannelID:    configFile.Discord.StatsChannelID,
		StatsInterval:     statsInterval,
		VerificationPrice: price,
		AdminCreds:        adminCreds,
		CasbinModelPath:   configFile.Casbin.ModelPath,
	}, nil
}

// defaultVerificationPrice is 29.99 vPLN in wallet hundredths.
const defaultVerificationPrice = 2999

// resolveAdminCreds reads each entry's secret from its environment variable
// and validates the table. Entries whose variable is unset are skipped (the
// credential is simply not provisioned); among the remaining ones, duplicate
// secrets and duplicate recipients are both rejected so each secret maps to
// exactly one recipient.
func resolveAdminCreds(entries []AdminEntry) ([]domain.AdminCredential, error) {
	creds := make([]domain.AdminCredential, 0, len(entries))
	seenSecrets := make(map[string]struct{})
	seenRecipients := make(map[string]struct{})

	for _, e := range entries {
		if e.SecretEnv == "" || e.RecipientID == "" {
			return nil, fmt.Errorf("admin entry needs both secret_env and recipient_id")
		}
		secret := os.Getenv(e.SecretEnv)
		if secret == "" {
			continue
		}
		if _, dup := seenSecrets[secret]; dup {
			return nil, fmt.Errorf("duplicate admin secret (env %s)", e.SecretEnv)
		}
		if _, dup := seenRecipients[e.RecipientID]; dup {
			return nil, fmt.Errorf("duplicate admin recipient %s", e.RecipientID)
		}
		seenSecrets[secret] = struct{}{}
		seenRecipients[e.RecipientID] = struct{}{}
		creds = append(creds, domain.AdminCredential{SecretPhrase: secret, RecipientID: e.RecipientID})
	}

	return creds, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
