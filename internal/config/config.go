package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Catalog    CatalogConfig
	Restaurant RestaurantConfig
	Printer    PrinterConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool

	// Proxies allowed to set X-Forwarded-For; empty trusts none
	TrustedProxies []string
}

// StorageConfig selects the key-value backend for zone and ledger state
type StorageConfig struct {
	Driver    string // postgres, redis or memory
	KeyPrefix string
	Timeout   time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CatalogConfig struct {
	// Path to a YAML catalog; empty uses the built-in menu
	Path string
}

// RestaurantConfig is printed in the receipt header
type RestaurantConfig struct {
	Name    string
	Address string
	Phone   string
	Footer  string
}

type PrinterConfig struct {
	Type    string // usb, network or none
	USBPath string
	Address string
	Width   int
}

type LoggerConfig struct {
	Level    string
	Encoding string
	File     string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "restaurant-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_TRUSTED_PROXIES", []string{})
	viper.SetDefault("STORAGE_DRIVER", "memory")
	viper.SetDefault("STORAGE_KEY_PREFIX", "pos")
	viper.SetDefault("STORAGE_TIMEOUT_MS", 2000)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "restaurant_pos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("RESTAURANT_NAME", "Ravi Saoji Bhojnalay")
	viper.SetDefault("RESTAURANT_ADDRESS", "Omkar Nagar Road, Manewada Ring Rd, Nagpur, Maharashtra 440027")
	viper.SetDefault("RESTAURANT_PHONE", "098602 08682 / 72765 42388")
	viper.SetDefault("RESTAURANT_FOOTER", "THANK YOU! VISIT AGAIN")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_ENCODING", "console")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),

			TrustedProxies: viper.GetStringSlice("APP_TRUSTED_PROXIES"),
		},
		Storage: StorageConfig{
			Driver:    viper.GetString("STORAGE_DRIVER"),
			KeyPrefix: viper.GetString("STORAGE_KEY_PREFIX"),
			Timeout:   time.Duration(viper.GetInt("STORAGE_TIMEOUT_MS")) * time.Millisecond,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
		Restaurant: RestaurantConfig{
			Name:    viper.GetString("RESTAURANT_NAME"),
			Address: viper.GetString("RESTAURANT_ADDRESS"),
			Phone:   viper.GetString("RESTAURANT_PHONE"),
			Footer:  viper.GetString("RESTAURANT_FOOTER"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		Logger: LoggerConfig{
			Level:    viper.GetString("LOG_LEVEL"),
			Encoding: viper.GetString("LOG_ENCODING"),
			File:     viper.GetString("LOG_FILE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// Addr returns host:port for the redis client
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
