package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Storage    Storage
	Database   Database
	JWT        JWT
	Auth       Auth
	Prometheus Prometheus
}

type HTTPServer struct {
	Address string
	Port    int
}

type Storage struct {
	// Backend selects the store implementation: "postgres" or "memory".
	Backend string
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
	AutoMigrate    bool
}

type JWT struct {
	Secret string
	TTL    time.Duration
}

type Auth struct {
	BcryptCost int
}

type Prometheus struct {
	Address string
	Port    int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)

	viper.SetDefault("storage.backend", "memory")

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "blog-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "blogservice")
	viper.SetDefault("database.migrations_path", "migrations")
	viper.SetDefault("database.auto_migrate", true)

	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("jwt.ttl", "24h")

	viper.SetDefault("auth.bcrypt_cost", 10)

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9103)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults and environment: %s", err)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Storage: Storage{
			Backend: viper.GetString("storage.backend"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
			AutoMigrate:    viper.GetBool("database.auto_migrate"),
		},
		JWT: JWT{
			Secret: viper.GetString("jwt.secret"),
			TTL:    viper.GetDuration("jwt.ttl"),
		},
		Auth: Auth{
			BcryptCost: viper.GetInt("auth.bcrypt_cost"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
	}

	if config.JWT.Secret == "" {
		log.Fatal("jwt.secret must be set (JWT_SECRET)")
	}

	return config
}
