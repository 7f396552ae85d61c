package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	SMTP     SMTPConfig
	Upload   UploadConfig
	Admin    AdminConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type SessionConfig struct {
	// Secret assina o token de sessão (HS256)
	Secret string
	// CookieName do cookie HTTP-only
	CookieName string
	// MaxAgeDays de validade do cookie e do token
	MaxAgeDays int
}

type SMTPConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	FromName  string
	Recipient string
}

type UploadConfig struct {
	// Dir é o diretório local de uploads (sem abstração de storage remoto)
	Dir string
	// MaxSizeBytes limita o tamanho aceito por imagem
	MaxSizeBytes int64
}

type AdminConfig struct {
	// Credenciais do usuário bootstrap, criado quando a tabela está vazia
	Email    string
	Password string
	Name     string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do arquivo .env e do ambiente
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("SESSION_COOKIE_NAME", "gm_session")
	viper.SetDefault("SESSION_MAX_AGE_DAYS", 7)
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("UPLOAD_MAX_SIZE_BYTES", 5*1024*1024)
	viper.SetDefault("LOG_LEVEL", "info")

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		Session: SessionConfig{
			Secret:     viper.GetString("SESSION_SECRET"),
			CookieName: viper.GetString("SESSION_COOKIE_NAME"),
			MaxAgeDays: viper.GetInt("SESSION_MAX_AGE_DAYS"),
		},
		SMTP: SMTPConfig{
			Host:      viper.GetString("SMTP_HOST"),
			Port:      viper.GetInt("SMTP_PORT"),
			User:      viper.GetString("SMTP_USER"),
			Password:  viper.GetString("SMTP_PASS"),
			FromName:  viper.GetString("EMAIL_FROM_NAME"),
			Recipient: viper.GetString("EMAIL_RECIPIENT"),
		},
		Upload: UploadConfig{
			Dir:          viper.GetString("UPLOAD_DIR"),
			MaxSizeBytes: viper.GetInt64("UPLOAD_MAX_SIZE_BYTES"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Name:     viper.GetString("ADMIN_NAME"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if config.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return config, nil
}

// IsProduction indica se a aplicação roda em produção (cookie secure, gin release)
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
