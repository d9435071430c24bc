package config

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type GoogleOAuth struct {
	ClientID          string
	ClientSecret      string
	AuthURL           string
	TokenURL          string
	RedirectURL       string
	SignOnRedirectURL string
}

type S3Storage struct {
	Bucket          string
	PublicURLFormat string
	ClientType      string
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	OAuth    GoogleOAuth
	S3       S3Storage
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		OAuth:    *newGoogleOAuth(),
		S3:       *newS3(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "3010"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", ""),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "blog"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newGoogleOAuth() *GoogleOAuth {
	return &GoogleOAuth{
		ClientID:          getenv("GOOGLE_OAUTH_CLIENT_ID", ""),
		ClientSecret:      getenv("GOOGLE_OAUTH_CLIENT_SECRET", ""),
		AuthURL:           getenv("OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth"),
		TokenURL:          getenv("OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token"),
		RedirectURL:       getenv("OAUTH_REDIRECT_URL", "http://localhost:3010/redirect"),
		SignOnRedirectURL: getenv("OAUTH_REDIRECT_SIGN_ON_URL", "http://localhost:3010/register_redirect"),
	}
}

func newS3() *S3Storage {
	return &S3Storage{
		Bucket:          getenv("AWS_S3_BUCKET", ""),
		PublicURLFormat: getenv("AWS_S3_PUBLIC_URL_FORMAT", "https://%s.s3.amazonaws.com/%s"),
		ClientType:      getenv("S3_CLIENT_TYPE", "real"),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Printf("%s %s undefined. Using default value %s", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}
