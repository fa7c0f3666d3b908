package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`

	DBUser     string `yaml:"db_user" env:"DB_USER" env-required:"true"`
	DBPassword string `yaml:"db_password" env:"DB_PASSWORD" env-default:""`
	DBHost     string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName     string `yaml:"db_name" env:"DB_NAME" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time" env-default:"true"`

	Blob    Blob    `yaml:"blob"`
	EmailJS EmailJS `yaml:"emailjs"`
}

type HTTPServer struct {
	Address string        `yaml:"address" env-default:"localhost:4001"`
	Timeout time.Duration `yaml:"timeout" env-default:"4s"`
	// WriteTimeout covers the slowest responses: PDF rendering and email
	// dispatch hold the connection while gallery images download, so it
	// has to outlive the 30s handler deadlines.
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"60s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Blob selects the image store. Bucket set -> Google Cloud Storage,
// otherwise files land in LocalDir and are served under /uploads/.
type Blob struct {
	Bucket        string `yaml:"bucket" env:"BLOB_BUCKET" env-default:""`
	LocalDir      string `yaml:"local_dir" env-default:"./uploads"`
	PublicBaseURL string `yaml:"public_base_url" env-default:"http://localhost:4001/uploads"`
}

type EmailJS struct {
	ServiceID  string `yaml:"service_id" env:"EMAILJS_SERVICE_ID" env-default:""`
	TemplateID string `yaml:"template_id" env:"EMAILJS_TEMPLATE_ID" env-default:""`
	UserID     string `yaml:"user_id" env:"EMAILJS_USER_ID" env-default:""`
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
