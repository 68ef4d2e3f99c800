package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sporthub-cli/api"
	"sporthub-cli/catalog"
	"sporthub-cli/storage"
)

var (
	outputJSON    bool
	outputCompact bool
	cfg           Config
	env           EnvConfig
	client        = api.NewClient()
	log           = logrus.New()
	vocab         = catalog.Sports()
)

// Config is the optional user config at ~/.config/sporthub/config.json.
type Config struct {
	DefaultDeporte  string `json:"default_deporte"`
	DefaultComplejo int    `json:"default_complejo"`
	DefaultPageSize int    `json:"default_page_size"`
}

// EnvConfig is process configuration from the environment (a .env file is
// loaded first if present).
type EnvConfig struct {
	APIBaseURL  string        `envconfig:"SPORTHUB_API_URL"`
	HTTPTimeout time.Duration `envconfig:"SPORTHUB_HTTP_TIMEOUT" default:"15s"`
	LogLevel    string        `envconfig:"SPORTHUB_LOG_LEVEL" default:"info"`
	LogFormat   string        `envconfig:"SPORTHUB_LOG_FORMAT" default:"text"`
	ServeAddr   string        `envconfig:"SPORTHUB_SERVE_ADDR" default:":8080"`
	CORSOrigins []string      `envconfig:"SPORTHUB_CORS_ORIGINS" default:"http://localhost:3000"`
}

var rootCmd = &cobra.Command{
	Use:          "sporthub",
	Short:        "SportHub Temuco facility booking CLI",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputJSON && outputCompact {
			return fmt.Errorf("choose either --json or --compact")
		}
		return nil
	},
}

func Execute() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(canchasCmd())
	rootCmd.AddCommand(canchaCmd())
	rootCmd.AddCommand(complejosCmd())
	rootCmd.AddCommand(deportesCmd())
	rootCmd.AddCommand(reservarCmd())
	rootCmd.AddCommand(reservasCmd())
	rootCmd.AddCommand(resenasCmd())
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(adminCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVar(&outputCompact, "compact", false, "Output compact text")
}

func initConfig() {
	_ = godotenv.Load()

	if err := envconfig.Process("", &env); err != nil {
		fmt.Fprintf(os.Stderr, "invalid environment configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	if env.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if env.APIBaseURL != "" {
		client.BaseURL = env.APIBaseURL
	}
	if env.HTTPTimeout > 0 {
		client.HTTP.Timeout = env.HTTPTimeout
	}

	if loaded, err := loadConfig(); err == nil {
		cfg = loaded
	}

	// Attach stored credentials so authenticated commands work without an
	// explicit login step per invocation.
	if creds, err := storage.LoadCredentials(); err == nil && creds != nil {
		if !creds.AccessTokenExpired(time.Now()) {
			client.AccessToken = creds.AccessToken
		}
	}
}

func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("config path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var conf Config
	if err := json.NewDecoder(file).Decode(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func configPath() (string, error) {
	dir, err := storage.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
