package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HTTP HTTP
	DB   DB
	Auth Auth
	Odds Odds
	Cron Cron
	CORS CORS
}

type HTTP struct {
	Addr string `envconfig:"HTTP_ADDR" default:":8080"`
}

type DB struct {
	URL string `envconfig:"MYSQL_URL" required:"true"`
}

type Auth struct {
	JWTSecret       string `envconfig:"JWT_SECRET" required:"true"`
	Issuer          string `envconfig:"JWT_ISSUER" default:"parlayleague"`
	AccessTTLSecs   int    `envconfig:"JWT_ACCESS_TTL" default:"3600"`
	RefreshTTLSecs  int    `envconfig:"JWT_REFRESH_TTL" default:"604800"`
	AdminToken      string `envconfig:"ADMIN_TOKEN"`
	AllowAnyUpdater bool   `envconfig:"RESULTS_OPEN_TO_MEMBERS" default:"true"`
}

type Odds struct {
	APIKey  string `envconfig:"ODDS_API_KEY"`
	BaseURL string `envconfig:"ODDS_API_BASE_URL" default:"https://api.the-odds-api.com/v4"`
	Sport   string `envconfig:"ODDS_SPORT" default:"americanfootball_nfl"`
	Mock    bool   `envconfig:"ODDS_MOCK" default:"true"`
}

type Cron struct {
	Enabled bool `envconfig:"CRON_ENABLED" default:"true"`
}

type CORS struct {
	Enabled bool   `envconfig:"CORS_ENABLED" default:"true"`
	Origins string `envconfig:"CORS_ORIGINS" default:"*"`
}

func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
