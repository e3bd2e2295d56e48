package config

import (
	"time"
)

type DB struct {
	Url          string        `envconfig:"URL"`
	QueryTimeout time.Duration `envconfig:"QUERY_TIMEOUT" default:"5s"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	AutoMigrate  bool          `envconfig:"AUTO_MIGRATE" default:"false"`
}

// Jwt holds the two signing secrets. They are required and must differ so a
// refresh token can never pass access verification and vice versa.
type Jwt struct {
	AccessSecret  string        `envconfig:"ACCESS_SECRET" required:"true"`
	RefreshSecret string        `envconfig:"REFRESH_SECRET" required:"true"`
	AccessExpiry  time.Duration `envconfig:"ACCESS_EXPIRY" default:"15m"`
	RefreshExpiry time.Duration `envconfig:"REFRESH_EXPIRY" default:"168h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:""`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:""`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Upload struct {
	Dir       string `envconfig:"DIR" default:"uploads"`
	URLPrefix string `envconfig:"URL_PREFIX" default:"/uploads"`
	MaxBytes  int64  `envconfig:"MAX_BYTES" default:"5242880"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[expensetracker]"`
}

// Server describes the listener. ProxyHeader is honoured only for requests
// arriving from one of TrustedProxies (IPs or CIDRs).
type Server struct {
	Scheme         string   `envconfig:"SCHEME" default:"http"`
	Host           string   `envconfig:"HOST" default:"localhost"`
	Port           int      `envconfig:"PORT" default:"3000"`
	ProxyHeader    string   `envconfig:"PROXY_HEADER" default:"X-Forwarded-For"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Upload    *Upload    `envconfig:"UPLOAD"`
}

// IsDevelopment reports whether detailed errors may be exposed to clients.
func (a *App) IsDevelopment() bool {
	return a.Env == "development"
}
