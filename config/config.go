package config

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	ModeLive = "live"
	ModeMock = "mock"
)

type Config struct {
	App      App
	Database Database
	Content  Content
	Site     Site
}

type App struct {
	Host string
	Port int
	// RateLimit is the number of requests per second allowed per client IP, 0 disables limiting.
	RateLimit float64
	// APIURL is the public base URL of the API, used by the Go client and the home page links.
	APIURL string
}

type Database struct {
	Server     string
	Database   string
	User       string
	Password   string
	Port       int
	Encrypt    bool
	TrustCert  bool
	PoolSize   int
	MaxRetries int
	LogQueries bool
}

type Content struct {
	// Mode selects the source behind /api/videos-v2 and /api/posts: "live" or "mock".
	Mode string
	// Fallback serves the mock dataset when the live source fails.
	Fallback        bool
	DefaultCategory string
	DefaultLimit    int
	// BreakerFailures is the number of consecutive live failures that opens the circuit.
	BreakerFailures uint32
	BreakerTimeout  string
}

type Site struct {
	Title        string
	SectionLimit int
	Partners     []Partner
}

type Partner struct {
	Name    string
	LogoURL string
	Link    string
}

// Overrides carries values from flags and environment variables.
// Empty strings and zero ports leave the file configuration untouched.
type Overrides struct {
	DBServer    string
	DBDatabase  string
	DBUser      string
	DBPassword  string
	DBPort      int
	DBEncrypt   string
	DBTrustCert string
	APIURL      string
}

func Default() Config {
	return Config{
		App: App{
			Host:      "0.0.0.0",
			Port:      3000,
			RateLimit: 20,
			APIURL:    "http://localhost:3000",
		},
		Database: Database{
			Server:     "localhost",
			Database:   "agrovia",
			User:       "agrovia",
			Port:       5432,
			PoolSize:   5,
			MaxRetries: 3,
		},
		Content: Content{
			Mode:            ModeLive,
			Fallback:        true,
			DefaultCategory: "Agrovia Conversa",
			DefaultLimit:    10,
			BreakerFailures: 5,
			BreakerTimeout:  "30s",
		},
		Site: Site{
			Title:        "Agrovia",
			SectionLimit: 3,
		},
	}
}

// Load decodes the TOML file at path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Apply(o Overrides) error {
	if o.DBServer != "" {
		c.Database.Server = o.DBServer
	}
	if o.DBDatabase != "" {
		c.Database.Database = o.DBDatabase
	}
	if o.DBUser != "" {
		c.Database.User = o.DBUser
	}
	if o.DBPassword != "" {
		c.Database.Password = o.DBPassword
	}
	if o.DBPort != 0 {
		c.Database.Port = o.DBPort
	}
	if o.DBEncrypt != "" {
		v, err := strconv.ParseBool(o.DBEncrypt)
		if err != nil {
			return fmt.Errorf("parse DB_ENCRYPT: %w", err)
		}
		c.Database.Encrypt = v
	}
	if o.DBTrustCert != "" {
		v, err := strconv.ParseBool(o.DBTrustCert)
		if err != nil {
			return fmt.Errorf("parse DB_TRUST_CERT: %w", err)
		}
		c.Database.TrustCert = v
	}
	if o.APIURL != "" {
		c.App.APIURL = o.APIURL
	}

	return nil
}

func (c Config) Validate() error {
	if c.Content.Mode != ModeLive && c.Content.Mode != ModeMock {
		return fmt.Errorf("unknown content mode %q", c.Content.Mode)
	}
	if c.Content.DefaultLimit < 1 {
		return fmt.Errorf("content default limit must be positive, got %d", c.Content.DefaultLimit)
	}
	return nil
}

func (d Database) Addr() string {
	return net.JoinHostPort(d.Server, strconv.Itoa(d.Port))
}

// Options converts the configuration into go-pg connection options.
func (d Database) Options() *pg.Options {
	opt := &pg.Options{
		Addr:       d.Addr(),
		User:       d.User,
		Password:   d.Password,
		Database:   d.Database,
		PoolSize:   d.PoolSize,
		MaxRetries: d.MaxRetries,
	}

	if d.Encrypt {
		opt.TLSConfig = &tls.Config{
			ServerName:         d.Server,
			InsecureSkipVerify: d.TrustCert, //nolint:gosec
		}
	}

	return opt
}

// URL returns a postgres connection URL, used by the migration driver.
func (d Database) URL() string {
	sslMode := "disable"
	if d.Encrypt {
		sslMode = "verify-full"
		if d.TrustCert {
			sslMode = "require"
		}
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Addr(),
		Path:     "/" + d.Database,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return u.String()
}

// Public is the database configuration with the password masked.
type Public struct {
	Server    string `json:"server"`
	Database  string `json:"database"`
	User      string `json:"user"`
	Password  string `json:"password"`
	Port      int    `json:"port"`
	Encrypt   bool   `json:"encrypt"`
	TrustCert bool   `json:"trustCert"`
}

func (d Database) Sanitized() Public {
	password := ""
	if d.Password != "" {
		password = "***"
	}

	return Public{
		Server:    d.Server,
		Database:  d.Database,
		User:      d.User,
		Password:  password,
		Port:      d.Port,
		Encrypt:   d.Encrypt,
		TrustCert: d.TrustCert,
	}
}
