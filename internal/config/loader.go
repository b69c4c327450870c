package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Contact is the dealership contact card served to visitors and used for
// composing lead messages.
type Contact struct {
	Brand       string `json:"brand" yaml:"brand" toml:"brand"`
	Address     string `json:"address" yaml:"address" toml:"address"`
	Phone       string `json:"phone" yaml:"phone" toml:"phone"`
	WhatsApp    string `json:"whatsapp" yaml:"whatsapp" toml:"whatsapp"`
	LeadEmail   string `json:"lead_email" yaml:"lead_email" toml:"lead_email"`
	MailSubject string `json:"mail_subject" yaml:"mail_subject" toml:"mail_subject"`
	Greeting    string `json:"greeting" yaml:"greeting" toml:"greeting"`
}

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr        string `json:"addr" yaml:"addr" toml:"addr"`
	CatalogPath string `json:"catalog_path" yaml:"catalog_path" toml:"catalog_path"`
	// AdminToken gates the catalog editing routes. Empty disables them.
	AdminToken   string   `json:"admin_token" yaml:"admin_token" toml:"admin_token"`
	MaxBodyBytes int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	CORSOrigins  []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	Contact      Contact  `json:"contact" yaml:"contact" toml:"contact"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// DefaultContact is the built-in dealership contact card, used when the
// config file omits contact fields.
func DefaultContact() Contact {
	return Contact{
		Brand:       "Muslim Autos",
		Address:     "Boys Degree College Road, Near Waheed Arshad Chowk, Bahawalnagar, Punjab, Pakistan",
		Phone:       "+92-333-6300769",
		WhatsApp:    "+92-333-6300769",
		LeadEmail:   "harisbhatti69@gmail.com",
		MailSubject: "Lead from Muslim Autos",
		Greeting:    "Assalam o Alaikum!",
	}
}

// ApplyDefaults fills unspecified fields with built-in defaults.
func ApplyDefaults(cfg Config) Config {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	def := DefaultContact()
	if cfg.Contact.Brand == "" {
		cfg.Contact.Brand = def.Brand
	}
	if cfg.Contact.Address == "" {
		cfg.Contact.Address = def.Address
	}
	if cfg.Contact.Phone == "" {
		cfg.Contact.Phone = def.Phone
	}
	if cfg.Contact.WhatsApp == "" {
		cfg.Contact.WhatsApp = def.WhatsApp
	}
	if cfg.Contact.LeadEmail == "" {
		cfg.Contact.LeadEmail = def.LeadEmail
	}
	if cfg.Contact.MailSubject == "" {
		cfg.Contact.MailSubject = def.MailSubject
	}
	if cfg.Contact.Greeting == "" {
		cfg.Contact.Greeting = def.Greeting
	}
	return cfg
}
