package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InvoiceDefaults are the editable invoicing policies: the template used
// when minting a fresh invoice number and the GST split rate preset on
// new tax rows.
type InvoiceDefaults struct {
	NumberTemplate string  `mapstructure:"numberTemplate"`
	DefaultGSTRate float64 `mapstructure:"defaultGstRate"`
}

func DefaultInvoiceDefaults() InvoiceDefaults {
	return InvoiceDefaults{
		NumberTemplate: "INV-{YYYY}{MM}{DD}-{SEQ6}",
		DefaultGSTRate: 9,
	}
}

// InvoiceDefaultsHolder serves the current defaults and hot-reloads them
// when the config file changes.
type InvoiceDefaultsHolder struct {
	current atomic.Value // holds InvoiceDefaults
}

func NewInvoiceDefaultsHolder() (*InvoiceDefaultsHolder, error) {
	v := viper.New()

	v.SetConfigName("invoice")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/paperbrain")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PAPERBRAIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultInvoiceDefaults()
		v.SetDefault("invoice.numberTemplate", defaults.NumberTemplate)
		v.SetDefault("invoice.defaultGstRate", defaults.DefaultGSTRate)
	}

	var cfg InvoiceDefaults
	if err := v.UnmarshalKey("invoice", &cfg); err != nil {
		return nil, err
	}
	if err := validateInvoiceDefaults(cfg); err != nil {
		return nil, err
	}

	holder := &InvoiceDefaultsHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated InvoiceDefaults
		if err := v.UnmarshalKey("invoice", &updated); err != nil {
			log.Printf("[invoice-config] reload failed: %v", err)
			return
		}
		if err := validateInvoiceDefaults(updated); err != nil {
			log.Printf("[invoice-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[invoice-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticInvoiceDefaults pins the holder for tests.
func NewStaticInvoiceDefaults(cfg InvoiceDefaults) *InvoiceDefaultsHolder {
	holder := &InvoiceDefaultsHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *InvoiceDefaultsHolder) Get() InvoiceDefaults {
	return h.current.Load().(InvoiceDefaults)
}

func validateInvoiceDefaults(cfg InvoiceDefaults) error {
	if strings.TrimSpace(cfg.NumberTemplate) == "" {
		return errors.New("invoice.numberTemplate cannot be empty")
	}
	if cfg.DefaultGSTRate < 0 || cfg.DefaultGSTRate > 100 {
		return errors.New("invoice.defaultGstRate must be between 0 and 100")
	}
	return nil
}
