package config

import (
	"log"
	"strings"

	"caregate-service/internal/pkg/constvars"

	"github.com/spf13/viper"
)

// GatewaySettings is the static per-deployment configuration of the
// gateway: which datasets read live versus fixture data, and the fallback
// defaults view models use when the store carries no real value. The
// numeric defaults were hard-coded demo literals in the legacy console;
// here they are deployment configuration.
type GatewaySettings struct {
	DatasetModes map[string]string `mapstructure:"dataset_modes"`
	Defaults     ViewModelDefaults `mapstructure:"defaults"`
}

type ViewModelDefaults struct {
	UnknownDisplay     string  `mapstructure:"unknown_display"`
	DiscountPercentage float64 `mapstructure:"discount_percentage"`
	Copay              float64 `mapstructure:"copay"`
	Deductible         float64 `mapstructure:"deductible"`
	Currency           string  `mapstructure:"currency"`
}

// NewGatewaySettings loads settings from the given file (yaml), overridable
// through GATEWAY_* environment variables. An empty path yields the
// built-in defaults: every dataset live, neutral display fallbacks.
func NewGatewaySettings(settingsFile string) *GatewaySettings {
	v := viper.New()
	v.SetEnvPrefix("GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("defaults.unknown_display", constvars.ViewModelUnknownDisplay)
	v.SetDefault("defaults.discount_percentage", float64(0))
	v.SetDefault("defaults.copay", float64(0))
	v.SetDefault("defaults.deductible", float64(0))
	v.SetDefault("defaults.currency", "USD")
	v.SetDefault("dataset_modes", map[string]string{})

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("Error reading gateway settings file %s: %v, using defaults", settingsFile, err)
		}
	}

	settings := new(GatewaySettings)
	if err := v.Unmarshal(settings); err != nil {
		log.Printf("Error unmarshaling gateway settings: %v, using defaults", err)
		settings = &GatewaySettings{}
	}
	if settings.DatasetModes == nil {
		settings.DatasetModes = map[string]string{}
	}
	if settings.Defaults.UnknownDisplay == "" {
		settings.Defaults.UnknownDisplay = constvars.ViewModelUnknownDisplay
	}
	if settings.Defaults.Currency == "" {
		settings.Defaults.Currency = "USD"
	}
	return settings
}
