package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the configuration for the application.
type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	Analyzer struct {
		// Endpoint of the LLM sidecar. Empty means rule-based analysis only.
		Endpoint string `mapstructure:"endpoint"`
		Model    string `mapstructure:"model"`
		APIKey   string `mapstructure:"api_key"`
	} `mapstructure:"analyzer"`
	Faults struct {
		// Forced fault kind per system: auth, authorization, validation,
		// rate_limit or server_error. Empty disables injection.
		CRM      string `mapstructure:"crm"`
		Contract string `mapstructure:"contract"`
		Billing  string `mapstructure:"billing"`
	} `mapstructure:"faults"`
	Notifications struct {
		CSChannel      string `mapstructure:"cs_channel"`
		AlertChannel   string `mapstructure:"alert_channel"`
		FinanceChannel string `mapstructure:"finance_channel"`
	} `mapstructure:"notifications"`
	Reports struct {
		OutputDir string `mapstructure:"output_dir"`
	} `mapstructure:"reports"`
}

// LoadConfig loads the configuration from a file and the environment.
// Missing config files are not an error; defaults apply.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("analyzer.model", "gpt-4o-mini")
	viper.SetDefault("notifications.cs_channel", "#cs-onboarding")
	viper.SetDefault("notifications.alert_channel", "#cs-onboarding-alerts")
	viper.SetDefault("notifications.finance_channel", "#finance-alerts")
	viper.SetDefault("reports.output_dir", "reports_output")
}
