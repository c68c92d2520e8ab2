// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	Environement      string        `mapstructure:"GO_ENV"`
	TokenType         string        `mapstructure:"TOKEN_TYPE"`
	TokenSymmetricKey string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	PaymentAPIURL     string        `mapstructure:"PAYMENT_API_URL"`
	ContactAPIURL     string        `mapstructure:"CONTACT_API_URL"`
	BankAPIURL        string        `mapstructure:"BANK_API_URL"`
	APIKey            string        `mapstructure:"API_KEY"`
	ClientTimeout     time.Duration `mapstructure:"CLIENT_TIMEOUT"`
	UDScheme          string        `mapstructure:"UD_SCHEME"`
	PesonetScheme     string        `mapstructure:"PESONET_SCHEME"`
	InstapayScheme    string        `mapstructure:"INSTAPAY_SCHEME"`
	ContactsPageSize  int           `mapstructure:"CONTACTS_PAGE_SIZE"`
	BanksPageSize     int           `mapstructure:"BANKS_PAGE_SIZE"`
	FeaturedBank      string        `mapstructure:"FEATURED_BANK"`
	CurrencyCode      string        `mapstructure:"CURRENCY_CODE"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`
	RabbitMQURL       string        `mapstructure:"RABBITMQ_URL"`
	AnalyticsExchange string        `mapstructure:"ANALYTICS_EXCHANGE"`
}

var keys = []string{
	"SERVER_ADDRESS", "GO_ENV", "TOKEN_TYPE", "TOKEN_SYMMETRIC_KEY",
	"PAYMENT_API_URL", "CONTACT_API_URL", "BANK_API_URL", "API_KEY", "CLIENT_TIMEOUT",
	"UD_SCHEME", "PESONET_SCHEME", "INSTAPAY_SCHEME",
	"CONTACTS_PAGE_SIZE", "BANKS_PAGE_SIZE", "FEATURED_BANK", "CURRENCY_CODE",
	"SESSION_TTL", "RABBITMQ_URL", "ANALYTICS_EXCHANGE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("TOKEN_TYPE", "paseto")
	v.SetDefault("CLIENT_TIMEOUT", 30*time.Second)
	v.SetDefault("UD_SCHEME", "UD.AccountNumber")
	v.SetDefault("PESONET_SCHEME", "PESONET.AccountNumber")
	v.SetDefault("INSTAPAY_SCHEME", "INSTAPAY.AccountNumber")
	v.SetDefault("CONTACTS_PAGE_SIZE", 1000)
	v.SetDefault("BANKS_PAGE_SIZE", 1000)
	v.SetDefault("FEATURED_BANK", "UnionBank")
	v.SetDefault("CURRENCY_CODE", "PHP")
	v.SetDefault("SESSION_TTL", 30*time.Minute)
	v.SetDefault("ANALYTICS_EXCHANGE", "transfer_flow_events")
}

// Load read configuration from file or environment variables. A missing
// app.env file leaves the defaults and the environment in place.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	setDefaults(v)
	v.AutomaticEnv()

	// Unmarshal only sees the environment for keys viper already knows.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return c, err
		}
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
