package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
)

func Load() error {
	// API
	viper.SetDefault("API_ADDR", ":8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", "false")

	// Reference tables; without a DSN only the built-in edition is served
	viper.SetDefault("DB_DSN", "")
	viper.SetDefault("TABLE_VERSION", "nec-2023")
	viper.SetDefault("DB_CONNECT_RETRIES", 5)

	// MQTT scaling bridge
	viper.SetDefault("MQTT_BROKER", "tcp://localhost:1883")
	viper.SetDefault("MQTT_CLIENT_ID", "toolkit-bridge")
	viper.SetDefault("MQTT_RAW_TOPIC", "plant/analog/raw/+")
	viper.SetDefault("MQTT_ENG_TOPIC_PREFIX", "plant/analog/eng")
	viper.SetDefault("SIM_INTERVAL_MS", 500)

	// InfluxDB sink (optional)
	viper.SetDefault("INFLUX_URL", "")
	viper.SetDefault("INFLUX_TOKEN", "")
	viper.SetDefault("INFLUX_ORG", "plant")
	viper.SetDefault("INFLUX_BUCKET", "analog")

	// AWS Configuration
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_S3_BUCKET", "automation-toolkit-sheets")
	viper.SetDefault("USE_CLOUD_SERVICES", "false") // Toggle for local vs cloud

	viper.AutomaticEnv()

	// toolkit.yaml is optional; it carries the channel list
	viper.SetConfigName("toolkit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/toolkit")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read toolkit.yaml: %w", err)
		}
	}
	return nil
}

// SetupLogging applies LOG_LEVEL and LOG_PRETTY to the global zerolog logger.
func SetupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if viper.GetBool("LOG_PRETTY") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Channels returns the analog channel list from toolkit.yaml.
func Channels() ([]domain.Channel, error) {
	var chs []domain.Channel
	if err := viper.UnmarshalKey("channels", &chs); err != nil {
		return nil, fmt.Errorf("decode channels: %w", err)
	}
	return chs, nil
}

func APIAddr() string            { return viper.GetString("API_ADDR") }
func DatabaseDSN() string        { return viper.GetString("DB_DSN") }
func TableVersion() string       { return viper.GetString("TABLE_VERSION") }
func DBConnectRetries() int      { return viper.GetInt("DB_CONNECT_RETRIES") }
func MQTTBroker() string         { return viper.GetString("MQTT_BROKER") }
func MQTTClientID() string       { return viper.GetString("MQTT_CLIENT_ID") }
func MQTTRawTopic() string       { return viper.GetString("MQTT_RAW_TOPIC") }
func MQTTEngTopicPrefix() string { return viper.GetString("MQTT_ENG_TOPIC_PREFIX") }
func SimIntervalMs() int         { return viper.GetInt("SIM_INTERVAL_MS") }
func InfluxURL() string          { return viper.GetString("INFLUX_URL") }
func InfluxToken() string        { return viper.GetString("INFLUX_TOKEN") }
func InfluxOrg() string          { return viper.GetString("INFLUX_ORG") }
func InfluxBucket() string       { return viper.GetString("INFLUX_BUCKET") }
func AWSRegion() string          { return viper.GetString("AWS_REGION") }
func S3Bucket() string           { return viper.GetString("AWS_S3_BUCKET") }
func UseCloudServices() bool     { return viper.GetBool("USE_CLOUD_SERVICES") }
