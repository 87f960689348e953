package telemetry

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const connectRetries = 5

// ConnectMQTT dials the broker with exponential backoff and keeps
// reconnecting automatically once the first connection succeeds.
func ConnectMQTT(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warn().Err(err).Msg("mqtt connection lost")
		})

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 10 * time.Second

	var client mqtt.Client
	err := backoff.Retry(func() error {
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			log.Warn().Err(token.Error()).Str("broker", broker).Msg("mqtt connect failed")
			return token.Error()
		}
		return nil
	}, backoff.WithMaxRetries(bo, connectRetries-1))
	if err != nil {
		return nil, fmt.Errorf("could not establish MQTT connection after retries: %w", err)
	}
	log.Info().Str("broker", broker).Msg("connected to mqtt broker")
	return client, nil
}

// Publisher publishes to an MQTT client at QoS 0.
type Publisher struct {
	Client  mqtt.Client
	Timeout time.Duration
}

func NewPublisher(c mqtt.Client) *Publisher {
	return &Publisher{Client: c, Timeout: 5 * time.Second}
}

func (p *Publisher) Publish(topic string, payload []byte) error {
	token := p.Client.Publish(topic, 0, false, payload)
	if !token.WaitTimeout(p.Timeout) {
		return fmt.Errorf("publish %s: timed out", topic)
	}
	return token.Error()
}
