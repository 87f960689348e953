package main

import (
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/config"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/service"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/telemetry"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	config.SetupLogging()

	channels, err := config.Channels()
	if err != nil {
		log.Fatal().Err(err).Msg("channel config invalid")
	}
	if len(channels) == 0 {
		log.Fatal().Msg("no channels configured; add them to toolkit.yaml")
	}

	client, err := telemetry.ConnectMQTT(config.MQTTBroker(), config.MQTTClientID())
	if err != nil {
		log.Fatal().Err(err).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	var sink service.ReadingSink
	if url := config.InfluxURL(); url != "" {
		influx := telemetry.NewInfluxSink(url, config.InfluxToken(), config.InfluxOrg(), config.InfluxBucket())
		defer influx.Close()
		sink = influx
		log.Info().Str("url", url).Msg("writing readings to influx")
	}

	bridge, err := service.NewScalingBridge(tables.Default(), channels, config.MQTTEngTopicPrefix(), telemetry.NewPublisher(client), sink)
	if err != nil {
		log.Fatal().Err(err).Msg("scaling bridge")
	}

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		if err := bridge.Handle(msg.Topic(), msg.Payload()); err != nil {
			log.Error().Err(err).Msg("bridge failed")
		}
	}
	topic := config.MQTTRawTopic()
	if token := client.Subscribe(topic, 0, handler); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}

	log.Info().Str("topic", topic).Strs("channels", bridge.Channels()).Msg("ingestor running; Ctrl+C to stop")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("ingestor stopping")
}
