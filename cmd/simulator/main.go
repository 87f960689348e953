package main

import (
	"encoding/json"
	"math"
	"path"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/calc"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/config"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/telemetry"
)

// sweepPeriod is the length of one sine sweep across a channel's raw range.
const sweepPeriod = 60 * time.Second

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	config.SetupLogging()

	channels, err := config.Channels()
	if err != nil {
		log.Fatal().Err(err).Msg("channel config invalid")
	}
	set := tables.Default()
	ranges := make(map[string]calc.Range, len(channels))
	for _, ch := range channels {
		raw, _, err := calc.ResolveRawRange(set, tables.Platform(ch.Platform), calc.Range{Min: ch.RawMin, Max: ch.RawMax})
		if err != nil {
			log.Fatal().Err(err).Str("channel", ch.Name).Msg("bad channel")
		}
		ranges[ch.Name] = raw
	}

	client, err := telemetry.ConnectMQTT(config.MQTTBroker(), config.MQTTClientID()+"-sim")
	if err != nil {
		log.Fatal().Err(err).Msg("mqtt connect")
	}
	defer client.Disconnect(250)
	pub := telemetry.NewPublisher(client)

	// Publish to the subscription's parent, one subtopic per channel.
	base := path.Dir(config.MQTTRawTopic())
	start := time.Now()
	ticker := time.NewTicker(time.Duration(config.SimIntervalMs()) * time.Millisecond)
	defer ticker.Stop()

	log.Info().Int("channels", len(ranges)).Str("topic", base).Msg("simulator running")
	for now := range ticker.C {
		phase := 2 * math.Pi * now.Sub(start).Seconds() / sweepPeriod.Seconds()
		for name, raw := range ranges {
			r := domain.RawReading{
				Channel:   name,
				Raw:       math.Round(raw.Min + raw.Span()*(0.5+0.5*math.Sin(phase))),
				Timestamp: now.UTC(),
			}
			payload, _ := json.Marshal(r)
			if err := pub.Publish(base+"/"+name, payload); err != nil {
				log.Error().Err(err).Str("channel", name).Msg("publish failed")
			}
		}
	}
}
