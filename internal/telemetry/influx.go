package telemetry

import (
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
)

// Measurement is the Influx measurement scaled readings are written to.
const Measurement = "analog_reading"

// ReadingPoint builds the Influx point for one scaled reading.
func ReadingPoint(r domain.ScaledReading) *write.Point {
	tags := map[string]string{"channel": r.Channel}
	if r.Unit != "" {
		tags["unit"] = r.Unit
	}
	fields := map[string]interface{}{
		"value": r.Value,
		"raw":   r.Raw,
	}
	return influxdb2.NewPoint(Measurement, tags, fields, r.Timestamp)
}

// InfluxSink writes scaled readings through the non-blocking write API.
type InfluxSink struct {
	client influxdb2.Client
	api    api.WriteAPI
}

func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	opts := influxdb2.DefaultOptions().
		SetBatchSize(100).
		SetFlushInterval(1000)
	client := influxdb2.NewClientWithOptions(url, token, opts)
	w := client.WriteAPI(org, bucket)
	go func() {
		for err := range w.Errors() {
			log.Error().Err(err).Msg("influx write error")
		}
	}()
	return &InfluxSink{client: client, api: w}
}

func (s *InfluxSink) Write(r domain.ScaledReading) {
	s.api.WritePoint(ReadingPoint(r))
}

// Close flushes pending points and releases the client.
func (s *InfluxSink) Close() {
	s.api.Flush()
	s.client.Close()
}
