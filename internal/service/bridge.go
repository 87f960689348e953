package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/calc"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/metrics"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

var ErrUnknownChannel = errors.New("unknown channel")

// Publisher sends a payload to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// ReadingSink stores scaled readings, e.g. as time-series points.
type ReadingSink interface {
	Write(r domain.ScaledReading)
}

type bridgeChannel struct {
	scaling calc.Scaling
	unit    string
}

// ScalingBridge converts raw analog counts arriving over MQTT into
// engineering values using each channel's linear scaling.
type ScalingBridge struct {
	channels map[string]bridgeChannel
	prefix   string
	pub      Publisher
	sink     ReadingSink
	now      func() time.Time
}

// NewScalingBridge resolves every channel's platform preset and rejects the
// configuration if any channel cannot be scaled. sink may be nil.
func NewScalingBridge(set *tables.Set, channels []domain.Channel, prefix string, pub Publisher, sink ReadingSink) (*ScalingBridge, error) {
	b := &ScalingBridge{
		channels: make(map[string]bridgeChannel, len(channels)),
		prefix:   strings.TrimSuffix(prefix, "/"),
		pub:      pub,
		sink:     sink,
		now:      time.Now,
	}
	for _, ch := range channels {
		if ch.Name == "" {
			return nil, errors.New("channel with empty name")
		}
		if _, dup := b.channels[ch.Name]; dup {
			return nil, fmt.Errorf("channel %s configured twice", ch.Name)
		}
		raw, _, err := calc.ResolveRawRange(set, tables.Platform(ch.Platform), calc.Range{Min: ch.RawMin, Max: ch.RawMax})
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", ch.Name, err)
		}
		sc := calc.Scaling{Raw: raw, Eng: calc.Range{Min: ch.EngMin, Max: ch.EngMax}}
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("channel %s: %w", ch.Name, err)
		}
		b.channels[ch.Name] = bridgeChannel{scaling: sc, unit: ch.Unit}
	}
	return b, nil
}

// Scale maps one raw reading. The channel comes from the payload, falling
// back to the last topic segment.
func (b *ScalingBridge) Scale(topic string, payload []byte) (domain.ScaledReading, error) {
	var in domain.RawReading
	if err := json.Unmarshal(payload, &in); err != nil {
		return domain.ScaledReading{}, fmt.Errorf("decode raw reading: %w", err)
	}
	if in.Channel == "" {
		in.Channel = path.Base(topic)
	}
	ch, ok := b.channels[in.Channel]
	if !ok {
		return domain.ScaledReading{}, fmt.Errorf("%s: %w", in.Channel, ErrUnknownChannel)
	}
	v, err := ch.scaling.ToEngineering(in.Raw)
	if err != nil {
		return domain.ScaledReading{}, fmt.Errorf("%s: %w", in.Channel, err)
	}
	if in.Timestamp.IsZero() {
		in.Timestamp = b.now()
	}
	return domain.ScaledReading{
		Channel:   in.Channel,
		Raw:       in.Raw,
		Value:     v,
		Display:   display(v),
		Unit:      ch.unit,
		Timestamp: in.Timestamp,
	}, nil
}

// Handle scales, republishes and stores one message. Bad messages are
// counted and dropped; only publish failures are returned.
func (b *ScalingBridge) Handle(topic string, payload []byte) error {
	r, err := b.Scale(topic, payload)
	if err != nil {
		metrics.BridgeMessages.WithLabelValues(metrics.OutcomeDropped).Inc()
		log.Warn().Err(err).Str("topic", topic).Msg("raw reading dropped")
		return nil
	}
	out, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode scaled reading: %w", err)
	}
	if err := b.pub.Publish(b.prefix+"/"+r.Channel, out); err != nil {
		metrics.BridgeMessages.WithLabelValues(metrics.OutcomeError).Inc()
		return fmt.Errorf("publish %s: %w", r.Channel, err)
	}
	if b.sink != nil {
		b.sink.Write(r)
	}
	metrics.BridgeMessages.WithLabelValues(metrics.OutcomeOK).Inc()
	return nil
}

// Channels lists the configured channel names.
func (b *ScalingBridge) Channels() []string {
	names := make([]string, 0, len(b.channels))
	for n := range b.channels {
		names = append(names, n)
	}
	return names
}
