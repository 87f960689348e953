package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

type published struct {
	topic   string
	payload []byte
}

type fakePublisher struct {
	sent []published
	err  error
}

func (p *fakePublisher) Publish(topic string, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{topic, payload})
	return nil
}

type fakeSink struct {
	readings []domain.ScaledReading
}

func (s *fakeSink) Write(r domain.ScaledReading) { s.readings = append(s.readings, r) }

var testChannels = []domain.Channel{
	{Name: "PT-101", Platform: "siemens_s7", EngMin: 0, EngMax: 10, Unit: "bar"},
	{Name: "FT-200", RawMin: 4, RawMax: 20, EngMin: 0, EngMax: 250, Unit: "lpm"},
}

func newBridge(t *testing.T, pub Publisher, sink ReadingSink) *ScalingBridge {
	t.Helper()
	b, err := NewScalingBridge(tables.Default(), testChannels, "plant/analog/eng/", pub, sink)
	require.NoError(t, err)
	b.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return b
}

func TestBridgeScalesAndPublishes(t *testing.T) {
	pub, sink := &fakePublisher{}, &fakeSink{}
	b := newBridge(t, pub, sink)

	require.NoError(t, b.Handle("plant/analog/raw/PT-101", []byte(`{"raw": 13824}`)))
	require.Len(t, pub.sent, 1)
	assert.Equal(t, "plant/analog/eng/PT-101", pub.sent[0].topic)

	var got domain.ScaledReading
	require.NoError(t, json.Unmarshal(pub.sent[0].payload, &got))
	assert.Equal(t, "PT-101", got.Channel)
	assert.InDelta(t, 5.0, got.Value, 1e-9)
	assert.Equal(t, "5", got.Display)
	assert.Equal(t, "bar", got.Unit)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), got.Timestamp)

	require.Len(t, sink.readings, 1)
	assert.Equal(t, got.Value, sink.readings[0].Value)
}

func TestBridgePayloadChannelWinsOverTopic(t *testing.T) {
	pub := &fakePublisher{}
	b := newBridge(t, pub, nil)

	ts := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	payload, _ := json.Marshal(domain.RawReading{Channel: "FT-200", Raw: 12, Timestamp: ts})
	require.NoError(t, b.Handle("plant/analog/raw/ignored", payload))

	require.Len(t, pub.sent, 1)
	assert.Equal(t, "plant/analog/eng/FT-200", pub.sent[0].topic)
	var got domain.ScaledReading
	require.NoError(t, json.Unmarshal(pub.sent[0].payload, &got))
	assert.InDelta(t, 125.0, got.Value, 1e-9)
	assert.Equal(t, ts, got.Timestamp)
}

func TestBridgeDropsBadMessages(t *testing.T) {
	pub, sink := &fakePublisher{}, &fakeSink{}
	b := newBridge(t, pub, sink)

	assert.NoError(t, b.Handle("plant/analog/raw/PT-101", []byte(`not json`)))
	assert.NoError(t, b.Handle("plant/analog/raw/XX-999", []byte(`{"raw": 1}`)))
	assert.Empty(t, pub.sent)
	assert.Empty(t, sink.readings)

	_, err := b.Scale("plant/analog/raw/XX-999", []byte(`{"raw": 1}`))
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestBridgeReturnsPublishFailure(t *testing.T) {
	pub, sink := &fakePublisher{err: errors.New("not connected")}, &fakeSink{}
	b := newBridge(t, pub, sink)

	err := b.Handle("plant/analog/raw/PT-101", []byte(`{"raw": 0}`))
	assert.ErrorContains(t, err, "not connected")
	assert.Empty(t, sink.readings)
}

func TestNewScalingBridgeRejectsBadChannels(t *testing.T) {
	set := tables.Default()
	cases := map[string][]domain.Channel{
		"empty name":     {{RawMax: 1, EngMax: 1}},
		"duplicate":      {{Name: "a", RawMax: 1, EngMax: 1}, {Name: "a", RawMax: 1, EngMax: 1}},
		"zero raw span":  {{Name: "a", RawMin: 3, RawMax: 3, EngMax: 1}},
		"unknown preset": {{Name: "a", Platform: "plc5", EngMax: 1}},
	}
	for name, chs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewScalingBridge(set, chs, "eng", &fakePublisher{}, nil)
			assert.Error(t, err)
		})
	}
}

func TestBridgeChannels(t *testing.T) {
	b := newBridge(t, &fakePublisher{}, nil)
	assert.ElementsMatch(t, []string{"PT-101", "FT-200"}, b.Channels())
}
