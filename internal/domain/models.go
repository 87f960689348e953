package domain

import "time"

// Requests carry numbers exactly as the user typed them; parsing happens in
// the service layer so a bad field becomes an advisory, never a 4xx.

type ScaleRequest struct {
	Platform  string `json:"platform"`
	RawMin    string `json:"raw_min"`
	RawMax    string `json:"raw_max"`
	EngMin    string `json:"eng_min"`
	EngMax    string `json:"eng_max"`
	Direction string `json:"direction"`
	Value     string `json:"value"`
	Snippets  bool   `json:"snippets"`
}

type ScaleResponse struct {
	Platform  string            `json:"platform"`
	RawMode   string            `json:"raw_mode"`
	RawMin    string            `json:"raw_min"`
	RawMax    string            `json:"raw_max"`
	Direction string            `json:"direction"`
	Result    string            `json:"result"`
	Snippets  map[string]string `json:"snippets,omitempty"`
	Error     string            `json:"error"`
}

type SnippetRequest struct {
	Platform string `json:"platform"`
	RawMin   string `json:"raw_min"`
	RawMax   string `json:"raw_max"`
	EngMin   string `json:"eng_min"`
	EngMax   string `json:"eng_max"`
	Template string `json:"template"`
}

type SnippetResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

type ConvertRequest struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Value    string `json:"value"`
}

type ConvertResponse struct {
	Quantity string            `json:"quantity"`
	Values   map[string]string `json:"values"`
	Error    string            `json:"error"`
}

type RTDRequest struct {
	Resistance string `json:"resistance"`
}

type RTDResponse struct {
	Temperature string `json:"temperature"`
	Error       string `json:"error"`
}

type MotorProtectionRequest struct {
	Horsepower string `json:"horsepower"`
	Voltage    string `json:"voltage"`
}

type MotorProtectionResponse struct {
	FLA                  string `json:"fla"`
	MinConductorAmpacity string `json:"min_conductor_ampacity"`
	Conductor            string `json:"conductor"`
	ConductorAmpacity    string `json:"conductor_ampacity"`
	OverloadMin          string `json:"overload_min"`
	OverloadMax          string `json:"overload_max"`
	Breaker              string `json:"breaker"`
	BreakerSaturated     bool   `json:"breaker_saturated"`
	Fuse                 string `json:"fuse"`
	FuseSaturated        bool   `json:"fuse_saturated"`
	Error                string `json:"error"`
}

type EnclosureRequest struct {
	Height       string `json:"height"`
	Width        string `json:"width"`
	Depth        string `json:"depth"`
	InternalTemp string `json:"internal_temp"`
	ExternalTemp string `json:"external_temp"`
	HeatLoad     string `json:"heat_load"`
	Mounting     string `json:"mounting"`
	Material     string `json:"material"`
}

type EnclosureResponse struct {
	SurfaceArea     string `json:"surface_area"`
	DeltaT          string `json:"delta_t"`
	PassiveLoss     string `json:"passive_loss"`
	RequiredCooling string `json:"required_cooling"`
	CoolingRequired bool   `json:"cooling_required"`
	Airflow         string `json:"airflow"`
	CoolingBTUH     string `json:"cooling_btuh"`
	RecommendedBTUH string `json:"recommended_btuh"`
	Error           string `json:"error"`
}

type VoltageDropRequest struct {
	Voltage      string `json:"voltage"`
	Phase        string `json:"phase"`
	Current      string `json:"current"`
	Material     string `json:"material"`
	Gauge        string `json:"gauge"`
	Distance     string `json:"distance"`
	DistanceUnit string `json:"distance_unit"`
}

type VoltageDropResponse struct {
	DistanceFt       string `json:"distance_ft"`
	DropVolts        string `json:"drop_volts"`
	DropPercent      string `json:"drop_percent"`
	LoadVoltage      string `json:"load_voltage"`
	Rating           string `json:"rating"`
	SuggestedGauge   string `json:"suggested_gauge"`
	SuggestedPercent string `json:"suggested_percent"`
	Error            string `json:"error"`
}

type MotorFLARequest struct {
	Horsepower  string `json:"horsepower"`
	Voltage     string `json:"voltage"`
	Phase       string `json:"phase"`
	Efficiency  string `json:"efficiency"`
	PowerFactor string `json:"power_factor"`
}

type MotorFLAResponse struct {
	FLA   string `json:"fla"`
	Error string `json:"error"`
}

// SheetRequest carries already-formatted calculator fields for export.
type SheetRequest struct {
	Calculator string      `json:"calculator"`
	Title      string      `json:"title"`
	Inputs     []SheetLine `json:"inputs"`
	Outputs    []SheetLine `json:"outputs"`
}

type SheetLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SheetResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// RawReading is a PLC analog count published on the raw topic.
type RawReading struct {
	Channel   string    `json:"channel"`
	Raw       float64   `json:"raw"`
	Timestamp time.Time `json:"timestamp"`
}

// ScaledReading is a RawReading mapped into engineering units.
type ScaledReading struct {
	Channel   string    `json:"channel"`
	Raw       float64   `json:"raw"`
	Value     float64   `json:"value"`
	Display   string    `json:"display"`
	Unit      string    `json:"unit"`
	Timestamp time.Time `json:"timestamp"`
}

// Channel binds a named analog input to its scaling.
type Channel struct {
	Name     string  `mapstructure:"name" json:"name"`
	Platform string  `mapstructure:"platform" json:"platform"`
	RawMin   float64 `mapstructure:"raw_min" json:"raw_min"`
	RawMax   float64 `mapstructure:"raw_max" json:"raw_max"`
	EngMin   float64 `mapstructure:"eng_min" json:"eng_min"`
	EngMax   float64 `mapstructure:"eng_max" json:"eng_max"`
	Unit     string  `mapstructure:"unit" json:"unit"`
}

// Table override rows as stored in Postgres.

type WireGaugeRow struct {
	Version      string  `db:"version"`
	Position     int     `db:"position"`
	AWG          string  `db:"awg"`
	Ampacity     float64 `db:"ampacity"`
	CircularMils float64 `db:"circular_mils"`
}

type MotorFLARow struct {
	Version string  `db:"version"`
	Volts   float64 `db:"volts"`
	HP      float64 `db:"hp"`
	FLA     float64 `db:"fla"`
}

type DeviceSizeRow struct {
	Version string  `db:"version"`
	Kind    string  `db:"kind"`
	Amps    float64 `db:"amps"`
}
