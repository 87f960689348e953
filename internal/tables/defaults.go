package tables

// DefaultVersion names the built-in table edition.
const DefaultVersion = "nec-2023"

// Default returns a fresh copy of the built-in tables.
func Default() *Set {
	return builtin.Clone()
}

var builtin = &Set{
	Version: DefaultVersion,

	// NEC 310.16, copper 75°C column; areas from NEC Chapter 9 Table 8.
	WireGauges: []WireGauge{
		{AWG: "14", Ampacity: 20, CircularMils: 4110},
		{AWG: "12", Ampacity: 25, CircularMils: 6530},
		{AWG: "10", Ampacity: 35, CircularMils: 10380},
		{AWG: "8", Ampacity: 50, CircularMils: 16510},
		{AWG: "6", Ampacity: 65, CircularMils: 26240},
		{AWG: "4", Ampacity: 85, CircularMils: 41740},
		{AWG: "3", Ampacity: 100, CircularMils: 52620},
		{AWG: "2", Ampacity: 115, CircularMils: 66360},
		{AWG: "1", Ampacity: 130, CircularMils: 83690},
		{AWG: "1/0", Ampacity: 150, CircularMils: 105600},
		{AWG: "2/0", Ampacity: 175, CircularMils: 133100},
		{AWG: "3/0", Ampacity: 200, CircularMils: 167800},
		{AWG: "4/0", Ampacity: 230, CircularMils: 211600},
		{AWG: "250", Ampacity: 255, CircularMils: 250000},
		{AWG: "300", Ampacity: 285, CircularMils: 300000},
		{AWG: "350", Ampacity: 310, CircularMils: 350000},
		{AWG: "400", Ampacity: 335, CircularMils: 400000},
		{AWG: "500", Ampacity: 380, CircularMils: 500000},
	},

	// Ω·cmil/ft
	Resistivity: map[ConductorMaterial]float64{
		Copper:   12.9,
		Aluminum: 21.2,
	},

	// NEC Table 430.250, three-phase induction motors.
	MotorFLA: map[float64]map[float64]float64{
		208: {0.5: 2.4, 0.75: 3.5, 1: 4.6, 1.5: 6.6, 2: 7.5, 3: 10.6, 5: 16.7, 7.5: 24.2, 10: 30.8,
			15: 46.2, 20: 59.4, 25: 74.8, 30: 88, 40: 114, 50: 143, 60: 169, 75: 211, 100: 273,
			125: 343, 150: 396, 200: 528},
		230: {0.5: 2.2, 0.75: 3.2, 1: 4.2, 1.5: 6.0, 2: 6.8, 3: 9.6, 5: 15.2, 7.5: 22, 10: 28,
			15: 42, 20: 54, 25: 68, 30: 80, 40: 104, 50: 130, 60: 154, 75: 192, 100: 248,
			125: 312, 150: 360, 200: 480},
		460: {0.5: 1.1, 0.75: 1.6, 1: 2.1, 1.5: 3.0, 2: 3.4, 3: 4.8, 5: 7.6, 7.5: 11, 10: 14,
			15: 21, 20: 27, 25: 34, 30: 40, 40: 52, 50: 65, 60: 77, 75: 96, 100: 124,
			125: 156, 150: 180, 200: 240},
		575: {0.5: 0.9, 0.75: 1.3, 1: 1.7, 1.5: 2.4, 2: 2.7, 3: 3.9, 5: 6.1, 7.5: 9, 10: 11,
			15: 17, 20: 22, 25: 27, 30: 32, 40: 41, 50: 52, 60: 62, 75: 77, 100: 99,
			125: 125, 150: 144, 200: 192},
	},

	// NEC 240.6(A)
	BreakerSizes: standardSizes,
	FuseSizes:    standardSizes,

	// W/(m²·K)
	EnclosureMaterials: map[EnclosureMaterial]float64{
		PaintedSteel:   5.5,
		StainlessSteel: 3.7,
		AluminumSheet:  12,
		Polycarbonate:  3.5,
	},

	// IEC/TR 60890 surface factors: 1.8 for exposed vertical faces, 1.4 for an
	// exposed top or a wall-covered face pair, halved where the floor covers the base.
	Mountings: map[Mounting]FaceWeights{
		FreeStanding:      {FrontBack: 1.8, Sides: 1.8, TopBottom: 1.4},
		WallMounted:       {FrontBack: 1.4, Sides: 1.8, TopBottom: 1.4},
		GroundMounted:     {FrontBack: 1.8, Sides: 1.8, TopBottom: 0.7},
		GroundWallMounted: {FrontBack: 1.4, Sides: 1.8, TopBottom: 0.7},
	},

	Quantities: map[Quantity]QuantityDef{
		Pressure: {Canonical: "bar", Units: []Unit{
			{Key: "bar", Symbol: "bar", Label: "Bar", Factor: 1},
			{Key: "psi", Symbol: "psi", Label: "Pounds per square inch", Factor: 14.5038},
			{Key: "kpa", Symbol: "kPa", Label: "Kilopascal", Factor: 100},
		}},
		Temperature: {Canonical: "c", Units: []Unit{
			{Key: "c", Symbol: "°C", Label: "Celsius", Factor: 1},
			{Key: "f", Symbol: "°F", Label: "Fahrenheit", Factor: 9.0 / 5.0, Offset: 32},
			{Key: "k", Symbol: "K", Label: "Kelvin", Factor: 1, Offset: 273.15},
		}},
		Flow: {Canonical: "lpm", Units: []Unit{
			{Key: "lpm", Symbol: "L/min", Label: "Litres per minute", Factor: 1},
			{Key: "gpm", Symbol: "GPM", Label: "US gallons per minute", Factor: 1 / 3.78541},
			{Key: "m3h", Symbol: "m³/h", Label: "Cubic metres per hour", Factor: 1 / 16.6667},
		}},
		Distance: {Canonical: "mm", Units: []Unit{
			{Key: "mm", Symbol: "mm", Label: "Millimetre", Factor: 1},
			{Key: "in", Symbol: "in", Label: "Inch", Factor: 1 / 25.4},
			{Key: "ft", Symbol: "ft", Label: "Foot", Factor: 1 / 304.8},
		}},
		Torque: {Canonical: "nm", Units: []Unit{
			{Key: "nm", Symbol: "N·m", Label: "Newton metre", Factor: 1},
			{Key: "ftlb", Symbol: "ft·lb", Label: "Foot-pound", Factor: 1 / 1.35582},
		}},
	},

	Platforms: map[Platform]PlatformPreset{
		PlatformCustom:     {Label: "Custom"},
		PlatformSiemensS7:  {Label: "Siemens S7-1200/1500 analog input", RawMin: 0, RawMax: 27648},
		PlatformRockwell:   {Label: "Rockwell 1769 analog input (raw/proportional)", RawMin: 0, RawMax: 32767},
		PlatformRockwell4k: {Label: "Rockwell 4-20 mA (scaled for PID)", RawMin: 3277, RawMax: 16384},
	},

	// IEC 60751 PT100
	RTD: RTDCoefficients{R0: 100.0, A: 3.9083e-3, B: -5.775e-7},
}

var standardSizes = []float64{
	15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100, 110, 125, 150, 175, 200, 225,
	250, 300, 350, 400, 450, 500, 600, 700, 800, 1000, 1200, 1600, 2000, 2500, 3000,
	4000, 5000, 6000,
}
