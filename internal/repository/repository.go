package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

// Device kinds in device_sizes.
const (
	KindBreaker = "breaker"
	KindFuse    = "fuse"
)

var ErrUnknownVersion = errors.New("unknown table version")

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

func (r *Repos) WireGauges(ctx context.Context, version string) ([]domain.WireGaugeRow, error) {
	var out []domain.WireGaugeRow
	err := r.db.SelectContext(ctx, &out,
		`SELECT version, position, awg, ampacity, circular_mils FROM wire_gauges WHERE version = $1 ORDER BY position`, version)
	return out, err
}

func (r *Repos) MotorFLA(ctx context.Context, version string) ([]domain.MotorFLARow, error) {
	var out []domain.MotorFLARow
	err := r.db.SelectContext(ctx, &out,
		`SELECT version, volts, hp, fla FROM motor_fla WHERE version = $1 ORDER BY volts, hp`, version)
	return out, err
}

func (r *Repos) DeviceSizes(ctx context.Context, version string) ([]domain.DeviceSizeRow, error) {
	var out []domain.DeviceSizeRow
	err := r.db.SelectContext(ctx, &out,
		`SELECT version, kind, amps FROM device_sizes WHERE version = $1 ORDER BY kind, amps`, version)
	return out, err
}

// TableVersions lists every version with at least one override row.
func (r *Repos) TableVersions(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.SelectContext(ctx, &out, `
		SELECT version FROM wire_gauges
		UNION SELECT version FROM motor_fla
		UNION SELECT version FROM device_sizes
		ORDER BY version`)
	return out, err
}

// LoadTableSet reads the overrides for version and layers them over the
// built-in tables. The built-in version needs no rows.
func (r *Repos) LoadTableSet(ctx context.Context, version string) (*tables.Set, error) {
	gauges, err := r.WireGauges(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("load wire gauges: %w", err)
	}
	fla, err := r.MotorFLA(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("load motor fla: %w", err)
	}
	sizes, err := r.DeviceSizes(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("load device sizes: %w", err)
	}
	if version != tables.DefaultVersion && len(gauges)+len(fla)+len(sizes) == 0 {
		return nil, fmt.Errorf("%s: %w", version, ErrUnknownVersion)
	}
	return ApplyOverrides(tables.Default(), version, gauges, fla, sizes)
}

// ApplyOverrides replaces whole tables in base with any rows given for them.
// Tables without rows keep their built-in values. The result must validate.
func ApplyOverrides(base *tables.Set, version string, gauges []domain.WireGaugeRow, fla []domain.MotorFLARow, sizes []domain.DeviceSizeRow) (*tables.Set, error) {
	set := base.Clone()
	set.Version = version

	if len(gauges) > 0 {
		rows := append([]domain.WireGaugeRow(nil), gauges...)
		sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
		set.WireGauges = make([]tables.WireGauge, 0, len(rows))
		for _, g := range rows {
			set.WireGauges = append(set.WireGauges, tables.WireGauge{AWG: g.AWG, Ampacity: g.Ampacity, CircularMils: g.CircularMils})
		}
	}

	if len(fla) > 0 {
		set.MotorFLA = map[float64]map[float64]float64{}
		for _, row := range fla {
			if set.MotorFLA[row.Volts] == nil {
				set.MotorFLA[row.Volts] = map[float64]float64{}
			}
			set.MotorFLA[row.Volts][row.HP] = row.FLA
		}
	}

	var breakers, fuses []float64
	for _, s := range sizes {
		switch s.Kind {
		case KindBreaker:
			breakers = append(breakers, s.Amps)
		case KindFuse:
			fuses = append(fuses, s.Amps)
		default:
			return nil, fmt.Errorf("device size kind %q", s.Kind)
		}
	}
	if len(breakers) > 0 {
		sort.Float64s(breakers)
		set.BreakerSizes = breakers
	}
	if len(fuses) > 0 {
		sort.Float64s(fuses)
		set.FuseSizes = fuses
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("table version %s: %w", version, err)
	}
	return set, nil
}
