package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/metrics"
)

var (
	ErrSheetsDisabled = errors.New("sheet export disabled")
	ErrInvalidSheet   = errors.New("invalid sheet")
)

// SheetStore persists rendered sheets and hands back a download URL.
type SheetStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	List(ctx context.Context, prefix string) ([]string, error)
}

var sheetCalculators = map[string]bool{
	CalcScale:           true,
	CalcConvert:         true,
	CalcRTD:             true,
	CalcMotorProtection: true,
	CalcEnclosure:       true,
	CalcVoltageDrop:     true,
	CalcMotorFLA:        true,
}

// SheetService exports calculation sheets on explicit user request. Field
// values are opaque display strings; nothing is recomputed here.
type SheetService struct {
	store        SheetStore
	tableVersion string
	now          func() time.Time
	newID        func() string
}

func NewSheetService(store SheetStore, tableVersion string) *SheetService {
	return &SheetService{
		store:        store,
		tableVersion: tableVersion,
		now:          time.Now,
		newID:        func() string { return uuid.NewString() },
	}
}

func (s *SheetService) Enabled() bool { return s.store != nil }

func (s *SheetService) Export(ctx context.Context, req domain.SheetRequest) (domain.SheetResponse, error) {
	if s.store == nil {
		return domain.SheetResponse{}, ErrSheetsDisabled
	}
	if !sheetCalculators[req.Calculator] {
		return domain.SheetResponse{}, fmt.Errorf("calculator %q: %w", req.Calculator, ErrInvalidSheet)
	}
	if len(req.Outputs) == 0 {
		return domain.SheetResponse{}, fmt.Errorf("no outputs: %w", ErrInvalidSheet)
	}

	at := s.now().UTC()
	key := path.Join("sheets", req.Calculator, at.Format("2006-01-02"), s.newID()+".txt")
	url, err := s.store.Put(ctx, key, RenderSheet(req, s.tableVersion, at), "text/plain; charset=utf-8")
	if err != nil {
		metrics.SheetExports.WithLabelValues(metrics.OutcomeError).Inc()
		return domain.SheetResponse{}, fmt.Errorf("store sheet: %w", err)
	}
	metrics.SheetExports.WithLabelValues(metrics.OutcomeOK).Inc()
	log.Info().Str("key", key).Str("calculator", req.Calculator).Msg("sheet exported")
	return domain.SheetResponse{Key: key, URL: url}, nil
}

// List returns stored sheet keys, optionally for one calculator.
func (s *SheetService) List(ctx context.Context, calculator string) ([]string, error) {
	if s.store == nil {
		return nil, ErrSheetsDisabled
	}
	prefix := "sheets/"
	if calculator != "" {
		if !sheetCalculators[calculator] {
			return nil, fmt.Errorf("calculator %q: %w", calculator, ErrInvalidSheet)
		}
		prefix += calculator + "/"
	}
	return s.store.List(ctx, prefix)
}

// RenderSheet lays the sheet out as aligned plain text.
func RenderSheet(req domain.SheetRequest, tableVersion string, at time.Time) []byte {
	var b strings.Builder
	title := req.Title
	if title == "" {
		title = req.Calculator
	}
	fmt.Fprintf(&b, "%s\n%s\n", title, strings.Repeat("=", len([]rune(title))))
	fmt.Fprintf(&b, "Calculator: %s\nTables:     %s\nGenerated:  %s\n", req.Calculator, tableVersion, at.Format(time.RFC3339))

	section := func(name string, lines []domain.SheetLine) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s\n", name)
		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, l := range lines {
			fmt.Fprintf(tw, "  %s\t%s\n", l.Label, l.Value)
		}
		tw.Flush()
	}
	section("Inputs", req.Inputs)
	section("Results", req.Outputs)
	return []byte(b.String())
}
