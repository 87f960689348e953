package service

import (
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

type Services struct {
	Tables *tables.Set
	Calc   *CalculatorService
	Sheets *SheetService
}

// New wires the services around one reference-table set. store may be nil,
// in which case sheet export reports ErrSheetsDisabled.
func New(set *tables.Set, store SheetStore) *Services {
	return &Services{
		Tables: set,
		Calc:   &CalculatorService{tables: set},
		Sheets: NewSheetService(store, set.Version),
	}
}
