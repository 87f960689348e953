package database

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/config"
)

// Connect opens the reference-table database, retrying with exponential
// backoff while Postgres is still coming up.
func Connect() (*sqlx.DB, error) {
	dsn := config.DatabaseDSN()
	retries := config.DBConnectRetries()
	if retries < 1 {
		retries = 1
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	var db *sqlx.DB
	err := backoff.Retry(func() error {
		var err error
		db, err = sqlx.Connect("pgx", dsn)
		if err != nil {
			log.Warn().Err(err).Msg("database not reachable, retrying")
		}
		return err
	}, backoff.WithMaxRetries(bo, uint64(retries-1)))
	if err != nil {
		return nil, fmt.Errorf("connect database after %d attempts: %w", retries, err)
	}
	return db, nil
}
