package impl

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/rogold/internal/config"
	"github.com/sidereusnuntius/rogold/internal/db"
)

type dbImpl struct {
	Config config.Configuration
	db     *sql.DB
	now    func() time.Time
}

func New(config config.Configuration, d *sql.DB) db.DB {
	return &dbImpl{
		Config: config,
		db:     d,
		now:    time.Now,
	}
}

// HandleError takes a database error and returns a higher level error that hides the implementation details
// and can be more easily handled by the calling functions without doing type assertions, checking error codes and
// comparing to sentinel errors.
func (d *dbImpl) HandleError(err error) error {
	switch err {
	case sql.ErrNoRows:
		return db.ErrNotFound
	default:
		if err != nil {
			log.Error().Err(err).Msg("game store query failed")
		}
		return err
	}
}
