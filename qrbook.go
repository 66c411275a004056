// Package qrbook - saved QR code library backed by SQLite
package qrbook

import (
	"context"
	"fmt"

	"github.com/alwitt/qrbook/config"
	"github.com/alwitt/qrbook/db"
	"github.com/alwitt/qrbook/store"
)

/*
NewLibrary initialize a QR library instance.

Each instance is backed by a SQLite database file; the tables are created if they are
missing. Two instances using the same file see the same library.

	@param ctx context.Context - execution context
	@param settings config.Settings - runtime settings
	@returns new library instance, and the persistence client to close when done
*/
func NewLibrary(
	ctx context.Context, settings config.Settings,
) (store.Library, db.Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	// Prepare persistence
	persistence, err := db.NewConnection(
		db.GetSqliteDialector(settings.DBFile), settings.SQLLogLevel(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialized persistence client [%w]", err)
	}

	if err := persistence.RunSQLInTransaction(ctx, db.DefineTables); err != nil {
		_ = persistence.Close()
		return nil, nil, fmt.Errorf("failed to prepare library tables [%w]", err)
	}

	library, err := store.NewLibrary(ctx, store.LibraryParams{
		Persistence:            persistence,
		DefaultSizePx:          settings.DefaultSizePx,
		DefaultErrorCorrection: settings.ErrorCorrection(),
		RecentLimit:            settings.RecentLimit,
		Collation:              settings.Collation(),
		CalendarLocation:       settings.CalendarLocation(),
	})
	if err != nil {
		_ = persistence.Close()
		return nil, nil, fmt.Errorf("failed to initialized QR library [%w]", err)
	}

	return library, persistence, nil
}
