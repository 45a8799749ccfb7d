// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/config"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/store/dbstore"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/store/filestore"
)

// Both backends satisfy the Store contract.
var (
	_ Store = (*dbstore.Store)(nil)
	_ Store = (*filestore.Store)(nil)
)

// Open creates the persistence backend resolved in the configuration and
// runs any pending migrations. The choice is final for the process lifetime.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	backend := cfg.Backend()
	switch backend.Kind {
	case config.BackendPostgres:
		logger.Info("opening postgres store")
		return dbstore.Open(ctx, dbstore.DialectPostgres, backend.DSN, logger)
	case config.BackendSQLite:
		logger.Info("opening sqlite store", "path", backend.DSN)
		return dbstore.Open(ctx, dbstore.DialectSQLite, backend.DSN, logger)
	case config.BackendFile:
		logger.Info("opening file store", "dir", backend.DataDir)
		return filestore.Open(backend.DataDir, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend.Kind)
	}
}
