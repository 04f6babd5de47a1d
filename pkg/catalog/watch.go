// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     catalog
// Description: Reapplies a catalog file whenever it changes on disk
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package catalog

import (
	"context"

	"github.com/msto63/munits/foundation/core/config"
	mdwlog "github.com/msto63/munits/foundation/core/log"
	"github.com/msto63/munits/pkg/units"
)

// Watch reloads the catalog at path on every change and applies it to r.
// Units that disappear from the file stay registered. A broken file is
// logged and leaves the provider as it was. The returned channel is closed
// once watching has stopped after ctx is cancelled.
func Watch(ctx context.Context, path string, r units.Registrar, logger *mdwlog.Logger) (<-chan struct{}, error) {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	logger = logger.WithName("catalog").WithField("path", path)

	options := config.WatchOptions{
		OnError: func(err error) {
			logger.WarnWithErr("catalog watcher error", err)
		},
	}

	done, err := config.WatchFile(ctx, path, options, func() {
		timer := logger.StartTimer("catalog.reload")

		c, err := Load(path)
		if err == nil {
			err = c.Apply(r)
		}
		if err != nil {
			timer.StopWithError(err)
			logger.LogError(err)
			return
		}

		timer.Stop()
		logger.Info("catalog reloaded", mdwlog.Fields{"units": c.Len()})
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("watching catalog")
	return done, nil
}
