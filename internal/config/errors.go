// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrNoTokenSignKey is returned by validation when no JWT signing key was
	// provided by any configuration source. The server cannot issue or verify
	// bearer tokens without it, so startup is aborted.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrUnknownDBDriver is returned by validation when the configured
	// database driver is neither "pgx" nor "sqlite3".
	ErrUnknownDBDriver = errors.New("unknown database driver")
)
