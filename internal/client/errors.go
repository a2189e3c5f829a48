// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrUnknownCommand is returned by [NewApp] for a command it cannot run.
var ErrUnknownCommand = errors.New("unknown command")
