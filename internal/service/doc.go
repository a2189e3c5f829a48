// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the process-wide backend access state: the lazily
// built client handle ([ClientCache]) and the memoized admin status
// ([AdminStatusCache]), composed behind [Services].
package service
