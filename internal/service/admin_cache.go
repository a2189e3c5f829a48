// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/griswall/playoff-pool/internal/logger"
)

// AdminStatusCache memoizes the current user's admin status.
//
// The status is unknown until the first check, then true or false until
// Clear. Concurrent callers on an unknown status share one underlying check.
// A check that was in flight when Clear ran does not repopulate the cache.
type AdminStatusCache struct {
	checker AdminChecker
	logger  *logger.Logger
	group   singleflight.Group

	mu         sync.Mutex
	known      bool
	isAdmin    bool
	generation uint64
}

// NewAdminStatusCache returns an empty AdminStatusCache backed by checker.
func NewAdminStatusCache(checker AdminChecker, log *logger.Logger) *AdminStatusCache {
	return &AdminStatusCache{checker: checker, logger: log.WithComponent("admin_cache")}
}

// CheckIsAdmin returns the cached status, running the check on a miss. It
// never fails: a failed check is logged and cached as false. The check keeps
// ctx's values but not its cancellation.
func (c *AdminStatusCache) CheckIsAdmin(ctx context.Context) bool {
	c.mu.Lock()
	if c.known {
		isAdmin := c.isAdmin
		c.mu.Unlock()
		return isAdmin
	}
	gen := c.generation
	c.mu.Unlock()

	v, _, _ := c.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		// a check for this generation may have finished since the miss
		c.mu.Lock()
		if c.known && c.generation == gen {
			isAdmin := c.isAdmin
			c.mu.Unlock()
			return isAdmin, nil
		}
		c.mu.Unlock()

		// shared by every caller of this generation
		isAdmin, err := c.checker.IsAdmin(context.WithoutCancel(ctx))
		if err != nil {
			c.logger.Warn().Err(err).Msg("admin check failed, treating user as non-admin")
			isAdmin = false
		}

		c.mu.Lock()
		if c.generation == gen {
			c.known = true
			c.isAdmin = isAdmin
		}
		c.mu.Unlock()

		return isAdmin, nil
	})

	return v.(bool)
}

// Clear forgets the cached status. The next CheckIsAdmin runs a new check.
func (c *AdminStatusCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.known = false
	c.isAdmin = false
	c.generation++
}
