// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/griswall/playoff-pool/models"
)

// sessionFromURL extracts a session from the implicit-grant parameters of a
// navigation URL. The fragment is checked first, then the query. It reports
// false when no access_token/refresh_token pair is present.
func sessionFromURL(raw string, now time.Time) (models.Session, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return models.Session{}, false
	}

	for _, encoded := range []string{u.Fragment, u.RawQuery} {
		params, err := url.ParseQuery(encoded)
		if err != nil {
			continue
		}

		access, refresh := params.Get("access_token"), params.Get("refresh_token")
		if access == "" || refresh == "" {
			continue
		}

		resp := models.TokenResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    params.Get("token_type"),
		}
		resp.ExpiresAt, _ = strconv.ParseInt(params.Get("expires_at"), 10, 64)
		resp.ExpiresIn, _ = strconv.ParseInt(params.Get("expires_in"), 10, 64)

		return resp.Session(now), true
	}

	return models.Session{}, false
}
