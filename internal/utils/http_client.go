// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewBackendHTTPClient returns an HTTPClient bound to baseURL that sends the
// project's anon key as the "apikey" header on every request and encodes
// bodies with goccy/go-json. A non-positive timeout leaves resty's default in
// place.
func NewBackendHTTPClient(baseURL, anonKey string, timeout time.Duration) *HTTPClient {
	client := NewHTTPClient()
	client.
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetBaseURL(baseURL).
		SetHeader("apikey", anonKey).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return client
}
