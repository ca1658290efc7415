// Copyright (C) 2025 IntuneHound Contributors
//
// This file is part of IntuneHound.
//
// IntuneHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// IntuneHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/gofrs/uuid"
)

func NewHTTPClient(proxyUrl string) (*http.Client, error) {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}

	if proxyUrl != "" {
		if proxy, err := url.Parse(proxyUrl); err != nil {
			return nil, err
		} else {
			transport.Proxy = http.ProxyURL(proxy)
		}
	}

	return &http.Client{Transport: transport}, nil
}

// NewRequest builds a request against the given endpoint, serializing the
// optional body as JSON and tagging the request with a client-request-id so
// failures can be correlated with the service's diagnostics.
func NewRequest(ctx context.Context, method string, endpoint *url.URL, body interface{}, params map[string]string, headers map[string]string) (*http.Request, error) {
	if len(params) > 0 {
		values := endpoint.Query()
		for key, value := range params {
			values.Set(key, value)
		}
		endpoint.RawQuery = values.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		if data, err := json.Marshal(body); err != nil {
			return nil, err
		} else {
			reader = bytes.NewReader(data)
		}
	}

	var (
		req *http.Request
		err error
	)
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	}
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestId, err := uuid.NewV4(); err == nil {
		req.Header.Set("client-request-id", requestId.String())
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
