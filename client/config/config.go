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

package config

import (
	"fmt"
	"strings"

	"github.com/intunehound/intunehound/constants"
)

// Config carries everything the Graph client needs for an authenticated
// session. Token acquisition happens outside this program; JWT holds an
// already-valid bearer token.
type Config struct {
	Tenant   string // The directory tenant to collect from, id or domain
	JWT      string // Pre-acquired bearer token for the Graph audience
	Graph    string // Base URL of the Microsoft Graph endpoint
	ProxyUrl string // Optional forward proxy
}

func (s Config) GraphUrl() string {
	if s.Graph != "" {
		return strings.TrimSuffix(s.Graph, "/")
	}
	return constants.AzGraphUrl
}

func (s Config) Validate() error {
	if s.Tenant == "" {
		return fmt.Errorf("tenant must be provided")
	}
	if s.JWT == "" {
		return fmt.Errorf("a bearer token must be provided; acquire one with your identity tooling and pass it via --jwt")
	}
	return nil
}
