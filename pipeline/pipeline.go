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

package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// Send emits a value to a channel unless done is signalled first. It reports
// whether the value was accepted; callers treat false as a request to stop.
func Send[T any](done <-chan struct{}, tgt chan<- T, value T) bool {
	select {
	case tgt <- value:
		return true
	case <-done:
		return false
	}
}

// SendAny is Send for untyped streams.
func SendAny(done <-chan struct{}, tgt chan<- any, value any) bool {
	select {
	case tgt <- value:
		return true
	case <-done:
		return false
	}
}

// FormatJson marshals each item of the stream into its JSON encoding.
// Items that fail to marshal are dropped with a note on stderr.
func FormatJson[T any](done <-chan struct{}, in <-chan T) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		for item := range in {
			if bytes, err := json.Marshal(item); err != nil {
				fmt.Fprintf(os.Stderr, "unable to marshal item: %v\n", err)
			} else if ok := Send(done, out, string(bytes)); !ok {
				return
			}
		}
	}()

	return out
}

// Map transforms a stream of T into a stream of U.
func Map[T, U any](done <-chan struct{}, in <-chan T, fn func(T) U) <-chan U {
	out := make(chan U)

	go func() {
		defer close(out)
		for item := range in {
			if ok := Send(done, out, fn(item)); !ok {
				return
			}
		}
	}()

	return out
}
