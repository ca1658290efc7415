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

package panicrecovery

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/go-logr/logr"
)

var panicChan = make(chan error, 8)

// PanicRecovery converts a panic in a collection goroutine into an error on
// the shared panic channel so the process can shut down cleanly instead of
// crashing mid-collection. Use as `defer panicrecovery.PanicRecovery()`.
func PanicRecovery() {
	if recovery := recover(); recovery != nil {
		select {
		case panicChan <- fmt.Errorf("panic: %v\n%s", recovery, debug.Stack()):
		default:
		}
	}
}

// HandleBubbledPanic cancels the running collection when any goroutine
// reports a recovered panic.
func HandleBubbledPanic(ctx context.Context, stop context.CancelFunc, log logr.Logger) {
	go func() {
		select {
		case err := <-panicChan:
			log.Error(err, "recovered from panic")
			stop()
		case <-ctx.Done():
		}
	}()
}
