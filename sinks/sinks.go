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

package sinks

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// WriteToFile drains the stream of JSON lines into the named file, one record
// per line.
func WriteToFile(ctx context.Context, path string, stream <-chan string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	for {
		select {
		case line, ok := <-stream:
			if !ok {
				return nil
			}
			if _, err := writer.WriteString(line + "\n"); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// WriteToConsole drains the stream of JSON lines to stdout.
func WriteToConsole(ctx context.Context, stream <-chan string) {
	for {
		select {
		case line, ok := <-stream:
			if !ok {
				return
			}
			fmt.Println(line)
		case <-ctx.Done():
			return
		}
	}
}
