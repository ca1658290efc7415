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

package logger

import (
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/intunehound/intunehound/config"
	"github.com/rs/zerolog"
)

// GetLogger builds the process logger: zerolog underneath, exposed through
// the logr facade that the rest of the codebase takes as a dependency.
func GetLogger() (*logr.Logger, error) {
	writers := []io.Writer{}

	if useJson, ok := config.JsonLogs.Value().(bool); ok && useJson {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if logFile, ok := config.LogFile.Value().(string); ok && logFile != "" {
		if file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, err
		} else {
			writers = append(writers, file)
		}
	}

	zerologger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	logger := logr.New(&zerologSink{logger: &zerologger})
	return &logger, nil
}

// zerologSink adapts zerolog to the logr.LogSink interface. logr V-levels map
// onto zerolog levels: 0 info, 1 debug, everything above trace.
type zerologSink struct {
	logger *zerolog.Logger
	name   string
	values []interface{}
}

func (s *zerologSink) Init(info logr.RuntimeInfo) {}

func (s *zerologSink) Enabled(level int) bool {
	verbosity := 0
	if value, ok := config.Verbosity.Value().(int); ok {
		verbosity = value
	}
	return level <= verbosity
}

func (s *zerologSink) Info(level int, msg string, keysAndValues ...interface{}) {
	var event *zerolog.Event
	switch {
	case level <= 0:
		event = s.logger.Info()
	case level == 1:
		event = s.logger.Debug()
	default:
		event = s.logger.Trace()
	}
	s.emit(event, msg, keysAndValues)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.emit(s.logger.Error().Err(err), msg, keysAndValues)
}

func (s *zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &zerologSink{
		logger: s.logger,
		name:   s.name,
		values: append(append([]interface{}{}, s.values...), keysAndValues...),
	}
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	joined := name
	if s.name != "" {
		joined = s.name + "." + name
	}
	return &zerologSink{logger: s.logger, name: joined, values: s.values}
}

func (s *zerologSink) emit(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	if s.name != "" {
		event = event.Str("logger", s.name)
	}
	event = fields(event, s.values)
	event = fields(event, keysAndValues)
	event.Msg(msg)
}

func fields(event *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			event = event.Interface(key, keysAndValues[i+1])
		}
	}
	return event
}
