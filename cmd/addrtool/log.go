// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/coinaddr/coinaddr/chaincfg"
	"github.com/coinaddr/coinaddr/stdaddr"
	"github.com/decred/slog"
)

// log is the logger of the tool itself.  It is replaced by newLogManager.
var log = slog.Disabled

// logManager owns the logging backend and the logger of every subsystem.
type logManager struct {
	backend *slog.Backend
	loggers map[string]slog.Logger
}

// newLogManager creates a backend writing to w and hands a logger for each
// subsystem to the package that logs under it.
func newLogManager(w io.Writer) *logManager {
	m := &logManager{
		backend: slog.NewBackend(w),
		loggers: make(map[string]slog.Logger),
	}
	log = m.logger("ATOL")
	stdaddr.UseLogger(m.logger("ADDR"))
	chaincfg.UseLogger(m.logger("CHCF"))
	return m
}

// logger creates and registers a logger for the provided subsystem.
func (m *logManager) logger(subsystem string) slog.Logger {
	l := m.backend.Logger(subsystem)
	m.loggers[subsystem] = l
	return l
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func (m *logManager) SupportedSubsystems() []string {
	subsystems := make([]string, 0, len(m.loggers))
	for subsysID := range m.loggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// setLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func (m *logManager) setLogLevel(subsystemID string, level slog.Level) {
	if l, ok := m.loggers[subsystemID]; ok {
		l.SetLevel(level)
	}
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func (m *logManager) setLogLevels(level slog.Level) {
	for subsystemID := range m.loggers {
		m.setLogLevel(subsystemID, level)
	}
}

// ParseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func (m *logManager) ParseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		level, ok := slog.LevelFromString(debugLevel)
		if !ok {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				debugLevel)
		}
		m.setLogLevels(level)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return fmt.Errorf("the specified debug level contains an "+
				"invalid subsystem/level pair [%v]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]
		if _, exists := m.loggers[subsysID]; !exists {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID, m.SupportedSubsystems())
		}
		level, ok := slog.LevelFromString(logLevel)
		if !ok {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				logLevel)
		}
		m.setLogLevel(subsysID, level)
	}
	return nil
}
