// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Connection struct {
		Host      string `json:"host"`
		ReadPort  int    `json:"read_port"`
		WritePort int    `json:"write_port"`
		Port      int    `json:"port"`
	} `json:"connection,omitempty"`

	Storage struct {
		HistoryPath string `json:"history_path"`
		HistoryDSN  string `json:"history_dsn"`
		TokenPath   string `json:"token_path"`
	} `json:"storage,omitempty"`

	Session struct {
		Nickname         string   `json:"nickname"`
		AnonymousToken   string   `json:"anonymous_token"`
		WatchdogInterval Duration `json:"watchdog_interval"`
		WatchdogTimeout  Duration `json:"watchdog_timeout"`
		ReconnectDelay   Duration `json:"reconnect_delay"`
		MaxAttempts      int      `json:"max_attempts"`
	} `json:"session,omitempty"`

	App struct {
		LogPath string `json:"log_path"`
		Message string `json:"message"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Connection: Connection{
			Host:      jsonCfg.Connection.Host,
			ReadPort:  jsonCfg.Connection.ReadPort,
			WritePort: jsonCfg.Connection.WritePort,
			Port:      jsonCfg.Connection.Port,
		},
		Storage: Storage{
			HistoryPath: jsonCfg.Storage.HistoryPath,
			HistoryDSN:  jsonCfg.Storage.HistoryDSN,
			TokenPath:   jsonCfg.Storage.TokenPath,
		},
		Session: Session{
			Nickname:         jsonCfg.Session.Nickname,
			AnonymousToken:   jsonCfg.Session.AnonymousToken,
			WatchdogInterval: time.Duration(jsonCfg.Session.WatchdogInterval),
			WatchdogTimeout:  time.Duration(jsonCfg.Session.WatchdogTimeout),
			ReconnectDelay:   time.Duration(jsonCfg.Session.ReconnectDelay),
			MaxAttempts:      jsonCfg.Session.MaxAttempts,
		},
		App: App{
			LogPath: jsonCfg.App.LogPath,
			Message: jsonCfg.App.Message,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
