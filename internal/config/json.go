// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [Config] with JSON field names and string-friendly
// durations for the optional config file.
type jsonConfig struct {
	Clipboard struct {
		Timeout   Duration `json:"timeout"`
		Plaintext bool     `json:"plaintext"`
	} `json:"clipboard,omitempty"`

	Security struct {
		ProbeInterval Duration `json:"probe_interval"`
		Paranoid      bool     `json:"paranoid"`
	} `json:"security,omitempty"`

	Shell struct {
		MaskName string `json:"mask_name"`
		Prompt   string `json:"prompt"`
		Debug    bool   `json:"debug"`
	} `json:"shell,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Clipboard: Clipboard{
			Timeout:   time.Duration(jsonCfg.Clipboard.Timeout),
			Plaintext: jsonCfg.Clipboard.Plaintext,
		},
		Security: Security{
			ProbeInterval: time.Duration(jsonCfg.Security.ProbeInterval),
			Paranoid:      jsonCfg.Security.Paranoid,
		},
		Shell: Shell{
			MaskName: jsonCfg.Shell.MaskName,
			Prompt:   jsonCfg.Shell.Prompt,
			Debug:    jsonCfg.Shell.Debug,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
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
