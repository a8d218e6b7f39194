// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = ".parlance.yaml"

// Supported dictionary sources
const (
	SourceTSV    = "tsv"
	SourceSQLite = "sqlite"
	SourceMySQL  = "mysql"
)

type DictionaryConfig struct {
	Source            string `yaml:"source"`
	Path              string `yaml:"path"`
	DSN               string `yaml:"dsn"`
	Table             string `yaml:"table"`
	WordColumn        string `yaml:"word_column"`
	TranslationColumn string `yaml:"translation_column"`
	ShowProgress      bool   `yaml:"show_progress"`
}

type SuggestionsConfig struct {
	CacheMinutes int `yaml:"cache_minutes"`
}

type Config struct {
	Dictionary  DictionaryConfig  `yaml:"dictionary"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
}

func defaultConfig() Config {
	return Config{
		Dictionary: DictionaryConfig{
			Source:            SourceTSV,
			Path:              "~/dictionaries/en-fr.txt",
			Table:             "entries",
			WordColumn:        "word",
			TranslationColumn: "translation",
			ShowProgress:      true,
		},
		Suggestions: SuggestionsConfig{
			CacheMinutes: 30,
		},
	}
}

// LoadConfig reads ~/.parlance.yaml. A missing or unreadable file yields the
// defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig()
		return &config, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	// Unset keys keep their defaults
	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig()
		return &config, nil
	}

	return &config, nil
}

// Validate reports settings that cannot produce a dictionary.
func (c *Config) Validate() error {
	switch c.Dictionary.Source {
	case SourceTSV, SourceSQLite:
		if c.Dictionary.Path == "" {
			return fmt.Errorf("dictionary.path is required for source %q", c.Dictionary.Source)
		}
	case SourceMySQL:
		if c.Dictionary.DSN == "" {
			return fmt.Errorf("dictionary.dsn is required for source %q", c.Dictionary.Source)
		}
	default:
		return fmt.Errorf("unknown dictionary source %q (want %s, %s or %s)",
			c.Dictionary.Source, SourceTSV, SourceSQLite, SourceMySQL)
	}
	if c.Suggestions.CacheMinutes < 0 {
		return fmt.Errorf("suggestions.cache_minutes must be >= 0, got %d", c.Suggestions.CacheMinutes)
	}
	return nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer, config *Config) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "🔧 Parlance Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)

	fmt.Fprintf(w, "📖 %sDictionary:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %ssource%s: %s\n", Green, Reset, config.Dictionary.Source)
	switch config.Dictionary.Source {
	case SourceMySQL:
		fmt.Fprintf(w, "  • %sdsn%s: %s\n", Green, Reset, redactDSN(config.Dictionary.DSN))
	default:
		fmt.Fprintf(w, "  • %spath%s: %s\n", Green, Reset, config.Dictionary.Path)
	}
	if config.Dictionary.Source != SourceTSV {
		fmt.Fprintf(w, "  • %stable%s: %s (%s → %s)\n", Green, Reset,
			config.Dictionary.Table, config.Dictionary.WordColumn, config.Dictionary.TranslationColumn)
	}
	fmt.Fprintf(w, "  • %sshow_progress%s: %t\n\n", Green, Reset, config.Dictionary.ShowProgress)

	fmt.Fprintf(w, "💡 %sSuggestions:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %scache_minutes%s: %d\n\n", Green, Reset, config.Suggestions.CacheMinutes)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(w, "%s⚠️  %v%s\n", Warning, err, Reset)
	}
}

// redactDSN hides the password of a user:password@... DSN.
func redactDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	colon := strings.Index(dsn, ":")
	if at < 0 || colon < 0 || colon > at {
		return dsn
	}
	return dsn[:colon+1] + "****" + dsn[at:]
}
