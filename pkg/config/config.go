/*
Package config manages TOML config for DictServe.
*/
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bastiangx/dictserve/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Dict    DictConfig    `toml:"dict"`
	Suggest SuggestConfig `toml:"suggest"`
	CLI     CliConfig     `toml:"cli"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxWordLen       int  `toml:"max_word_len"`
	MaxPrefixResults int  `toml:"max_prefix_results"`
	EnableFilter     bool `toml:"enable_filter"`
	ReloadEvery      int  `toml:"reload_every"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path        string `toml:"path"`
	BloomSize   int    `toml:"bloom_size"`
	BloomHashes int    `toml:"bloom_hashes"`
}

// SuggestConfig holds correction cache options.
type SuggestConfig struct {
	CacheEnabled        bool `toml:"cache_enabled"`
	CacheTTLSeconds     int  `toml:"cache_ttl_seconds"`
	CacheCleanupSeconds int  `toml:"cache_cleanup_seconds"`
}

// CliConfig holds interactive CLI options.
type CliConfig struct {
	ShowProgress   bool `toml:"show_progress"`
	MaxPhraseWords int  `toml:"max_phrase_words"`
}

// CacheTTL returns the cache expiration as a duration.
func (s SuggestConfig) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}

// CacheCleanup returns the cache janitor interval as a duration.
func (s SuggestConfig) CacheCleanup() time.Duration {
	return time.Duration(s.CacheCleanupSeconds) * time.Second
}

// GetConfigDir returns the first writable directory of configDirCandidates,
// falling back to the executable dir.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	for _, dir := range configDirCandidates(homeDir, runtime.GOOS) {
		if result := utils.CheckDirStatus(dir); result.Writable {
			return dir, nil
		}
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// configDirCandidates lists config dirs in priority order:
// 1. ~/.config/dictserve
// 2. ~/Library/Application Support/dictserve (macOS only)
func configDirCandidates(homeDir, goos string) []string {
	dirs := []string{filepath.Join(homeDir, ".config", "dictserve")}
	if goos == "darwin" {
		dirs = append(dirs, filepath.Join(homeDir, "Library", "Application Support", "dictserve"))
	}
	return dirs
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/dictserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxWordLen:       60,
			MaxPrefixResults: 24,
			EnableFilter:     true,
			ReloadEvery:      100,
		},
		Dict: DictConfig{
			Path:        "data/dictionnaire.txt",
			BloomSize:   1 << 20,
			BloomHashes: 5,
		},
		Suggest: SuggestConfig{
			CacheEnabled:        true,
			CacheTTLSeconds:     1800,
			CacheCleanupSeconds: 300,
		},
		CLI: CliConfig{
			ShowProgress:   true,
			MaxPhraseWords: 100,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		log.Warnf("Config file %s is not fully valid: %v. Attempting partial recovery...", configPath, err)
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps whatever sections still parse and defaults the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "suggest"); ok {
		extractSuggestConfig(section, &config.Suggest)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix_results"); ok {
		server.MaxPrefixResults = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
	if val, ok := utils.ExtractInt64(data, "reload_every"); ok {
		server.ReloadEvery = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "bloom_size"); ok {
		dict.BloomSize = val
	}
	if val, ok := utils.ExtractInt64(data, "bloom_hashes"); ok {
		dict.BloomHashes = val
	}
}

func extractSuggestConfig(data map[string]any, suggest *SuggestConfig) {
	if val, ok := utils.ExtractBool(data, "cache_enabled"); ok {
		suggest.CacheEnabled = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_ttl_seconds"); ok {
		suggest.CacheTTLSeconds = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_cleanup_seconds"); ok {
		suggest.CacheCleanupSeconds = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "show_progress"); ok {
		cli.ShowProgress = val
	}
	if val, ok := utils.ExtractInt64(data, "max_phrase_words"); ok {
		cli.MaxPhraseWords = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the server values and saves to file
func (c *Config) Update(configPath string, maxWordLen, maxPrefixResults *int, enableFilter *bool) error {
	server := &c.Server
	if maxWordLen != nil {
		server.MaxWordLen = *maxWordLen
	}
	if maxPrefixResults != nil {
		server.MaxPrefixResults = *maxPrefixResults
	}
	if enableFilter != nil {
		server.EnableFilter = *enableFilter
	}
	return SaveConfig(c, configPath)
}
