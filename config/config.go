package config

import (
	"fmt"
	"sync"

	"hangman/models"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	// Data files
	WordsFile  string `env:"HANGMAN_WORDS_FILE"  envDefault:"palabras.txt"`
	ScoresFile string `env:"HANGMAN_SCORES_FILE" envDefault:"puntajes.txt"`
	SeedWords  bool   `env:"HANGMAN_SEED_WORDS"  envDefault:"false"` // Write built-in words when the word file is missing

	// Game configuration
	DifficultyName  string `env:"HANGMAN_DIFFICULTY"       envDefault:"normal"`
	LeaderboardSize int    `env:"HANGMAN_LEADERBOARD_SIZE" envDefault:"10"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFile  string `env:"LOG_FILE"` // stderr when empty

	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// Load reads the configuration from environment variables without touching the global instance
func Load() (*Config, error) {
	return load()
}

func load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if config.WordsFile == "" {
		return nil, fmt.Errorf("HANGMAN_WORDS_FILE cannot be empty")
	}
	if config.ScoresFile == "" {
		return nil, fmt.Errorf("HANGMAN_SCORES_FILE cannot be empty")
	}
	if _, err := models.ParseDifficulty(config.DifficultyName); err != nil {
		return nil, fmt.Errorf("HANGMAN_DIFFICULTY: %w", err)
	}
	if config.LeaderboardSize < 1 {
		return nil, fmt.Errorf("HANGMAN_LEADERBOARD_SIZE must be positive, got %d", config.LeaderboardSize)
	}

	return config, nil
}

// Difficulty returns the configured default difficulty, falling back to normal
func (c *Config) Difficulty() models.Difficulty {
	d, err := models.ParseDifficulty(c.DifficultyName)
	if err != nil {
		return models.DifficultyNormal
	}
	return d
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		WordsFile:       "palabras.txt",
		ScoresFile:      "puntajes.txt",
		DifficultyName:  string(models.DifficultyNormal),
		LeaderboardSize: 10,
		LogLevel:        "warn",
		Environment:     "test",
	}
}
