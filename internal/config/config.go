package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/tableau/internal/card"
	"github.com/arcanaland/tableau/internal/game"
	"github.com/arcanaland/tableau/internal/layout"
)

// Config represents the application configuration
type Config struct {
	Title      string          `toml:"title"`
	ShowAxes   bool            `toml:"show_axes"`
	CardSize   float64         `toml:"card_size"`
	Background string          `toml:"background"`
	Generator  GeneratorConfig `toml:"generator"`
	Preview    PreviewConfig   `toml:"preview"`
}

// GeneratorConfig holds the random game parameters, probabilities in percent
type GeneratorConfig struct {
	MaxCards              int `toml:"max_cards"`
	ExtraProbability      int `toml:"extra_probability"`
	EmptyStackProbability int `toml:"empty_stack_probability"`
}

// PreviewConfig controls terminal previews
type PreviewConfig struct {
	Width     int  `toml:"width"`
	TrueColor bool `toml:"true_color"`
}

// Default returns the built-in configuration
func Default() *Config {
	p := game.DefaultParams()
	return &Config{
		Title:      "Summer Fruits",
		ShowAxes:   true,
		CardSize:   layout.DefaultCardSize,
		Background: "felt",
		Generator: GeneratorConfig{
			MaxCards:              p.MaxCards,
			ExtraProbability:      p.ExtraProbability,
			EmptyStackProbability: p.EmptyStackProbability,
		},
		Preview: PreviewConfig{
			Width:     80,
			TrueColor: true,
		},
	}
}

// Params converts the generator section into generation parameters
func (c *Config) Params() game.Params {
	return game.Params{
		MaxCards:              c.Generator.MaxCards,
		ExtraProbability:      c.Generator.ExtraProbability,
		EmptyStackProbability: c.Generator.EmptyStackProbability,
	}
}

// Validate checks that the configured values are usable
func (c *Config) Validate() error {
	var problems []string
	if c.CardSize <= 0 {
		problems = append(problems, fmt.Sprintf("card_size must be positive, got %g", c.CardSize))
	}
	if c.Generator.MaxCards < 1 || c.Generator.MaxCards > card.MaxCards {
		problems = append(problems, fmt.Sprintf("generator.max_cards must be in 1..%d, got %d",
			card.MaxCards, c.Generator.MaxCards))
	}
	if p := c.Generator.ExtraProbability; p < 0 || p > 100 {
		problems = append(problems, fmt.Sprintf("generator.extra_probability must be a percentage, got %d", p))
	}
	if p := c.Generator.EmptyStackProbability; p < 0 || p > 100 {
		problems = append(problems, fmt.Sprintf("generator.empty_stack_probability must be a percentage, got %d", p))
	}
	if c.Preview.Width < 0 {
		problems = append(problems, fmt.Sprintf("preview.width must not be negative, got %d", c.Preview.Width))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetGameLibraryPath returns the path to the saved game library
func GetGameLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "tableau", "games")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "tableau", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	// Keys missing from the file keep their defaults
	config := Default()
	_, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetGamePath returns the path to a game, either in the game library or a relative path
func GetGamePath(gameName string) (string, error) {
	// First, try to find the game in the game library
	libraryPath := GetGameLibraryPath()
	for _, candidate := range []string{gameName, gameName + ".toml"} {
		gamePath := filepath.Join(libraryPath, candidate)
		if _, err := os.Stat(gamePath); err == nil {
			return gamePath, nil
		}
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(gameName); err == nil {
		return gameName, nil
	}

	return "", fmt.Errorf("game not found: %s", gameName)
}
