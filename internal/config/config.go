package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Reveal modes
const (
	RevealPrompt    = "prompt"
	RevealTUI       = "tui"
	RevealImmediate = "immediate"
)

// Output modes
const (
	OutputPrint = "print"
	OutputCopy  = "copy"
)

// DefaultColors are the ANSI foreground codes used for highlighting.
// Black, white, gray and blue are left out because they are hard to read.
var DefaultColors = []string{"31", "32", "33", "35", "36", "91", "92", "93", "94", "95", "96"}

// Config holds the application configuration
type Config struct {
	PuzzlePath string   `mapstructure:"path"`
	Reveal     string   `mapstructure:"reveal"`
	Output     string   `mapstructure:"output"`
	Colors     []string `mapstructure:"colors"`
	Seed       uint64   `mapstructure:"seed"`
	NoColor    bool     `mapstructure:"no_color"`
	LogLevel   string   `mapstructure:"log_level"`

	// Chrome colors around the grid
	ColorTitle  string `mapstructure:"color_title"`
	ColorPrompt string `mapstructure:"color_prompt"`
	ColorDim    string `mapstructure:"color_dim"`
	ColorBorder string `mapstructure:"color_border"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("path", "")
	viper.SetDefault("reveal", RevealPrompt)
	viper.SetDefault("output", OutputPrint)
	viper.SetDefault("colors", DefaultColors)
	viper.SetDefault("seed", 0) // 0 picks a time-based seed
	viper.SetDefault("no_color", false)
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("color_title", "")
	viper.SetDefault("color_prompt", "212")
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_border", "240")

	viper.SetConfigName("wordsearch")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "wordsearch"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("WORDSEARCH")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults and flags still apply
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetPath returns the default puzzle path with tilde expansion
func GetPath() string {
	return expandTilde(viper.GetString("path"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetReveal returns the reveal mode
func GetReveal() string {
	return viper.GetString("reveal")
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetColors returns the highlight color codes
func GetColors() []string {
	return viper.GetStringSlice("colors")
}

// GetSeed returns the color selection seed
func GetSeed() uint64 {
	return viper.GetUint64("seed")
}

// GetNoColor returns whether colored output is disabled
func GetNoColor() bool {
	return viper.GetBool("no_color")
}

// GetLogLevel returns the log level name
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetColorTitle returns the title color (empty keeps the terminal default)
func GetColorTitle() string {
	return viper.GetString("color_title")
}

// GetColorPrompt returns the reveal prompt color
func GetColorPrompt() string {
	return viper.GetString("color_prompt")
}

// GetColorDim returns the color for secondary text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorBorder returns the border and divider color
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// SetReveal sets reveal mode at runtime
func SetReveal(mode string) {
	viper.Set("reveal", mode)
	C.Reveal = mode
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetPath sets the puzzle path at runtime
func SetPath(path string) {
	viper.Set("path", path)
	C.PuzzlePath = path
}
