package internal

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName is used for the config directory and env prefix
	DefaultAppName        = "surfload"
	DefaultAppCMDShortCut = "surfload"
	DefaultEnvPrefix      = strings.ToUpper(DefaultAppName)
	DefaultConfigPath     = filepath.Join(getHomeDir(), ".config", DefaultAppName)
	DefaultCatalogPath    = filepath.Join(DefaultConfigPath, "catalog.db")
	DefaultCatalogDSN     = "file:" + DefaultCatalogPath
	DefaultIgnoreFile     = ".surfignore"

	// DefaultExtensions are the file suffixes handed to the vendor library.
	// Format detection itself happens inside the library.
	DefaultExtensions = []string{".sur", ".sdf"}
)

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current working directory if home directory is unavailable
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			log.Printf("Unable to get home or working directory, using /tmp: %v", err)
			return "/tmp"
		}
		log.Printf("Unable to get home directory, using current working directory: %v", err)
		return cwd
	}
	return homeDir
}

// GetLogger returns a properly configured zerolog logger instance
func GetLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// NewLogger returns the stderr logger filtered at the given level.
// Unparseable or empty levels fall back to info.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return GetLogger().Level(lvl)
}
