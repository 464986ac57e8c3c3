package game

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	configDirName     = "mazechase"
	bestScoreFileName = "bestscore.txt"
	envConfigDir      = "MAZECHASE_CONFIG_DIR"
)

// configBaseDir determines the directory for persisted state. The
// MAZECHASE_CONFIG_DIR env var overrides the per-user config location.
func configBaseDir() (string, error) {
	if env := os.Getenv(envConfigDir); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func bestScoreFilePath() (string, error) {
	dir, err := configBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, bestScoreFileName), nil
}

// LoadBestScore reads the persisted best score. Any failure (missing
// file, unreadable directory, garbage content) degrades to 0 rather
// than aborting the session.
func LoadBestScore() int {
	path, err := bestScoreFilePath()
	if err != nil {
		return 0
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SaveBestScore writes the score as a bare integer, atomically via a
// temp file rename.
func SaveBestScore(score int) error {
	if score < 0 {
		return errors.New("score must be non-negative")
	}
	path, err := bestScoreFilePath()
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
