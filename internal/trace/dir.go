package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultDir returns the directory traces go to when none is configured.
// Uses $XDG_DATA_HOME/galaxy-rl, defaulting to
// ~/.local/share/galaxy-rl.
func DefaultDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "galaxy-rl"), nil
}

// EpisodePath names the trace file of one episode.
func EpisodePath(dir string, started time.Time, episode int) string {
	name := fmt.Sprintf("episode-%s-%04d.jsonl.zst", started.UTC().Format("20060102-150405"), episode)
	return filepath.Join(dir, name)
}

// AppendSummary appends v as a single JSON line to dir/episodes.jsonl.
func AppendSummary(dir string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "episodes.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}
