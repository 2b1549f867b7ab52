package store

import (
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings the store and its collaborators consume.
// The core only ever reads these as plain values.
type Config interface {
	BasePath() string
	Root() string
	SaveDebounce() time.Duration
	WatchDebounce() time.Duration
	Excludes() []string
}

// LoadConfig reads configuration from a .focus file (yaml implicit) in the
// working directory, overridable through FOCUS_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.focus.db")
	v.SetDefault("root", "")
	v.SetDefault("save_debounce", "500ms")
	v.SetDefault("watch_debounce", "100ms")
	v.SetDefault("excludes", []string{})
	v.SetConfigName(".focus") // .yaml is implicit
	v.SetEnvPrefix("FOCUS")
	v.AutomaticEnv()

	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	root, err := homedir.Expand(v.GetString("root"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:          path,
		RootDir:       root,
		SaveDelay:     v.GetDuration("save_debounce"),
		WatchDelay:    v.GetDuration("watch_debounce"),
		ExcludeGlobs: v.GetStringSlice("excludes"),
	}, nil
}

type fileConfig struct {
	Path         string        `json:"path"`
	RootDir      string        `json:"root"`
	SaveDelay    time.Duration `json:"saveDebounce"`
	WatchDelay   time.Duration `json:"watchDebounce"`
	ExcludeGlobs []string      `json:"excludes"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) Root() string { return f.RootDir }

func (f *fileConfig) SaveDebounce() time.Duration { return f.SaveDelay }

func (f *fileConfig) WatchDebounce() time.Duration { return f.WatchDelay }

func (f *fileConfig) Excludes() []string { return f.ExcludeGlobs }
