// Package store persists the syllabus document. The whole repository is one
// JSON document read and written atomically; there is no partial patching.
package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/swot/pkg/schedule"
)

// Config exposes where the document lives and the engine tuning.
type Config interface {
	BasePath() string
	Tuning() schedule.Config
}

// LoadConfig reads .swot.yaml (working directory or SWOT_CONFIG_PATH) and the
// SWOT_* environment, falling back to defaults for everything.
func LoadConfig() (Config, error) {
	defaults := schedule.DefaultConfig()

	viper.SetDefault("path", "~/.swot.db")
	viper.SetDefault("tuning.easy_step", defaults.EasyStep)
	viper.SetDefault("tuning.easy_base", defaults.EasyBase)
	viper.SetDefault("tuning.normal_delay", defaults.NormalDelay)
	viper.SetDefault("tuning.min_task_minutes", defaults.MinTaskMinutes)
	viper.SetDefault("tuning.max_tasks_fallback", defaults.MaxTasksFallback)
	viper.SetDefault("tuning.fallback_task_minutes", defaults.FallbackTaskMinutes)

	viper.SetConfigName(".swot") // .yaml is implicit
	viper.SetEnvPrefix("SWOT")
	viper.AutomaticEnv()

	if override := os.Getenv("SWOT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path: path,
		Cfg: schedule.Config{
			EasyStep:            viper.GetInt("tuning.easy_step"),
			EasyBase:            viper.GetInt("tuning.easy_base"),
			NormalDelay:         viper.GetInt("tuning.normal_delay"),
			MinTaskMinutes:      viper.GetInt("tuning.min_task_minutes"),
			MaxTasksFallback:    viper.GetInt("tuning.max_tasks_fallback"),
			FallbackTaskMinutes: viper.GetInt("tuning.fallback_task_minutes"),
		},
	}, nil
}

type fileConfig struct {
	Path string          `json:"path"`
	Cfg  schedule.Config `json:"tuning"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Tuning() schedule.Config {
	return f.Cfg
}
