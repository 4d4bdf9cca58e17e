package update

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/timeline"
)

const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type RuntimeConfig struct {
	View           model.ViewMode
	DayStartHour   int
	AutoProgress   bool
	SortField      model.SortField
	SortOrder      model.SortOrder
	Cursor         float64
	StorageBackend string
	StoragePath    string
	LogFile        string
	Demo           bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		View:           model.ViewDaily,
		DayStartHour:   timeline.DefaultDayStartHour,
		AutoProgress:   false,
		SortField:      model.SortNone,
		SortOrder:      model.SortDesc,
		Cursor:         timeline.DefaultCursorPercent,
		StorageBackend: BackendSQLite,
		StoragePath:    "~/.taskline/tasks.db",
		LogFile:        "~/.taskline/taskline.log",
	}
}

// LoadRuntimeConfig reads .taskline.yaml from the working directory or the
// home directory (or file when it is set) and applies TASKLINE_* environment
// overrides on top of the defaults. A missing config file is not an error.
func LoadRuntimeConfig(file string) (RuntimeConfig, error) {
	def := DefaultRuntimeConfig()
	v := viper.New()
	v.SetDefault("view", string(def.View))
	v.SetDefault("day_start_hour", def.DayStartHour)
	v.SetDefault("auto_progress", def.AutoProgress)
	v.SetDefault("sort.field", string(def.SortField))
	v.SetDefault("sort.order", string(def.SortOrder))
	v.SetDefault("cursor", def.Cursor)
	v.SetDefault("storage.backend", def.StorageBackend)
	v.SetDefault("storage.path", def.StoragePath)
	v.SetDefault("log.file", def.LogFile)
	v.SetDefault("demo", def.Demo)

	v.SetEnvPrefix("TASKLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return def, fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
	} else {
		v.SetConfigName(".taskline")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return def, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := RuntimeConfig{
		View:           model.ViewMode(strings.ToLower(v.GetString("view"))),
		DayStartHour:   v.GetInt("day_start_hour"),
		AutoProgress:   v.GetBool("auto_progress"),
		SortField:      model.SortField(strings.ToLower(v.GetString("sort.field"))),
		SortOrder:      model.SortOrder(strings.ToLower(v.GetString("sort.order"))),
		Cursor:         v.GetFloat64("cursor"),
		StorageBackend: strings.ToLower(v.GetString("storage.backend")),
		StoragePath:    v.GetString("storage.path"),
		LogFile:        v.GetString("log.file"),
		Demo:           v.GetBool("demo"),
	}
	if err := cfg.normalize(); err != nil {
		return def, err
	}
	return cfg, nil
}

func (c *RuntimeConfig) normalize() error {
	if mode, err := model.ParseViewMode(string(c.View)); err == nil {
		c.View = mode
	} else {
		return fmt.Errorf("%w: view %q", ErrInvalidConfig, c.View)
	}
	if c.DayStartHour < 0 || c.DayStartHour > 23 {
		return fmt.Errorf("%w: day_start_hour %d", ErrInvalidConfig, c.DayStartHour)
	}
	if !c.SortField.IsValid() {
		return fmt.Errorf("%w: sort.field %q", ErrInvalidConfig, c.SortField)
	}
	if !c.SortOrder.IsValid() {
		return fmt.Errorf("%w: sort.order %q", ErrInvalidConfig, c.SortOrder)
	}
	if c.Cursor < 0 || c.Cursor > 100 {
		return fmt.Errorf("%w: cursor %v", ErrInvalidConfig, c.Cursor)
	}
	switch c.StorageBackend {
	case BackendSQLite, BackendDiskv:
	default:
		return fmt.Errorf("%w: storage.backend %q", ErrInvalidConfig, c.StorageBackend)
	}
	var err error
	if c.StoragePath, err = expandPath(c.StoragePath); err != nil {
		return err
	}
	if c.LogFile, err = expandPath(c.LogFile); err != nil {
		return err
	}
	return nil
}

func expandPath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", nil
	}
	out, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	return filepath.Clean(out), nil
}
