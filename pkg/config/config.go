// Package config loads user settings for agenda from file, environment and
// flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	AppName    = "agenda"
	envPrefix  = "AGENDA"
	configName = "config"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the resolved configuration.
type Config struct {
	Dir      string
	LogLevel string
	LogFile  string
	NoColor  bool

	Keys   Keys
	UI     UIConfig
	Agenda AgendaConfig
	Colors Colors
}

// Keys are the single characters bound to the interactive actions.
type Keys struct {
	Quit     string
	Next     string
	Previous string
}

type UIConfig struct {
	Months  int
	Refresh time.Duration
}

type AgendaConfig struct {
	// SkipBlank makes next-date lookups ignore files with no event text.
	SkipBlank bool
}

// Colors are hex colours for every styled element of the interactive view.
type Colors struct {
	CalendarTitle          string
	CalendarBox            string
	CalendarMonthTitle     string
	CalendarMonthBox       string
	CalendarDaysOfWeek     string
	CalendarDaysOfWeekBg   string
	CalendarDay            string
	CalendarDayBg          string
	CalendarDayWithEntry   string
	CalendarDayWithEntryBg string
	CalendarDaySelected    string
	CalendarDaySelectedBg  string
	AgendaTitle            string
	AgendaBox              string
	AgendaEntryTitle       string
	AgendaEntryBox         string
	AgendaFullDayEvent     string
	AgendaTimedEvent       string
}

// Rose Pine Moon.
const (
	overlay  = "#393552"
	muted    = "#6e6a87"
	love     = "#eb6f92"
	gold     = "#f6c177"
	rose     = "#ea9a97"
	pine     = "#3e8fb0"
	foam     = "#9ccfd8"
	iris     = "#c4a7e7"
	goldDark = "#975c0a"
)

var colorDefaults = map[string]string{
	"calendar_title":             pine,
	"calendar_box":               foam,
	"calendar_month_title":       love,
	"calendar_month_box":         pine,
	"calendar_days_of_week":      rose,
	"calendar_days_of_week_bg":   muted,
	"calendar_day":               gold,
	"calendar_day_bg":            overlay,
	"calendar_day_with_entry":    goldDark,
	"calendar_day_with_entry_bg": iris,
	"calendar_day_selected":      goldDark,
	"calendar_day_selected_bg":   rose,
	"agenda_title":               pine,
	"agenda_box":                 foam,
	"agenda_entry_title":         love,
	"agenda_entry_box":           pine,
	"agenda_full_day_event":      pine,
	"agenda_timed_event":         iris,
}

// BasePath is the directory holding agenda files.
func (c *Config) BasePath() string {
	return c.Dir
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dir", DefaultDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", DefaultLogFile())
	v.SetDefault("no_color", false)

	v.SetDefault("keys.quit", "q")
	v.SetDefault("keys.next", "n")
	v.SetDefault("keys.previous", "p")

	v.SetDefault("ui.months", 3)
	v.SetDefault("ui.refresh", "2s")

	v.SetDefault("agenda.skip_blank", false)

	for k, c := range colorDefaults {
		v.SetDefault("colors."+k, c)
	}
}

// Load reads the config file into v and resolves a Config. file overrides
// the search path; a missing file is only an error when named explicitly.
func Load(v *viper.Viper, file string) (*Config, error) {
	if v == nil {
		v = New()
	}

	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper resolves a Config from the values already held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LogLevel: v.GetString("log_level"),
		NoColor:  v.GetBool("no_color"),
		Keys: Keys{
			Quit:     v.GetString("keys.quit"),
			Next:     v.GetString("keys.next"),
			Previous: v.GetString("keys.previous"),
		},
		UI: UIConfig{
			Months:  v.GetInt("ui.months"),
			Refresh: v.GetDuration("ui.refresh"),
		},
		Agenda: AgendaConfig{
			SkipBlank: v.GetBool("agenda.skip_blank"),
		},
		Colors: Colors{
			CalendarTitle:          v.GetString("colors.calendar_title"),
			CalendarBox:            v.GetString("colors.calendar_box"),
			CalendarMonthTitle:     v.GetString("colors.calendar_month_title"),
			CalendarMonthBox:       v.GetString("colors.calendar_month_box"),
			CalendarDaysOfWeek:     v.GetString("colors.calendar_days_of_week"),
			CalendarDaysOfWeekBg:   v.GetString("colors.calendar_days_of_week_bg"),
			CalendarDay:            v.GetString("colors.calendar_day"),
			CalendarDayBg:          v.GetString("colors.calendar_day_bg"),
			CalendarDayWithEntry:   v.GetString("colors.calendar_day_with_entry"),
			CalendarDayWithEntryBg: v.GetString("colors.calendar_day_with_entry_bg"),
			CalendarDaySelected:    v.GetString("colors.calendar_day_selected"),
			CalendarDaySelectedBg:  v.GetString("colors.calendar_day_selected_bg"),
			AgendaTitle:            v.GetString("colors.agenda_title"),
			AgendaBox:              v.GetString("colors.agenda_box"),
			AgendaEntryTitle:       v.GetString("colors.agenda_entry_title"),
			AgendaEntryBox:         v.GetString("colors.agenda_entry_box"),
			AgendaFullDayEvent:     v.GetString("colors.agenda_full_day_event"),
			AgendaTimedEvent:       v.GetString("colors.agenda_timed_event"),
		},
	}

	var err error
	if cfg.Dir, err = homedir.Expand(v.GetString("dir")); err != nil {
		return nil, fmt.Errorf("config: dir: %w", err)
	}
	if cfg.LogFile, err = homedir.Expand(v.GetString("log_file")); err != nil {
		return nil, fmt.Errorf("config: log_file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default is the configuration used when nothing is set.
func Default() *Config {
	cfg, err := FromViper(New())
	if err != nil {
		// Defaults are constants; failing here is a programming error.
		panic(err)
	}
	return cfg
}

// Validate checks keys, ranges and colours.
func (c *Config) Validate() error {
	var errs []string

	if c.Dir == "" {
		errs = append(errs, "dir is empty")
	}

	keys := map[string]string{
		"keys.quit":     c.Keys.Quit,
		"keys.next":     c.Keys.Next,
		"keys.previous": c.Keys.Previous,
	}
	seen := map[string]string{}
	for _, name := range []string{"keys.quit", "keys.next", "keys.previous"} {
		k := keys[name]
		if len([]rune(k)) != 1 {
			errs = append(errs, fmt.Sprintf("%s must be a single character, got %q", name, k))
			continue
		}
		if other, dup := seen[k]; dup {
			errs = append(errs, fmt.Sprintf("%s and %s share %q", other, name, k))
		}
		seen[k] = name
	}

	if c.UI.Months < 1 || c.UI.Months > 12 {
		errs = append(errs, fmt.Sprintf("ui.months must be between 1 and 12, got %d", c.UI.Months))
	}
	if c.UI.Refresh <= 0 {
		errs = append(errs, fmt.Sprintf("ui.refresh must be positive, got %s", c.UI.Refresh))
	}

	for name, hex := range c.Colors.byKey() {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Sprintf("colors.%s: %q is not a hex colour", name, hex))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
}

func (c Colors) byKey() map[string]string {
	return map[string]string{
		"calendar_title":             c.CalendarTitle,
		"calendar_box":               c.CalendarBox,
		"calendar_month_title":       c.CalendarMonthTitle,
		"calendar_month_box":         c.CalendarMonthBox,
		"calendar_days_of_week":      c.CalendarDaysOfWeek,
		"calendar_days_of_week_bg":   c.CalendarDaysOfWeekBg,
		"calendar_day":               c.CalendarDay,
		"calendar_day_bg":            c.CalendarDayBg,
		"calendar_day_with_entry":    c.CalendarDayWithEntry,
		"calendar_day_with_entry_bg": c.CalendarDayWithEntryBg,
		"calendar_day_selected":      c.CalendarDaySelected,
		"calendar_day_selected_bg":   c.CalendarDaySelectedBg,
		"agenda_title":               c.AgendaTitle,
		"agenda_box":                 c.AgendaBox,
		"agenda_entry_title":         c.AgendaEntryTitle,
		"agenda_entry_box":           c.AgendaEntryBox,
		"agenda_full_day_event":      c.AgendaFullDayEvent,
		"agenda_timed_event":         c.AgendaTimedEvent,
	}
}

func searchPaths() []string {
	var dirs []string
	if override := os.Getenv("AGENDA_CONFIG_PATH"); override != "" {
		dirs = append(dirs, override)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, AppName))
	}
	return append(dirs, "./")
}

// DefaultDir is where agenda files live unless configured otherwise.
func DefaultDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(os.TempDir(), AppName)
}

// DefaultLogFile follows XDG_STATE_HOME, falling back to ~/.local/state.
func DefaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppName, AppName+".log")
	}
	if home, err := homedir.Dir(); err == nil {
		return filepath.Join(home, ".local", "state", AppName, AppName+".log")
	}
	return filepath.Join(os.TempDir(), AppName, AppName+".log")
}
