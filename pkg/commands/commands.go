package commands

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/config"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/logutils"
	"tableflip.dev/agenda/pkg/store"
)

// globals is the state shared by every subcommand once the root command has
// loaded the configuration.
type globals struct {
	today      date.Date
	v          *viper.Viper
	configFile string

	cfg      *config.Config
	closeLog func()
}

func (g *globals) service() (*app.Service, error) {
	if g.cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	p, err := store.Load(g.cfg)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p, SkipBlank: g.cfg.Agenda.SkipBlank}, nil
}

// New builds the agenda command tree. today is the date every command
// defaults to; callers compute it once.
func New(today date.Date) *cobra.Command {
	g := &globals{today: today, v: config.New()}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: base.Wrap80("A calendar of per-date agenda files, on the command line and in the terminal."),
		Long: base.Wrap80("agenda keeps one TOML file per date with full-day and timed events. " +
			"Add events from the command line, print them, or browse them in the interactive calendar."),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.closeLog != nil {
				g.closeLog()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.configFile, "config", "", "Config file, default is config.yaml in the agenda config directory.")
	flags.String("dir", "", "Directory holding the agenda files.")
	flags.String("log-level", "", "Log level: debug, info, warn or error.")
	flags.String("log-file", "", "File to append JSON logs to.")
	flags.Bool("no-color", false, "Disable colour output.")

	_ = g.v.BindPFlag("dir", flags.Lookup("dir"))
	_ = g.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = g.v.BindPFlag("log_file", flags.Lookup("log-file"))
	_ = g.v.BindPFlag("no_color", flags.Lookup("no-color"))

	AddCommands(cmd, g)
	return cmd
}

func AddCommands(topLevel *cobra.Command, g *globals) {
	addAdd(topLevel, g)
	addShow(topLevel, g)
	addList(topLevel, g)
	addCal(topLevel, g)
	addEdit(topLevel, g)
	addRemove(topLevel, g)
	addUI(topLevel, g)
	addKey(topLevel, g)
	addExport(topLevel, g)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func (g *globals) load() error {
	cfg, err := config.Load(g.v, g.configFile)
	if err != nil {
		return err
	}
	g.cfg = cfg

	logger, closeLog, err := logutils.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	logutils.Install(logger)
	g.closeLog = closeLog

	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	logger.Debug().
		Str("dir", cfg.Dir).
		Str("config", g.v.ConfigFileUsed()).
		Msg("configuration loaded")
	return nil
}
