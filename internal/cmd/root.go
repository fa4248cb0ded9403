package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"tvrename/internal/config"
	"tvrename/internal/fsys"
	"tvrename/internal/log"
)

var version = "dev"

// NewRootCmd creates the tvrename command. Flags override values from the
// optional --config file, which in turn override the built-in defaults.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	flagOpts := config.Defaults()

	rootCmd := &cobra.Command{
		Use:   "tvrename --path DIR --name SHOW",
		Short: "Rename TV episode files to <Show>.SxxEyy.<ext>",
		Long: `tvrename numbers the episode files of one directory in path order and
renames them to <Show>.S<season>E<episode>.<ext>.

Without --ext the most common extension in the directory is used.
Nothing is renamed unless --rename is non-zero; the default is a dry run.`,
		Example: `  tvrename -p ~/tv/Dark/S01 -n Dark
  tvrename -p ~/tv/Dark/S02 -n Dark -s 2 -x mkv -r 1
  tvrename -p . -n Show -t 0 -e "*sample*"`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags parsed fine; from here on errors are not usage errors.
			cmd.SilenceUsage = true

			opts, err := mergeOptions(cmd, cfgFile, flagOpts)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			setupLogging(opts, cmd.ErrOrStderr())

			return Run(opts, fsys.OS{}, NewUI(cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}
	rootCmd.SilenceErrors = true

	flags := rootCmd.Flags()
	flags.StringVarP(&flagOpts.Path, "path", "p", "", "Directory holding the episodes (required)")
	flags.StringVarP(&flagOpts.Name, "name", "n", "", "Show name used in the new file names (required)")
	flags.StringVarP(&flagOpts.Ext, "ext", "x", "", "Extension to rename (default: the most common one)")
	flags.StringVar(&flagOpts.Ext, "suffix", "", "Same as --ext")
	_ = flags.MarkDeprecated("suffix", "use --ext instead")
	flags.IntVarP(&flagOpts.Season, "season", "s", flagOpts.Season, "Season number")
	flags.IntVarP(&flagOpts.Sort, "sort", "t", flagOpts.Sort, "1 sorts paths ascending, anything else descending")
	flags.IntVarP(&flagOpts.Rename, "rename", "r", flagOpts.Rename, "0 previews only, anything else renames")
	flags.StringArrayVarP(&flagOpts.Exclude, "exclude", "e", nil, "Glob of file names to leave alone (repeatable)")
	flags.BoolVar(&flagOpts.TitleCase, "title-case", false, "Title-case the show name")
	flags.BoolVarP(&flagOpts.Verbose, "verbose", "v", false, "Debug logging")
	flags.StringVar(&flagOpts.LogFormat, "log-format", flagOpts.LogFormat, "Log format: text | json")
	flags.StringVar(&cfgFile, "config", "", "YAML file with defaults for the flags above")

	return rootCmd
}

// mergeOptions layers explicitly set flags over the defaults file
func mergeOptions(cmd *cobra.Command, cfgFile string, flagOpts config.Options) (config.Options, error) {
	opts := config.Defaults()
	if cfgFile != "" {
		var err error
		if opts, err = config.LoadConfigFile(cfgFile); err != nil {
			return opts, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("path") {
		opts.Path = flagOpts.Path
	}
	if changed("name") {
		opts.Name = flagOpts.Name
	}
	if changed("ext") || changed("suffix") {
		opts.Ext = flagOpts.Ext
	}
	if changed("season") {
		opts.Season = flagOpts.Season
	}
	if changed("sort") {
		opts.Sort = flagOpts.Sort
	}
	if changed("rename") {
		opts.Rename = flagOpts.Rename
	}
	if changed("exclude") {
		opts.Exclude = flagOpts.Exclude
	}
	if changed("title-case") {
		opts.TitleCase = flagOpts.TitleCase
	}
	if changed("verbose") {
		opts.Verbose = flagOpts.Verbose
	}
	if changed("log-format") {
		opts.LogFormat = flagOpts.LogFormat
	}
	return opts, nil
}

func setupLogging(opts config.Options, w io.Writer) {
	logOpts := []log.Option{log.WithOutput(w)}
	if opts.LogFormat == config.LogFormatJSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	log.Configure(logOpts...)
	log.SetDebug(opts.Verbose)
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
