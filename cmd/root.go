package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appstyle "github.com/zjrosen/stylebook/internal/application/style"
	"github.com/zjrosen/stylebook/internal/config"
	"github.com/zjrosen/stylebook/internal/flags"
	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/templates"
)

var (
	version      = "dev"
	cfgFile      string
	debugFlag    bool
	cfg          config.Config
	styleService *appstyle.StyleService
	logCleanup   func()
)

var rootCmd = &cobra.Command{
	Use:   "stylebook",
	Short: "Image prompt styles for video content generation",
	Long: `stylebook holds a table of image-prompt styles and renders the prompt and
negative prompt an image generator needs for a scene.

Unknown style ids fall back to the "default" style.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/stylebook/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (also enabled by STYLEBOOK_DEBUG)")
	rootCmd.PersistentFlags().String("user-dir", "",
		"base directory for user styles (reads <user-dir>/styles/*.yaml)")

	// Bind flags to viper
	_ = viper.BindPFlag("user_dir", rootCmd.PersistentFlags().Lookup("user-dir"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("user_dir", defaults.UserDir)
	viper.SetDefault("default_style", defaults.DefaultStyle)
	viper.SetDefault("default_aspect_ratio", defaults.DefaultAspectRatio)
	viper.SetDefault("log_path", defaults.LogPath)
	viper.SetDefault("flags", defaults.Flags)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .stylebook/config.yaml (current directory)
		// 2. ~/.config/stylebook/config.yaml (user config)
		if _, err := os.Stat(".stylebook/config.yaml"); err == nil {
			viper.SetConfigFile(".stylebook/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "stylebook"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at ~/.config/stylebook/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if home, homeErr := os.UserHomeDir(); homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "stylebook", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setup initializes logging and builds the style registry before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	if os.Getenv("STYLEBOOK_DEBUG") != "" || debugFlag || cfg.Debug {
		logPath := cfg.LogPath
		if logPath == "" {
			logPath = "stylebook.log"
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logCleanup = cleanup
		log.Info(log.CatCLI, "stylebook starting", "command", cmd.Name(), "version", version, "config", viper.ConfigFileUsed())
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	svc, err := newStyleService(cfg)
	if err != nil {
		log.ErrorErr(log.CatStyles, "Failed to build style registry", err)
		return err
	}
	styleService = svc

	if _, ok := svc.Lookup(cfg.DefaultStyle); cfg.DefaultStyle != "" && !ok {
		log.Warn(log.CatConfig, "default_style is not a registered style, using fallback", "default_style", cfg.DefaultStyle)
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
	return nil
}

// newStyleService builds the registry from the embedded built-ins and, when the
// user-styles flag is on, the configured user directory.
func newStyleService(c config.Config) (*appstyle.StyleService, error) {
	fl := flags.New(c.Flags)
	return appstyle.NewStyleService(templates.StylesFS(), c.UserStylesDir(fl))
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
