package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/craftstat/craftstat/internal/blob"
	"github.com/craftstat/craftstat/internal/bot"
	"github.com/craftstat/craftstat/internal/identity"
	"github.com/craftstat/craftstat/internal/logger"
	"github.com/craftstat/craftstat/internal/registry"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Bot      *bot.Bot
	Blob     *blob.Server
	Registry registry.Service
	Identity identity.Service
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool

	cmd := &cobra.Command{
		Use:   "craftstat",
		Short: "Minecraft server status bot and icon server",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			// the bot runs as a long-lived process; send logs to the
			// log file rather than the console
			if zerolog.GlobalLevel() != zerolog.Disabled {
				logFile, ok := viper.Get("log-file").(string)

				if !ok || logFile == "" {
					log.Info().Msg("no log file configured, disabling logs")
					zerolog.SetGlobalLevel(zerolog.Disabled)
				} else {
					f, err := os.OpenFile(
						logFile,
						os.O_CREATE|os.O_APPEND|os.O_WRONLY,
						0644,
					)

					if err != nil {
						log.Error().Err(err).Msg("disabling logs")
						zerolog.SetGlobalLevel(zerolog.Disabled)
					} else {
						logger.GlobalSetLogFile(f)
					}
				}
			}

			go func() {
				if err := props.Blob.Run(); err != nil {
					log.Fatal().Err(err).Msg("icon server stopped")
				}
			}()

			return props.Bot.Run(cmd.Context())
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")

	cmd.AddCommand(version())
	cmd.AddCommand(clear())
	cmd.AddCommand(server(props))
	cmd.AddCommand(user(props))

	return cmd
}
