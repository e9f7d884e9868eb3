package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/spf13/viper"

	"github.com/craftstat/craftstat/cli/commands"
	app_info "github.com/craftstat/craftstat/internal/app-info"
	"github.com/craftstat/craftstat/internal/blob"
	"github.com/craftstat/craftstat/internal/bot"
	"github.com/craftstat/craftstat/internal/config"
	"github.com/craftstat/craftstat/internal/core"
	"github.com/craftstat/craftstat/internal/database"
	"github.com/craftstat/craftstat/internal/icon"
	"github.com/craftstat/craftstat/internal/identity"
	"github.com/craftstat/craftstat/internal/logger"
	"github.com/craftstat/craftstat/internal/presenter"
	"github.com/craftstat/craftstat/internal/probe"
	"github.com/craftstat/craftstat/internal/registry"
	"github.com/craftstat/craftstat/internal/status"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setRuntimeConfig() (string, error) {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return "", err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	configFile := path.Join(configDir, "config.yml")

	logFile := path.Join(configDir, app_info.NAME+".log")

	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return "", err
	}

	cacheDir := path.Join(userCacheDir, app_info.NAME)

	if err := os.MkdirAll(cacheDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	dbFile := path.Join(cacheDir, app_info.NAME+".db")

	// share location of files and directories globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)
	viper.Set("cache-dir", cacheDir)
	viper.Set("database-file", dbFile)

	return configFile, nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	configFile, err := setRuntimeConfig()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to set runtime config")
	}

	conf, err := config.New(configFile)

	if err != nil {
		defaultConf := config.Default()
		conf = &defaultConf
	}

	db, err := database.NewSqliteDatabase()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	iconRepo := icon.NewSqliteRepo(db)
	iconCache := icon.NewCache(iconRepo)

	identityService := identity.NewService(identity.NewSqliteRepo(db))
	registryService := registry.NewService(registry.NewSqliteRepo(db))

	dispatcher := probe.NewDispatcher(
		probe.NewStatusPinger(),
		probe.NewFullStatQuerier(),
	)

	reconciler := status.NewReconciler(iconCache, identityService)

	appCore := core.New(dispatcher, reconciler)

	appPresenter := presenter.New(conf.Blob.URLPrefix)

	appBot, err := bot.New(conf.Discord.Token, appCore, registryService, appPresenter)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to create discord session")
	}

	blobServer := blob.NewServer(conf.Blob.Listen, iconRepo)

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Bot:      appBot,
		Blob:     blobServer,
		Registry: registryService,
		Identity: identityService,
	})

	// Allows "grepping" of command output
	cmd.SetOutput(os.Stdout)

	// execute the cobra command and exit with error code if necessary
	err = cmd.ExecuteContext(context.Background())

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
