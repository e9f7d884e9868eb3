package config

import (
	"os"

	"github.com/imdario/mergo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DiscordConfig represents the config needed to connect the bot
type DiscordConfig struct {
	Token string `yaml:"token"`
}

// BlobConfig represents the config for the icon file server. With no
// url-prefix set icons are still cached but never advertised in embeds.
type BlobConfig struct {
	Listen    string `yaml:"listen"`
	URLPrefix string `yaml:"url-prefix"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Discord DiscordConfig `yaml:"discord"`
	Blob    BlobConfig    `yaml:"blob"`
}

// New returns unmarshaled data structure of user provided config with
// defaults merged in for anything left unset
func New(confPath string) (*Config, error) {
	var config Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&config, Default()); err != nil {
		return nil, err
	}

	applyEnv(&config)

	return &config, nil
}

// Default returns the built-in configuration
func Default() Config {
	conf := Config{
		Blob: BlobConfig{
			Listen: ":8145",
		},
	}

	applyEnv(&conf)

	return conf
}

// Write persists conf to the configured config file location
func Write(conf Config) error {
	configFile := viper.Get("config-file").(string)

	file, err := os.Create(configFile)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}

// the token is usually injected through the environment rather than
// written to disk
func applyEnv(conf *Config) {
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		conf.Discord.Token = token
	}
}
