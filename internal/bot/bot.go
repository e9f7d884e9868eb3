package bot

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/craftstat/craftstat/internal/core"
	"github.com/craftstat/craftstat/internal/exception"
	"github.com/craftstat/craftstat/internal/logger"
	"github.com/craftstat/craftstat/internal/presenter"
	"github.com/craftstat/craftstat/internal/registry"
	"github.com/craftstat/craftstat/internal/target"
)

const statusCommand = "status"

const defaultAlienMessage = "This command cannot be used in this channel."

// Bot is the discord front end. It registers the status slash command
// plus every guild-registered command and answers interactions with
// reconciled status embeds.
type Bot struct {
	session   *discordgo.Session
	core      *core.Core
	registry  registry.Service
	presenter *presenter.Presenter
	log       logger.Logger
}

// New returns a Bot using the given token and collaborators
func New(
	token string,
	appCore *core.Core,
	reg registry.Service,
	pres *presenter.Presenter,
) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)

	if err != nil {
		return nil, err
	}

	b := &Bot{
		session:   session,
		core:      appCore,
		registry:  reg,
		presenter: pres,
		log:       logger.New(),
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	session.Identify.Intents = discordgo.IntentsGuilds

	return b, nil
}

// Run opens the gateway connection and blocks until ctx is done
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return err
	}

	<-ctx.Done()

	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().Str("user", r.User.Username).Msg("discord session ready")

	minPort := float64(1)

	command := &discordgo.ApplicationCommand{
		Name:        statusCommand,
		Description: "Fetch a Minecraft server's status.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "ip",
				Description: "The server's connection IP.",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "port",
				Description: "The server's connection port. Defaults to 25565.",
				MinValue:    &minPort,
				Required:    false,
			},
		},
	}

	if _, err := s.ApplicationCommandCreate(s.State.User.ID, "", command); err != nil {
		b.log.Error().Err(err).Msg("failed to register status command")
	}

	b.registerGuildCommands(s)
}

// registerGuildCommands creates one guild command per stored registration
func (b *Bot) registerGuildCommands(s *discordgo.Session) {
	regs, err := b.registry.GetAll()

	if err != nil {
		b.log.Error().Err(err).Msg("failed to load registrations")
		return
	}

	for _, reg := range regs {
		description := reg.Description

		if description == "" {
			description = "Fetch the status of the registered server."
		}

		command := &discordgo.ApplicationCommand{
			Name:        reg.Command,
			Description: description,
		}

		_, err := s.ApplicationCommandCreate(s.State.User.ID, reg.GuildID, command)

		if err != nil {
			b.log.Error().
				Err(err).
				Str("guild", reg.GuildID).
				Str("command", reg.Command).
				Msg("failed to register guild command")
		}
	}
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()

	var t target.Target

	note := ""

	if data.Name == statusCommand {
		host := ""
		port := 0

		for _, opt := range data.Options {
			switch opt.Name {
			case "ip":
				host = opt.StringValue()
			case "port":
				port = int(opt.IntValue())
			}
		}

		t = target.Parse(host, port)
	} else {
		reg, err := b.registry.Get(i.GuildID, data.Name)

		if errors.Is(err, exception.ErrRecordNotFound) {
			// not one of our registered commands
			return
		}

		if err != nil {
			b.log.Error().
				Err(err).
				Str("guild", i.GuildID).
				Str("command", data.Name).
				Msg("registration lookup failed")
			return
		}

		if !b.registry.ChannelAllowed(reg, i.ChannelID) {
			b.respondAlien(s, i, reg)
			return
		}

		t = target.Parse(reg.IP, reg.Port)
		note = reg.Note
	}

	go b.lookupAndRespond(s, i, t, note)
}

func (b *Bot) respondAlien(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	reg *registry.Registration,
) {
	msg := reg.AlienMessage

	if msg == "" {
		msg = defaultAlienMessage
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})

	if err != nil {
		b.log.Error().Err(err).Msg("failed to respond to interaction")
	}
}

// lookupAndRespond shows the pending embed, waits for both probe
// outcomes and edits in the single final embed
func (b *Bot) lookupAndRespond(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	t target.Target,
	note string,
) {
	pending := b.presenter.Render(b.core.Pending(t), note)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{pending},
		},
	})

	if err != nil {
		b.log.Error().Err(err).Str("addr", t.Addr()).Msg("failed to respond to interaction")
		return
	}

	rec := b.core.Lookup(context.Background(), t)

	embed := b.presenter.Render(rec, note)

	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})

	if err != nil {
		b.log.Error().Err(err).Str("addr", t.Addr()).Msg("failed to edit status response")
	}
}
