package presenter

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/craftstat/craftstat/internal/status"
)

// embed colours per record state
const (
	colorPending    = 0x3498db
	colorOnline     = 0x2ecc71
	colorIncomplete = 0xf1c40f
	colorOffline    = 0xe74c3c
)

// Presenter renders reconciled records as discord embeds. With no icon
// url prefix configured icons are still cached but never advertised,
// which is the documented degraded mode.
type Presenter struct {
	iconURLPrefix string
}

// New returns a Presenter building icon links under urlPrefix
func New(iconURLPrefix string) *Presenter {
	return &Presenter{
		iconURLPrefix: strings.TrimSuffix(iconURLPrefix, "/"),
	}
}

// Render builds the embed for any record kind
func (p *Presenter) Render(rec *status.Reconciled, note string) *discordgo.MessageEmbed {
	var emb *discordgo.MessageEmbed

	switch rec.Kind {
	case status.KindPending:
		emb = p.pendingEmbed(rec)
	case status.KindOffline:
		emb = p.offlineEmbed()
	default:
		emb = p.statusEmbed(rec)
	}

	if note != "" {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name:  "Note",
			Value: note,
		})
	}

	return emb
}

func (p *Presenter) pendingEmbed(rec *status.Reconciled) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: fmt.Sprintf(
			"Querying server at %s for information...",
			markdownAddr(rec),
		),
		Color: colorPending,
	}
}

func (p *Presenter) offlineEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: "Server did not respond to ping or query request. Is it offline or overloaded?",
		Color:       colorOffline,
	}
}

func (p *Presenter) statusEmbed(rec *status.Reconciled) *discordgo.MessageEmbed {
	emb := &discordgo.MessageEmbed{
		Description: "Server stats:",
		Color:       colorOnline,
	}

	addField(emb, "Server IP", markdownAddr(rec))

	if rec.Latency > 0 {
		addField(emb, "Request latency", fmt.Sprintf("%.2f ms", rec.Latency))
	}

	if rec.Version != "" {
		addField(emb, "Server version", rec.Version)
	}

	if rec.Motd != "" {
		addField(emb, "MOTD", rec.Motd)
	}

	if rec.SlotsOnline != nil {
		max := "?"

		if rec.SlotsMax != nil {
			max = fmt.Sprintf("%d", *rec.SlotsMax)
		}

		addField(emb, "Slots", fmt.Sprintf("%d/%s", *rec.SlotsOnline, max))
	}

	if len(rec.Plugins) > 0 {
		addField(emb, "Plugins", strings.Join(rec.Plugins, ", "))
	}

	if len(rec.Players) > 0 {
		addField(emb, "Players", renderPlayers(rec.Players))
	}

	if rec.Incomplete != status.NarrativeNone {
		addField(emb, "Incomplete data", rec.Describe())
		emb.Color = colorIncomplete
	}

	if rec.IconKey != "" && p.iconURLPrefix != "" {
		emb.Thumbnail = &discordgo.MessageEmbedThumbnail{
			URL: p.iconURLPrefix + "/" + rec.IconKey,
		}
	}

	return emb
}

func addField(emb *discordgo.MessageEmbed, name, value string) {
	emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: true,
	})
}

func markdownAddr(rec *status.Reconciled) string {
	return fmt.Sprintf("`%s`:`%d`", rec.Target.Host, rec.Target.Port)
}

// renderPlayers lists names, mentioning the linked discord account where
// one resolved
func renderPlayers(players []status.Player) string {
	rendered := make([]string, 0, len(players))

	for _, player := range players {
		if player.DiscordID != "" {
			rendered = append(
				rendered,
				fmt.Sprintf("%s (<@%s>)", player.Name, player.DiscordID),
			)
		} else {
			rendered = append(rendered, player.Name)
		}
	}

	return strings.Join(rendered, ", ")
}
