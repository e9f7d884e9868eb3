package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftstat/craftstat/internal/registry"
)

/**
 * Commands to manage guild server registrations
 */
func server(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage registered guild server commands",
	}

	cmd.AddCommand(serverAdd(props))
	cmd.AddCommand(serverRemove(props))
	cmd.AddCommand(serverList(props))

	return cmd
}

func serverAdd(props *CommandProps) *cobra.Command {
	var guildID string
	var command string
	var ip string
	var port int
	var note string
	var description string
	var channels []string
	var alienMessage string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a server under a guild command",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := props.Registry.AddOrUpdate(&registry.Registration{
				GuildID:          guildID,
				Command:          command,
				IP:               ip,
				Port:             port,
				Note:             note,
				Description:      description,
				ChannelWhitelist: channels,
				AlienMessage:     alienMessage,
			})

			if err != nil {
				return err
			}

			fmt.Printf("registered %s/%s -> %s:%d\n", reg.GuildID, reg.Command, reg.IP, reg.Port)

			return nil
		},
	}

	cmd.Flags().StringVar(&guildID, "guild", "", "guild id the command belongs to")
	cmd.Flags().StringVar(&command, "command", "", "command name to register")
	cmd.Flags().StringVar(&ip, "ip", "", "server connection ip")
	cmd.Flags().IntVar(&port, "port", 25565, "server connection port")
	cmd.Flags().StringVar(&note, "note", "", "note appended to every status embed")
	cmd.Flags().StringVar(&description, "description", "", "command description shown in discord")
	cmd.Flags().StringSliceVar(&channels, "channel", []string{}, "channel ids the command is restricted to")
	cmd.Flags().StringVar(&alienMessage, "alien-message", "", "reply for users outside whitelisted channels")

	cmd.MarkFlagRequired("guild")
	cmd.MarkFlagRequired("command")
	cmd.MarkFlagRequired("ip")

	return cmd
}

func serverRemove(props *CommandProps) *cobra.Command {
	var guildID string
	var command string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a registered guild command",
		RunE: func(cmd *cobra.Command, args []string) error {
			return props.Registry.Remove(guildID, command)
		},
	}

	cmd.Flags().StringVar(&guildID, "guild", "", "guild id the command belongs to")
	cmd.Flags().StringVar(&command, "command", "", "command name to remove")

	cmd.MarkFlagRequired("guild")
	cmd.MarkFlagRequired("command")

	return cmd
}

func serverList(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered guild commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			regs, err := props.Registry.GetAll()

			if err != nil {
				return err
			}

			for _, reg := range regs {
				fmt.Printf(
					"%s/%s -> %s:%d note=%q\n",
					reg.GuildID,
					reg.Command,
					reg.IP,
					reg.Port,
					reg.Note,
				)
			}

			return nil
		},
	}

	return cmd
}
