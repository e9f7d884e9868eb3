package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

/**
 * Commands to manage discord <-> game username mappings
 */
func user(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage discord user to game username mappings",
	}

	cmd.AddCommand(userLink(props))
	cmd.AddCommand(userUnlink(props))
	cmd.AddCommand(userList(props))

	return cmd
}

func userLink(props *CommandProps) *cobra.Command {
	var discordID string
	var username string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link a discord user to a game username",
		RunE: func(cmd *cobra.Command, args []string) error {
			ident, err := props.Identity.Link(discordID, username)

			if err != nil {
				return err
			}

			fmt.Printf("linked %s <-> %s\n", ident.DiscordID, ident.Username)

			return nil
		},
	}

	cmd.Flags().StringVar(&discordID, "discord-id", "", "discord user id")
	cmd.Flags().StringVar(&username, "username", "", "game username")

	cmd.MarkFlagRequired("discord-id")
	cmd.MarkFlagRequired("username")

	return cmd
}

func userUnlink(props *CommandProps) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "unlink",
		Short: "Remove the mapping for a game username",
		RunE: func(cmd *cobra.Command, args []string) error {
			return props.Identity.Unlink(username)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "game username")

	cmd.MarkFlagRequired("username")

	return cmd
}

func userList(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List identity mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			idents, err := props.Identity.GetAll()

			if err != nil {
				return err
			}

			for _, ident := range idents {
				fmt.Printf("%s <-> %s\n", ident.DiscordID, ident.Username)
			}

			return nil
		},
	}

	return cmd
}
