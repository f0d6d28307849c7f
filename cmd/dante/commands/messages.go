package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"dante/internal/domain"
)

func messagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Exchange internal messages with other users",
	}
	cmd.AddCommand(messagesConversationCmd(), messagesSendCmd(), messagesReadCmd(), messagesRemoveCmd())
	return cmd
}

func messagesConversationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conversation <user-id>",
		Short: "Show the conversation with a user, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := appCtx.Messages.Conversation(cmd.Context(), domain.UserID(args[0]))
			if err != nil {
				return err
			}
			me, _ := appCtx.Users.User()
			for _, m := range msgs {
				who := "them"
				if m.SenderID == me.ID {
					who = "me"
				}
				mark := " "
				if !m.IsRead && m.SenderID != me.ID {
					mark = "*"
				}
				printer.Print("%s %s %-4s %s  (%s)", mark, when(m.CreatedAt), who, m.Content, m.ID)
			}
			return nil
		},
	}
}

func messagesSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <user-id> <message...>",
		Short: "Send a message to a user",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := appCtx.Messages.Send(cmd.Context(), domain.UserID(args[0]), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			printer.Success("sent (%s)", m.ID)
			return nil
		},
	}
}

func messagesReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <message-id>",
		Short: "Mark a message as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := appCtx.Messages.MarkRead(cmd.Context(), domain.MessageID(args[0])); err != nil {
				return err
			}
			printer.Success("marked read")
			return nil
		},
	}
}

func messagesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <message-id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Messages.Remove(cmd.Context(), domain.MessageID(args[0])); err != nil {
				return err
			}
			printer.Success("deleted message %s", args[0])
			return nil
		},
	}
}
