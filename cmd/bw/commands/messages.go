package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewMessagesCommand creates the messages command group.
func NewMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"message", "msg"},
		Short:   "Send and view messages",
		Long:    "Send SMS/MMS messages and view sent or received messages",
	}

	cmd.AddCommand(newMessagesSendCommand())
	cmd.AddCommand(newMessagesGetCommand())
	cmd.AddCommand(newMessagesListCommand())

	return cmd
}

type messagesSendOptions struct {
	from        string
	to          string
	text        string
	media       []string
	callbackURL string
	tag         string
}

func newMessagesSendCommand() *cobra.Command {
	opts := &messagesSendOptions{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Long:  "Send an SMS or MMS message and print the id assigned to it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.from == "" {
				return constants.ErrFromRequired
			}

			if opts.to == "" {
				return constants.ErrToRequired
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			id, err := client.Messages().Send(cmd.Context(), &bandwidth.Message{
				From:        opts.from,
				To:          opts.to,
				Text:        opts.text,
				Media:       opts.media,
				CallbackURL: opts.callbackURL,
				Tag:         opts.tag,
			})
			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}

			publishCreated(cmd, constants.MessagesPath, id)

			return writeCreated(cmd.OutOrStdout(), "Message", id)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "sending number in E.164 format")
	cmd.Flags().StringVar(&opts.to, "to", "", "receiving number in E.164 format")
	cmd.Flags().StringVar(&opts.text, "text", "", "message text")
	cmd.Flags().StringSliceVar(&opts.media, "media", nil, "media URLs to attach")
	cmd.Flags().StringVar(&opts.callbackURL, "callback-url", "", "URL receiving delivery events")
	cmd.Flags().StringVar(&opts.tag, "tag", "", "free-form tag echoed in message events")

	return cmd
}

func newMessagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MESSAGE_ID",
		Short: "Get message details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			message, err := client.Messages().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get message: %w", err)
			}

			if message == nil {
				return fmt.Errorf("message %s: %w", args[0], constants.ErrEmptyResponse)
			}

			return writeOutput(cmd.OutOrStdout(), message, func(w io.Writer) error {
				return propertyTable(w, [][2]string{
					{"ID", message.ID},
					{"From", message.From},
					{"To", message.To},
					{"Direction", displayState(message.Direction)},
					{"State", displayState(message.State)},
					{"Time", formatTime(message.Time)},
					{"Text", message.Text},
					{"Media", strings.Join(message.Media, ", ")},
					{"Tag", message.Tag},
				})
			})
		},
	}
}

func newMessagesListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			messages, err := listResources(cmd.Context(), flags, client.Messages().List)
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), messages, func(w io.Writer) error {
				if len(messages) == 0 {
					_, _ = fmt.Fprintln(w, "No messages found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "From", "To", "Direction", "State", "Time")

				for _, message := range messages {
					_ = table.Append(message.ID, message.From, message.To, displayState(message.Direction),
						displayState(message.State), valueOrNA(formatTime(message.Time)))
				}

				return table.Render()
			})
		},
	}

	flags.register(cmd)

	return cmd
}
