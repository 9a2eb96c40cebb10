package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCallsCommand creates the calls command group.
func NewCallsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calls",
		Aliases: []string{"call"},
		Short:   "Manage voice calls",
		Long:    "Create, inspect and control voice calls",
	}

	cmd.AddCommand(newCallsCreateCommand())
	cmd.AddCommand(newCallsGetCommand())
	cmd.AddCommand(newCallsUpdateCommand())
	cmd.AddCommand(newCallsListCommand())
	cmd.AddCommand(newCallsPlayCommand())

	return cmd
}

type callsCreateOptions struct {
	from        string
	to          string
	callbackURL string
	tag         string
	recording   bool
	fileFormat  string
	timeout     int
}

func newCallsCreateCommand() *cobra.Command {
	opts := &callsCreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place an outbound call",
		Long:  "Place an outbound call and print the id assigned to it",
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := opts.build()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			id, err := client.Calls().Create(cmd.Context(), call)
			if err != nil {
				return fmt.Errorf("failed to create call: %w", err)
			}

			publishCreated(cmd, constants.CallsPath, id)

			return writeCreated(cmd.OutOrStdout(), "Call", id)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "calling number in E.164 format")
	cmd.Flags().StringVar(&opts.to, "to", "", "called number in E.164 format")
	cmd.Flags().StringVar(&opts.callbackURL, "callback-url", "", "URL receiving call events")
	cmd.Flags().StringVar(&opts.tag, "tag", "", "free-form tag echoed in call events")
	cmd.Flags().BoolVar(&opts.recording, "record", false, "record the call")
	cmd.Flags().StringVar(&opts.fileFormat, "recording-format", "", "recording file format (mp3, wav)")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "seconds to wait for an answer")

	return cmd
}

func (o *callsCreateOptions) build() (*bandwidth.Call, error) {
	if o.from == "" {
		return nil, constants.ErrFromRequired
	}

	if o.to == "" {
		return nil, constants.ErrToRequired
	}

	call := &bandwidth.Call{
		From:             o.from,
		To:               o.to,
		CallbackURL:      o.callbackURL,
		Tag:              o.tag,
		RecordingEnabled: o.recording,
		CallTimeout:      o.timeout,
	}

	if o.fileFormat != "" {
		format, err := bandwidth.ParseRecordingFileFormat(o.fileFormat)
		if err != nil {
			return nil, err
		}

		call.RecordingFileFormat = format
	}

	return call, nil
}

func newCallsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CALL_ID",
		Short: "Get call details",
		Long:  "Display detailed information about a specific call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			call, err := client.Calls().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get call: %w", err)
			}

			if call == nil {
				return fmt.Errorf("call %s: %w", args[0], constants.ErrEmptyResponse)
			}

			return writeOutput(cmd.OutOrStdout(), call, func(w io.Writer) error {
				return propertyTable(w, [][2]string{
					{"ID", call.ID},
					{"From", call.From},
					{"To", call.To},
					{"Direction", displayState(call.Direction)},
					{"State", displayState(call.State)},
					{"Start Time", formatTime(call.StartTime)},
					{"Active Time", formatTime(call.ActiveTime)},
					{"End Time", formatTime(call.EndTime)},
					{"Chargeable Duration", formatInt(call.ChargeableDuration)},
					{"Callback URL", call.CallbackURL},
					{"Recording Enabled", strconv.FormatBool(call.RecordingEnabled)},
					{"Tag", call.Tag},
				})
			})
		},
	}
}

type callsUpdateOptions struct {
	state       string
	callbackURL string
	tag         string
}

func newCallsUpdateCommand() *cobra.Command {
	opts := &callsUpdateOptions{}

	cmd := &cobra.Command{
		Use:   "update CALL_ID",
		Short: "Update a call",
		Long:  "Change the state of a call, e.g. answer, reject or hang up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.state == "" && opts.callbackURL == "" && opts.tag == "" {
				return constants.ErrNoUpdateSpecified
			}

			update := &bandwidth.Call{CallbackURL: opts.callbackURL, Tag: opts.tag}

			if opts.state != "" {
				state, err := bandwidth.ParseCallState(opts.state)
				if err != nil {
					return err
				}

				update.State = state
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			location, err := client.Calls().Update(cmd.Context(), args[0], update)
			if err != nil {
				return fmt.Errorf("failed to update call: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Call %s updated\n", args[0])

			if location != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", location)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.state, "state", "", "new call state (active, rejected, completed, transferring)")
	cmd.Flags().StringVar(&opts.callbackURL, "callback-url", "", "new callback URL")
	cmd.Flags().StringVar(&opts.tag, "tag", "", "new tag")

	return cmd
}

func newCallsListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calls",
		Long:  "List calls of the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			calls, err := listResources(cmd.Context(), flags, client.Calls().List)
			if err != nil {
				return fmt.Errorf("failed to list calls: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), calls, func(w io.Writer) error {
				if len(calls) == 0 {
					_, _ = fmt.Fprintln(w, "No calls found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "From", "To", "Direction", "State", "Start Time")

				for _, call := range calls {
					_ = table.Append(call.ID, call.From, call.To, displayState(call.Direction),
						displayState(call.State), valueOrNA(formatTime(call.StartTime)))
				}

				return table.Render()
			})
		},
	}

	flags.register(cmd)

	return cmd
}

type callsPlayOptions struct {
	fileURL  string
	sentence string
	gender   string
	locale   string
	voice    string
	loop     bool
}

func newCallsPlayCommand() *cobra.Command {
	opts := &callsPlayOptions{}

	cmd := &cobra.Command{
		Use:   "play CALL_ID",
		Short: "Play audio into a call",
		Long:  "Play an audio file or speak a sentence into an active call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.fileURL == "" && opts.sentence == "" {
				return constants.ErrAudioRequired
			}

			audio := &bandwidth.PlayAudio{
				FileURL:     opts.fileURL,
				Sentence:    opts.sentence,
				Locale:      opts.locale,
				Voice:       opts.voice,
				LoopEnabled: opts.loop,
			}

			if opts.gender != "" {
				gender, err := bandwidth.ParseGender(opts.gender)
				if err != nil {
					return err
				}

				audio.Gender = gender
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			err = client.Calls().PlayAudio(cmd.Context(), args[0], audio)
			if err != nil {
				return fmt.Errorf("failed to play audio: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Playing audio on call %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.fileURL, "file-url", "", "URL of an audio file")
	cmd.Flags().StringVar(&opts.sentence, "sentence", "", "sentence to speak")
	cmd.Flags().StringVar(&opts.gender, "gender", "", "voice gender (female, male)")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "voice locale, e.g. en_US")
	cmd.Flags().StringVar(&opts.voice, "voice", "", "voice name")
	cmd.Flags().BoolVar(&opts.loop, "loop", false, "repeat until stopped")

	return cmd
}
