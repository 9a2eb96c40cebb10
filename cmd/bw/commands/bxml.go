package commands

import (
	"fmt"

	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/dannycabrera/bandwidth-go/pkg/bxml"
	"github.com/spf13/cobra"
)

// NewBXMLCommand creates the bxml command group.
func NewBXMLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bxml",
		Short: "Generate call-control XML",
		Long:  "Print call-control XML documents to return from application callbacks",
	}

	cmd.AddCommand(newBXMLRecordCommand())

	return cmd
}

type bxmlRecordOptions struct {
	requestURL            string
	requestURLTimeout     int
	terminatingDigits     string
	maxDuration           int
	transcribe            bool
	transcribeCallbackURL string
	fileFormat            string
	sentence              string
	hangup                bool
}

func newBXMLRecordCommand() *cobra.Command {
	opts := &bxmlRecordOptions{}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Print a Record document",
		Long:  "Print a response that optionally speaks a prompt, records the caller and optionally hangs up",
		RunE: func(cmd *cobra.Command, args []string) error {
			record := bxml.NewRecord(opts.requestURL)
			record.RequestURLTimeout = opts.requestURLTimeout
			record.TerminatingDigits = opts.terminatingDigits
			record.MaxDuration = opts.maxDuration
			record.Transcribe = opts.transcribe
			record.TranscribeCallbackURL = opts.transcribeCallbackURL

			if opts.fileFormat != "" {
				format, err := bandwidth.ParseRecordingFileFormat(opts.fileFormat)
				if err != nil {
					return err
				}

				record.RecordingFileFormat = format
			}

			response := bxml.NewResponse()
			if opts.sentence != "" {
				response.Add(&bxml.SpeakSentence{Sentence: opts.sentence})
			}

			response.Add(record)

			if opts.hangup {
				response.Add(&bxml.Hangup{})
			}

			document, err := response.ToXML()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), document)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.requestURL, "request-url", "", "URL receiving the recording")
	cmd.Flags().IntVar(&opts.requestURLTimeout, "request-url-timeout", 0, "request URL timeout in milliseconds")
	cmd.Flags().StringVar(&opts.terminatingDigits, "terminating-digits", "", "digits that stop the recording")
	cmd.Flags().IntVar(&opts.maxDuration, "max-duration", bxml.DefaultMaxDuration, "maximum recording length in seconds")
	cmd.Flags().BoolVar(&opts.transcribe, "transcribe", false, "transcribe the recording")
	cmd.Flags().StringVar(&opts.transcribeCallbackURL, "transcribe-callback-url", "", "URL receiving the transcription")
	cmd.Flags().StringVar(&opts.fileFormat, "file-format", "", "recording file format (mp3, wav)")
	cmd.Flags().StringVar(&opts.sentence, "prompt", "", "sentence spoken before recording")
	cmd.Flags().BoolVar(&opts.hangup, "hangup", false, "hang up after recording")

	return cmd
}
