package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/medwatch-dev/medwatch/extraction"
	"github.com/spf13/cobra"
)

// NewExtractCommand runs the extractor over a report text given as argument,
// via --file, or on stdin, and prints the structured result as JSON. The
// report is not persisted.
func NewExtractCommand() *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract [report text]",
		Short: "Extract structured fields from a report text",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}

			var text string
			switch {
			case file != "":
				content, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("could not read report file: %w", err)
				}
				text = string(content)
			case len(args) > 0:
				text = strings.Join(args, " ")
			default:
				content, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("could not read report from stdin: %w", err)
				}
				text = string(content)
			}

			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("report text is empty")
			}

			report := extraction.Extract(text)

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	extractCmd.Flags().StringP("file", "f", "", "Read the report text from a file instead of the arguments")

	return extractCmd
}
