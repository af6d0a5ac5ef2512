package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

var (
	askSession string
	askJSON    bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant one question",
	Long: `Ask a single question and print the answer.

Examples:
  portfolio-assistant ask "what are your skills?"
  portfolio-assistant ask --json "open your github"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askSession, "session", "", "session identifier to correlate turns")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the full response envelope as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	app, err := bootstrap(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer app.Close()

	envelope := app.Assistant.Answer(cmd.Context(), domain.AskRequest{
		Message:   strings.Join(args, " "),
		SessionID: askSession,
	})

	if askJSON {
		data, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling envelope: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(envelope.Response)
	if envelope.URL != "" {
		cmd.Printf("URL: %s\n", envelope.URL)
	}
	return nil
}
