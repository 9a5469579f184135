package cmd

import (
	"fmt"
	"strings"

	"github.com/fernet/fernet-go"
	"github.com/spf13/cobra"

	"github.com/dstairlines/flightwatch/internal/config"
	"github.com/dstairlines/flightwatch/internal/prompt"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the credential encryption key",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new Fernet encryption key",
	RunE: func(cmd *cobra.Command, args []string) error {
		key := new(fernet.Key)
		if err := key.Generate(); err != nil {
			return fmt.Errorf("generating key: %w", err)
		}

		out("%s\n", key.Encode())
		if !quiet && !jsonOutput {
			outln("\nSet this as FLIGHTWATCH_ENCRYPTION_KEY, then encrypt your token with:")
			outln("  flightwatch key encrypt")
		}
		return nil
	},
}

var keyEncryptCmd = &cobra.Command{
	Use:   "encrypt [token]",
	Short: "Encrypt an API token with the configured key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := config.EncryptionKey()
		if err != nil {
			return err
		}

		var token string
		if len(args) > 0 {
			token = args[0]
		} else {
			token, err = prompt.Default.Input(prompt.InputConfig{
				Title:       "API token",
				Placeholder: "paste token here",
				Validate:    prompt.ValidateNotEmpty,
			})
			if err != nil {
				return err
			}
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return fmt.Errorf("token cannot be empty")
		}

		encrypted, err := fernet.EncryptAndSign([]byte(token), key)
		if err != nil {
			return fmt.Errorf("encrypting token: %w", err)
		}

		out("%s\n", encrypted)
		if !quiet && !jsonOutput {
			outln("\nStore the value above as api.token in your config, or as FLIGHTWATCH_API_TOKEN.")
		}
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keyGenerateCmd)
	keyCmd.AddCommand(keyEncryptCmd)
}
