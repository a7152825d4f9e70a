package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/cipherkit/internal/config"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "cipherkit",
		Short: "Construct and solve classic pencil-and-paper ciphers",
		Long: `cipherkit constructs and helps solving classic pencil-and-paper ciphers,
as used in puzzle competitions.

Messages are given as arguments or piped to stdin.

Examples:
  cipherkit encode --cipher porta --key secret "Meet me at noon"
  cipherkit decode --key lemon LXFOPVEFRNHR
  cipherkit replace --map A=Q,T=X "attack at dawn"
  cipherkit chisq --rank < message.txt
  cipherkit pattern letter better
  cipherkit match --map Q=E xqqz

Environment:
  CIPHERKIT_LANG       default language (en)
  CIPHERKIT_WIDTH      display line width (53)
  CIPHERKIT_WORDLISTS  directory of <code>.txt word lists (Languages)`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newKeyedCmd(cfg, false),
		newKeyedCmd(cfg, true),
		newReplaceCmd(cfg),
		newChiSquareCmd(cfg),
		newKeyLengthCmd(cfg),
		newRecoverCmd(),
		newPatternCmd(),
		newMatchCmd(cfg),
		newLanguagesCmd(),
	)
	return root
}

// inputText returns the arguments joined by blanks, or stdin if there are
// none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input text provided, pass it as argument or pipe it to stdin")
	}
	return text, nil
}
