package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/npillmayer/cipherkit"
	"github.com/npillmayer/cipherkit/internal/config"
	"github.com/npillmayer/cipherkit/pattern"
	"github.com/npillmayer/cipherkit/tabular"
	"github.com/npillmayer/cipherkit/wordlist"
	"github.com/spf13/cobra"
)

func lookupLanguage(code string) (*cipherkit.Language, error) {
	lang, ok := cipherkit.LookupLanguage(code)
	if !ok {
		return nil, fmt.Errorf("unknown language %q, see 'cipherkit languages'", code)
	}
	return lang, nil
}

func lookupCipher(name string) (tabular.Mapper, error) {
	ct, ok := tabular.ParseCipherType(name)
	if !ok {
		return nil, fmt.Errorf("unknown cipher %q", name)
	}
	return tabular.ForCipher(ct), nil
}

func printLines(cmd *cobra.Command, lines []cipherkit.LineSegment, keyed bool) {
	out := cmd.OutOrStdout()
	for i, l := range lines {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if keyed {
			fmt.Fprintln(out, l.KeyText())
		}
		fmt.Fprintln(out, l.PlainText())
		fmt.Fprintln(out, l.CipherText())
	}
}

// --- encode / decode -------------------------------------------------------

func newKeyedCmd(cfg config.Config, decode bool) *cobra.Command {
	var cipher, key string
	var width, block int
	use, short := "encode", "Encode a message with a tabular cipher"
	if decode {
		use, short = "decode", "Decode a message with a tabular cipher"
	}
	cmd := &cobra.Command{
		Use:   use + " [message]",
		Short: short,
		Long: short + `.

Supported ciphers are vigenere, variant, beaufort, gronsfeld, porta and portax.
Output shows key, plaintext and ciphertext line by line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := lookupCipher(cipher)
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			lines := cipherkit.EncodeKeyed(text, key, m, cipherkit.KeyedOptions{
				Decode:    decode,
				MaxWidth:  width,
				BlockSize: block,
			})
			printLines(cmd, lines, true)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cipher, "cipher", "c", string(tabular.Vigenere), "Cipher type")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Key, repeated over the message")
	cmd.Flags().IntVarP(&width, "width", "w", cfg.Width, "Display line width")
	cmd.Flags().IntVarP(&block, "block", "b", 0, "Regroup the message into blocks of this size")
	return cmd
}

// --- replace ---------------------------------------------------------------

func newReplaceCmd(cfg config.Config) *cobra.Command {
	var mapping, langCode string
	var width int
	cmd := &cobra.Command{
		Use:   "replace [message]",
		Short: "Encode a message with a monoalphabetic replacement",
		Long: `Encode a message with a monoalphabetic replacement.

The replacement is given as comma separated pairs plain=cipher, e.g. A=Q,B=X.
Unmapped letters are shown as '?'. The frequencies of the cipher symbols
are listed after the message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := lookupLanguage(langCode)
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			repl := cipherkit.ParseReplacementMap(mapping)
			lines, freq := cipherkit.MakeReplacement(text, lang, repl, width)
			printLines(cmd, lines, false)
			var counts []string
			for _, row := range freq.Sorted(lang.Charset) {
				if row.Count > 0 {
					counts = append(counts, fmt.Sprintf("%s:%d", row.Symbol, row.Count))
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", strings.Join(counts, " "))
			return nil
		},
	}
	cmd.Flags().StringVarP(&mapping, "map", "m", "", "Replacement, e.g. A=Q,B=X")
	cmd.Flags().StringVarP(&langCode, "lang", "l", cfg.Language, "Language")
	cmd.Flags().IntVarP(&width, "width", "w", cfg.Width, "Display line width")
	return cmd
}

// --- chisq -----------------------------------------------------------------

func newChiSquareCmd(cfg config.Config) *cobra.Command {
	var langCode string
	var rank bool
	cmd := &cobra.Command{
		Use:   "chisq [text]",
		Short: "Score a text against a language's letter frequencies",
		Long: `Score a text against a language's letter frequencies with a Chi-Square
test. Lower scores are a better fit. With --rank all languages are scored,
best fit first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if rank {
				for _, s := range cipherkit.RankLanguages(text, cipherkit.Languages()) {
					if math.IsInf(s.Score, 1) {
						fmt.Fprintf(out, "%s\t%-11s\t-\n", s.Language.Code, s.Language.Name)
						continue
					}
					fmt.Fprintf(out, "%s\t%-11s\t%.2f\n", s.Language.Code, s.Language.Name, s.Score)
				}
				return nil
			}
			lang, err := lookupLanguage(langCode)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%.2f\n", cipherkit.ChiSquareText(text, lang))
			return nil
		},
	}
	cmd.Flags().StringVarP(&langCode, "lang", "l", cfg.Language, "Language")
	cmd.Flags().BoolVarP(&rank, "rank", "r", false, "Rank all languages")
	return cmd
}

// --- keylen / recover ------------------------------------------------------

func newKeyLengthCmd(cfg config.Config) *cobra.Command {
	var langCode string
	var maxLen int
	cmd := &cobra.Command{
		Use:   "keylen [ciphertext]",
		Short: "Estimate the key length of a periodic cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := lookupLanguage(langCode)
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			n := cipherkit.EstimateKeyLength(text, cipherkit.Latin, lang.Profile, maxLen)
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&langCode, "lang", "l", cfg.Language, "Language of the plaintext")
	cmd.Flags().IntVar(&maxLen, "max", 20, "Longest key length to consider")
	return cmd
}

func newRecoverCmd() *cobra.Command {
	var cipher string
	cmd := &cobra.Command{
		Use:   "recover <ciphertext> <plaintext>",
		Short: "Recover the key from a ciphertext and known plaintext",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := lookupCipher(cipher)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cipherkit.RecoverKey(args[0], args[1], m, cipherkit.Latin))
			return nil
		},
	}
	cmd.Flags().StringVarP(&cipher, "cipher", "c", string(tabular.Vigenere), "Cipher type")
	return cmd
}

// --- pattern / match -------------------------------------------------------

func newPatternCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "pattern <word>...",
		Short: "Print the letter pattern of words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, w := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", strings.ToUpper(w), pattern.Make(strings.ToUpper(w), width))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 1, "Number of symbols per group")
	return cmd
}

func newMatchCmd(cfg config.Config) *cobra.Command {
	var dir, langCode, solved string
	var limit int
	cmd := &cobra.Command{
		Use:   "match <cipherword>",
		Short: "List dictionary words a cipher word may stand for",
		Long: `List dictionary words a cipher word may stand for, most common first.

Words are read from <dir>/<lang>.txt. Letters solved so far are given as
comma separated pairs cipher=plain, e.g. Q=E,X=T.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := lookupLanguage(langCode)
			if err != nil {
				return err
			}
			indexes, err := wordlist.LoadAll(cmd.Context(), os.DirFS(dir), []*cipherkit.Language{lang})
			if err != nil {
				return err
			}
			ix, ok := indexes[lang.Code]
			if !ok {
				return fmt.Errorf("no word list %s in %s", wordlist.FileName(lang), dir)
			}
			out := cmd.OutOrStdout()
			for i, e := range ix.Matches(args[0], cipherkit.ParseReplacementMap(solved)) {
				if limit > 0 && i >= limit {
					break
				}
				fmt.Fprintf(out, "%s\t%d\t%d\n", e.Word, e.Rank, e.Tier)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", cfg.WordLists, "Directory of word lists")
	cmd.Flags().StringVarP(&langCode, "lang", "l", cfg.Language, "Language")
	cmd.Flags().StringVarP(&solved, "map", "m", "", "Solved letters, e.g. Q=E,X=T")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of words, 0 for all")
	return cmd
}

// --- languages -------------------------------------------------------------

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the built-in languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range cipherkit.Languages() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-11s\t%s\n", l.Code, l.Name, l.Charset)
			}
			return nil
		},
	}
}
