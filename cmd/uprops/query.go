package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icu4g/ucore/config"
	"github.com/icu4g/ucore/upservice"
)

type serviceLoader func() (*upservice.Service, *config.Config, error)

func charCmd(load serviceLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "char <code-point>",
		Short: "Print the full property record for one code point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := load()
			if err != nil {
				return err
			}
			cp, err := parseCodePoint(args[0])
			if err != nil {
				return err
			}
			info, err := svc.Char(cp)
			if err != nil {
				return err
			}
			printCharInfo(info)
			return nil
		},
	}
}

func normalizeCmd(load serviceLoader) *cobra.Command {
	var form string
	cmd := &cobra.Command{
		Use:   "normalize <text>",
		Short: "Normalize text to NFC, NFD, NFKC, or NFKD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := load()
			if err != nil {
				return err
			}
			if form == "" {
				form = cfg.REPL.DefaultForm
			}
			f, err := upservice.ParseForm(form)
			if err != nil {
				return err
			}
			out, err := svc.Normalize(f, args[0])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&form, "form", "", "normalization form: nfc, nfd, nfkc, nfkd (default from config)")
	return cmd
}

func quickCheckCmd(load serviceLoader) *cobra.Command {
	var form string
	cmd := &cobra.Command{
		Use:   "quickcheck <text>",
		Short: "Run the quick-check pass over text for one normalization form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := load()
			if err != nil {
				return err
			}
			if form == "" {
				form = cfg.REPL.DefaultForm
			}
			f, err := upservice.ParseForm(form)
			if err != nil {
				return err
			}
			result, err := svc.QuickCheck(f, args[0])
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&form, "form", "", "normalization form: nfc, nfd, nfkc, nfkd (default from config)")
	return cmd
}

// parseCodePoint accepts "U+00C0", "0xC0", a bare hex string, or (when none
// of those parse) a single literal character.
func parseCodePoint(s string) (rune, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "0x"), "0X")
	if v, err := strconv.ParseInt(trimmed, 16, 32); err == nil {
		return rune(v), nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("cannot parse %q as a code point", s)
}

func printCharInfo(info upservice.CharInfo) {
	fmt.Printf("U+%04X\n", info.CodePoint)
	fmt.Printf("  category:        %s\n", info.Category)
	fmt.Printf("  bidi class:      %s\n", info.BidiClass)
	fmt.Printf("  mirrored:        %t\n", info.Mirrored)
	fmt.Printf("  combining class: %d\n", info.CombiningClass)
	if info.Uppercase != 0 {
		fmt.Printf("  uppercase:       %c (U+%04X)\n", info.Uppercase, info.Uppercase)
	}
	if info.Lowercase != 0 {
		fmt.Printf("  lowercase:       %c (U+%04X)\n", info.Lowercase, info.Lowercase)
	}
	if info.Titlecase != 0 {
		fmt.Printf("  titlecase:       %c (U+%04X)\n", info.Titlecase, info.Titlecase)
	}
	if info.HasDigitValue {
		fmt.Printf("  digit value:     %d\n", info.DigitValue)
	}
}
