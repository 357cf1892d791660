// Command gennorm is the offline data builder described in spec.md §4.6:
// it reads UnicodeData-style source files, runs the gennorm pipeline, and
// writes the serialized properties and normalization images that uprops
// and unorm load at runtime.
package main

import (
	"fmt"
	"os"

	"github.com/icu4g/ucore/trie"
	"github.com/spf13/cobra"

	"github.com/icu4g/ucore/gennorm"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gennorm:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gennorm",
		Short: "Build properties and normalization data images from UnicodeData source files",
	}
	root.AddCommand(buildCmd())
	return root
}

func buildCmd() *cobra.Command {
	var (
		unicodeDataPath string
		exclusionsPath  string
		propsOut        string
		normOut         string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the full ingest -> closure -> validate -> emit pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, exclusions, err := loadInputs(unicodeDataPath, exclusionsPath)
			if err != nil {
				return err
			}
			fmt.Printf("parsed %d source records, %d composition exclusions\n", len(records), len(exclusions))

			result, err := gennorm.Build(records, exclusions)
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}

			propsImage, err := result.Properties.Serialize(trie.Width32)
			if err != nil {
				return fmt.Errorf("serializing properties: %w", err)
			}
			if err := os.WriteFile(propsOut, propsImage, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", propsOut, err)
			}
			fmt.Printf("wrote %s (%d bytes)\n", propsOut, len(propsImage))

			normImage, err := result.Normalization.Serialize(trie.Width32)
			if err != nil {
				return fmt.Errorf("serializing normalization: %w", err)
			}
			if err := os.WriteFile(normOut, normImage.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", normOut, err)
			}
			fmt.Printf("wrote %s (%d bytes)\n", normOut, len(normImage.Bytes()))

			fmt.Printf("canonical starter leaders: %d\n", len(result.Starters.Starters))
			return nil
		},
	}

	cmd.Flags().StringVar(&unicodeDataPath, "unicode-data", "", "path to a UnicodeData.txt-style source file (required)")
	cmd.Flags().StringVar(&exclusionsPath, "exclusions", "", "path to a CompositionExclusions.txt-style file (optional)")
	cmd.Flags().StringVar(&propsOut, "props-out", "uprops.dat", "output path for the serialized properties image")
	cmd.Flags().StringVar(&normOut, "norm-out", "unorm.dat", "output path for the serialized normalization image")
	cmd.MarkFlagRequired("unicode-data")

	return cmd
}

func loadInputs(unicodeDataPath, exclusionsPath string) ([]gennorm.SourceRecord, map[rune]bool, error) {
	f, err := os.Open(unicodeDataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", unicodeDataPath, err)
	}
	defer f.Close()

	records, parseErrs := gennorm.ParseUnicodeData(f)
	if parseErrs.HasErrors() {
		return nil, nil, fmt.Errorf("%s:\n%s", unicodeDataPath, parseErrs.Error())
	}

	exclusions := map[rune]bool{}
	if exclusionsPath != "" {
		ef, err := os.Open(exclusionsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", exclusionsPath, err)
		}
		defer ef.Close()
		exclusions, err = gennorm.ParseExclusions(ef)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", exclusionsPath, err)
		}
	}

	return records, exclusions, nil
}
