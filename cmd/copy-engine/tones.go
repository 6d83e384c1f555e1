// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/copy-engine/internal/social"
	"github.com/pdiddy/copy-engine/internal/tone"
)

var tonesCmd = &cobra.Command{
	Use:   "tones",
	Short: "List the supported tones",
	RunE: func(cmd *cobra.Command, args []string) error {
		banks := tone.All()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			type entry struct {
				ID     string `json:"id"`
				Label  string `json:"label"`
				Helper string `json:"helper"`
			}
			out := make([]entry, len(banks))
			for i, b := range banks {
				out[i] = entry{ID: string(b.Tone), Label: b.Label, Helper: b.Helper}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TONE\tLABEL\tUSE FOR")
		for _, b := range banks {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Tone, b.Label, b.Helper)
		}
		return tw.Flush()
	},
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the platforms with dedicated templates",
	Long: `Platforms lists the platforms the social generator has dedicated templates
for. Any other identifier is accepted and gets generic copy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		platforms := social.Platforms()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(platforms)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tLABEL\tLINKS\tHASHTAGS\tALIASES")
		for _, p := range platforms {
			links := "in bio"
			if p.LinksInline {
				links = "inline"
			}
			aliases := "-"
			if len(p.Aliases) > 0 {
				aliases = fmt.Sprint(p.Aliases)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Label, links, p.MaxHashtags, aliases)
		}
		return tw.Flush()
	},
}

func init() {
	tonesCmd.Flags().Bool("json", false, "output as JSON")
	platformsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(tonesCmd)
	rootCmd.AddCommand(platformsCmd)
}
