// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/copy-engine/internal/brief"
	"github.com/pdiddy/copy-engine/internal/generate"
	"github.com/pdiddy/copy-engine/internal/render"
	"github.com/pdiddy/copy-engine/internal/social"
	"github.com/pdiddy/copy-engine/internal/validate"
	"github.com/pdiddy/copy-engine/pkg/types"
)

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Generate a multi-platform social plan from a brief",
	Long: `Social generates a campaign headline, an angle summary, one breakdown per
platform in the order given, and a moodboard. Pass the brief as flags or as a
YAML/JSON brief file with --brief.

Unrecognized platforms get generic copy instead of an error. Run
"copy-engine platforms" for the platforms with dedicated templates.`,
	Example: `  copy-engine social --campaign "Velocity Sprint" --message "ship faster" \
    --tone bold --audience founders --platform linkedin --platform tiktok --url https://x.io`,
	RunE: runSocial,
}

func runSocial(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	payload, err := socialPayload(cmd)
	if err != nil {
		return err
	}
	req, err := validate.Social(payload)
	if err != nil {
		return err
	}

	for _, pl := range req.Platforms {
		if !social.Known(pl) {
			fmt.Fprintf(cmd.ErrOrStderr(), "note: %q has no dedicated template; using generic copy\n", pl)
		}
	}

	res, err := generate.New(cfg.Social).Generate(types.Request{Kind: types.KindSocial, Social: &req})
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), res, cfg.Output.Format)
}

func socialPayload(cmd *cobra.Command) (types.RawPayload, error) {
	var p types.RawPayload
	if path, _ := cmd.Flags().GetString("brief"); path != "" {
		env, err := brief.Load(path)
		if err != nil {
			return types.RawPayload{}, err
		}
		p = env.Payload
	}

	overrides := map[string]*string{
		"campaign": &p.CampaignName,
		"message":  &p.KeyMessage,
		"tone":     &p.Tone,
		"audience": &p.TargetAudience,
		"url":      &p.URL,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	if cmd.Flags().Changed("platform") {
		p.Platforms, _ = cmd.Flags().GetStringSlice("platform")
	}
	return p, nil
}

func init() {
	socialCmd.Flags().String("brief", "", "YAML or JSON brief file")
	socialCmd.Flags().String("campaign", "", "campaign name")
	socialCmd.Flags().String("message", "", "key message")
	socialCmd.Flags().String("tone", "", "tone: professional, friendly, bold, playful, empathetic")
	socialCmd.Flags().String("audience", "", "target audience (default: your audience)")
	socialCmd.Flags().StringSlice("platform", nil, "platform identifier, repeatable, in output order")
	socialCmd.Flags().String("url", "", "campaign link (absolute http or https URL)")
	socialCmd.Flags().Int("moodboard-cap", 10, "maximum moodboard keywords (6-10)")
	viper.BindPFlag("social.moodboard_cap", socialCmd.Flags().Lookup("moodboard-cap"))

	rootCmd.AddCommand(socialCmd)
}
