// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/copy-engine/internal/brief"
	"github.com/pdiddy/copy-engine/internal/generate"
	"github.com/pdiddy/copy-engine/internal/render"
	"github.com/pdiddy/copy-engine/internal/validate"
	"github.com/pdiddy/copy-engine/pkg/types"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Generate email copy from a brief",
	Long: `Email generates subject-line variants, a preview line, an intro, body
paragraphs, and a sign-off for one email brief. Pass the brief as flags or
as a YAML/JSON brief file with --brief.

The call to action appears verbatim in the body.`,
	Example: `  copy-engine email --sender Ava --recipient Jordan --subject "Sprint recap" \
    --objective "align on decisions" --tone professional --cta "Approve by Thursday"`,
	RunE: runEmail,
}

func runEmail(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	payload, err := emailPayload(cmd)
	if err != nil {
		return err
	}
	req, err := validate.Email(payload)
	if err != nil {
		return err
	}

	res, err := generate.New(cfg.Social).Generate(types.Request{Kind: types.KindEmail, Email: &req})
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), res, cfg.Output.Format)
}

// emailPayload reads the brief file named by --brief, if any, and lets
// explicit flags override its fields.
func emailPayload(cmd *cobra.Command) (types.RawPayload, error) {
	var p types.RawPayload
	if path, _ := cmd.Flags().GetString("brief"); path != "" {
		env, err := brief.Load(path)
		if err != nil {
			return types.RawPayload{}, err
		}
		p = env.Payload
	}

	overrides := map[string]*string{
		"sender":    &p.SenderName,
		"recipient": &p.RecipientName,
		"subject":   &p.SubjectIdea,
		"objective": &p.Objective,
		"tone":      &p.Tone,
		"cta":       &p.CallToAction,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	return p, nil
}

func init() {
	emailCmd.Flags().String("brief", "", "YAML or JSON brief file")
	emailCmd.Flags().String("sender", "", "sender name (default: The team)")
	emailCmd.Flags().String("recipient", "", "recipient name (default: there)")
	emailCmd.Flags().String("subject", "", "subject idea")
	emailCmd.Flags().String("objective", "", "what the email should achieve")
	emailCmd.Flags().String("tone", "", "tone: professional, friendly, bold, playful, empathetic")
	emailCmd.Flags().String("cta", "", "call to action, used verbatim")

	rootCmd.AddCommand(emailCmd)
}
