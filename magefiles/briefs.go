//go:build mage

package main

// sampleBriefs seeds briefs/ on Init, keyed by file name.
var sampleBriefs = map[string]string{
	"sprint-recap.yaml": `kind: email
payload:
  sender_name: Ava
  recipient_name: Jordan
  subject_idea: Sprint recap
  objective: align on decisions
  tone: professional
  call_to_action: Approve by Thursday
`,
	"velocity-sprint.yaml": `kind: social
payload:
  campaign_name: Velocity Sprint
  key_message: ship faster
  tone: bold
  target_audience: founders
  platforms:
    - linkedin
    - tiktok
  url: https://x.io
`,
}
