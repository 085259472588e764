package models

// Tone hints how a callout should be highlighted.
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
)

type Callout struct {
	Title  string   `json:"title"`
	Tone   Tone     `json:"tone"`
	Points []string `json:"points"`
}

type InsightSection struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Bullets []string `json:"bullets,omitempty"`
	Callout *Callout `json:"callout,omitempty"`
}

type ActionItem struct {
	Priority       string `json:"priority"`
	Action         string `json:"action"`
	ExpectedImpact string `json:"expected_impact"`
}

// Insights is static business commentary. Nothing in it is computed.
type Insights struct {
	Title      string           `json:"title"`
	Author     string           `json:"author"`
	Sections   []InsightSection `json:"sections"`
	Issues     []string         `json:"issues"`
	ActionPlan []ActionItem     `json:"action_plan"`
	Summary    InsightSection   `json:"summary"`
}
