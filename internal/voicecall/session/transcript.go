package session

import (
	"strings"
)

// Utterance roles.
const (
	RoleCaller = "caller"
	RoleAgent  = "agent"
)

// Lead field names.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldBusinessType = "businessType"
)

// Utterance is one completed line of speech.
type Utterance struct {
	Role string
	Text string
}

// ExtractRule reads caller text and may fill lead fields. A rule must only
// set a field that is currently unset, so extraction is first-write-wins
// across the call.
type ExtractRule func(text string, fields map[string]string)

// Accumulator buffers the transcript and lead fields for one call. It is not
// safe for concurrent use; the owning session serializes access.
type Accumulator struct {
	utterances []Utterance
	fields     map[string]string
	rules      []ExtractRule
}

// NewAccumulator creates an accumulator with the given extraction rules,
// defaulting to the email rule when none are provided.
func NewAccumulator(rules ...ExtractRule) *Accumulator {
	if len(rules) == 0 {
		rules = []ExtractRule{ExtractEmailRule}
	}
	return &Accumulator{
		fields: make(map[string]string),
		rules:  rules,
	}
}

// AppendUtterance records a completed utterance in call order.
func (a *Accumulator) AppendUtterance(role, text string) {
	a.utterances = append(a.utterances, Utterance{Role: role, Text: text})
}

// ExtractFields runs every rule over the text. Extraction is best effort and
// never fails; a rule that matches nothing is a no-op.
func (a *Accumulator) ExtractFields(text string) {
	for _, rule := range a.rules {
		rule(text, a.fields)
	}
}

// RenderTranscript joins the transcript as "<role>: <text>" lines in append
// order.
func (a *Accumulator) RenderTranscript() string {
	lines := make([]string, 0, len(a.utterances))
	for _, u := range a.utterances {
		lines = append(lines, u.Role+": "+u.Text)
	}
	return strings.Join(lines, "\n")
}

// Fields returns a copy of the accumulated lead fields.
func (a *Accumulator) Fields() map[string]string {
	out := make(map[string]string, len(a.fields))
	for k, v := range a.fields {
		out[k] = v
	}
	return out
}

// Utterances returns a copy of the transcript.
func (a *Accumulator) Utterances() []Utterance {
	out := make([]Utterance, len(a.utterances))
	copy(out, a.utterances)
	return out
}

// ExtractEmailRule stores the first token containing '@' as the email field,
// with trailing punctuation stripped.
func ExtractEmailRule(text string, fields map[string]string) {
	if fields[FieldEmail] != "" || !strings.Contains(text, "@") {
		return
	}
	for _, word := range strings.Fields(text) {
		if strings.Contains(word, "@") {
			fields[FieldEmail] = strings.TrimRight(word, ".,!?;")
			return
		}
	}
}
