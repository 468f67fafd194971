// Package planfmt reads and writes plan files: plain TOML with empty
// collections omitted. Intent trackers accept both a single string and a
// list of strings on the way in.
package planfmt

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/faffage/faff/internal/domain"
)

type planSchema struct {
	Source     string            `toml:"source"`
	ValidFrom  string            `toml:"valid_from"`
	ValidUntil string            `toml:"valid_until,omitempty"`
	Roles      []string          `toml:"roles,omitempty"`
	Actions    []string          `toml:"actions,omitempty"`
	Objectives []string          `toml:"objectives,omitempty"`
	Subjects   []string          `toml:"subjects,omitempty"`
	Trackers   map[string]string `toml:"trackers,omitempty"`
	Intents    []intentSchema    `toml:"intents,omitempty"`
}

type intentSchema struct {
	Alias     string `toml:"alias,omitempty"`
	Role      string `toml:"role,omitempty"`
	Objective string `toml:"objective,omitempty"`
	Action    string `toml:"action,omitempty"`
	Subject   string `toml:"subject,omitempty"`
	Trackers  any    `toml:"trackers,omitempty"`
}

func Encode(plan domain.Plan) (string, error) {
	schema := planSchema{
		Source:     plan.Source,
		ValidFrom:  plan.ValidFrom.String(),
		Roles:      plan.Roles,
		Actions:    plan.Actions,
		Objectives: plan.Objectives,
		Subjects:   plan.Subjects,
		Trackers:   plan.Trackers,
	}
	if !plan.ValidUntil.IsZero() {
		schema.ValidUntil = plan.ValidUntil.String()
	}
	for _, intent := range plan.Intents {
		schema.Intents = append(schema.Intents, toIntentSchema(intent))
	}

	data, err := toml.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("encode plan %q: %w", plan.Source, err)
	}
	return string(data), nil
}

func Decode(text string) (domain.Plan, error) {
	var schema planSchema
	if err := toml.Unmarshal([]byte(text), &schema); err != nil {
		return domain.Plan{}, err
	}

	if schema.Source == "" {
		return domain.Plan{}, fmt.Errorf("missing %q field", "source")
	}
	validFrom, err := domain.ParseDate(schema.ValidFrom)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("invalid valid_from: %w", err)
	}

	var validUntil domain.Date
	if schema.ValidUntil != "" {
		validUntil, err = domain.ParseDate(schema.ValidUntil)
		if err != nil {
			return domain.Plan{}, fmt.Errorf("invalid valid_until: %w", err)
		}
	}

	intents := make([]domain.Intent, 0, len(schema.Intents))
	for _, intent := range schema.Intents {
		intents = append(intents, fromIntentSchema(intent))
	}

	return domain.Plan{
		Source:     schema.Source,
		ValidFrom:  validFrom,
		ValidUntil: validUntil,
		Roles:      schema.Roles,
		Actions:    schema.Actions,
		Objectives: schema.Objectives,
		Subjects:   schema.Subjects,
		Trackers:   schema.Trackers,
		Intents:    intents,
	}, nil
}

func toIntentSchema(intent domain.Intent) intentSchema {
	schema := intentSchema{
		Alias:     intent.Alias,
		Role:      intent.Role,
		Objective: intent.Objective,
		Action:    intent.Action,
		Subject:   intent.Subject,
	}
	if len(intent.Trackers) > 0 {
		schema.Trackers = intent.Trackers
	}
	return schema
}

func fromIntentSchema(schema intentSchema) domain.Intent {
	var trackers []string
	switch v := schema.Trackers.(type) {
	case string:
		trackers = []string{v}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				trackers = append(trackers, s)
			}
		}
	case []string:
		trackers = v
	}

	return domain.NewIntent(schema.Alias, schema.Role, schema.Objective, schema.Action, schema.Subject, trackers)
}
