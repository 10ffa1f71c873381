package catalog

import (
	"fmt"
	"strconv"
)

// Well-known field names.
const (
	FieldWho    = "who"
	FieldResult = "result"
	FieldWhen   = "when"
	FieldHow    = "how"
)

const (
	TopicSlots    = 5
	QuestionSlots = 25
)

// Legacy submission-store field IDs, as assigned by the original form
// system. Overridable via the YAML catalog override file.
var defaultLegacyFieldIDs = map[string]int64{
	FieldResult: 10297,
	FieldWhen:   10387,
	FieldHow:    10298,
}

func init() {
	for n := 1; n <= TopicSlots; n++ {
		defaultLegacyFieldIDs[TopicFieldName(n)] = int64(8497 + n)
	}
	for n := 1; n <= QuestionSlots; n++ {
		defaultLegacyFieldIDs[QuestionFieldName(n)] = int64(10369 + n)
	}
}

func TopicFieldName(n int) string    { return fmt.Sprintf("topic_%d", n) }
func QuestionFieldName(n int) string { return fmt.Sprintf("question_%d", n) }

// AttributeKey is the attribute-store meta key for a field. The hook
// components carry a "hook_" prefix, topic and question slots use their
// field name directly.
func AttributeKey(name string) string {
	switch name {
	case FieldWho, FieldResult, FieldWhen, FieldHow:
		return "hook_" + name
	}
	return name
}

func legacyRef(name string, ids map[string]int64) StoreRef {
	return StoreRef{Store: StoreSubmission, Key: strconv.FormatInt(ids[name], 10)}
}

func attributeRef(name string) StoreRef {
	return StoreRef{Store: StoreAttribute, Key: AttributeKey(name)}
}

// Default builds the production catalog. overrides may remap legacy field
// IDs (nil means ship defaults).
//
// Precedence encodes two historical facts rather than a uniform policy:
// the legacy value for "who" was free-text instead of the structured
// audience list, so the legacy store is excluded for it entirely, and the
// newer attribute store never grew result/when/how keys, so those read
// from the legacy store alone.
func Default(overrides *Override) (*Catalog, error) {
	ids := make(map[string]int64, len(defaultLegacyFieldIDs))
	for k, v := range defaultLegacyFieldIDs {
		ids[k] = v
	}
	if overrides != nil {
		for k, v := range overrides.LegacyFieldIDs {
			if _, known := ids[k]; !known {
				return nil, fmt.Errorf("catalog override: unknown field %q", k)
			}
			ids[k] = v
		}
	}

	componentConstraints := Constraints{MaxLen: 200}

	defs := []FieldDefinition{
		{
			Name:        FieldWho,
			Group:       GroupPositioning,
			Stores:      []StoreRef{attributeRef(FieldWho)},
			Constraints: componentConstraints,
			Poisoned:    []string{"your audience"},
		},
		{
			Name:        FieldResult,
			Group:       GroupPositioning,
			Stores:      []StoreRef{legacyRef(FieldResult, ids)},
			Constraints: componentConstraints,
			Poisoned:    []string{"achieve their goals"},
		},
		{
			Name:        FieldWhen,
			Group:       GroupPositioning,
			Stores:      []StoreRef{legacyRef(FieldWhen, ids)},
			Constraints: componentConstraints,
			Poisoned:    []string{"they need help"},
		},
		{
			Name:        FieldHow,
			Group:       GroupPositioning,
			Stores:      []StoreRef{legacyRef(FieldHow, ids)},
			Constraints: componentConstraints,
			Poisoned:    []string{"through your method"},
		},
	}

	positioningFields := []string{FieldWho, FieldResult, FieldWhen, FieldHow}

	var topicFields []string
	for n := 1; n <= TopicSlots; n++ {
		name := TopicFieldName(n)
		defs = append(defs, FieldDefinition{
			Name:        name,
			Group:       GroupTopic,
			Stores:      []StoreRef{attributeRef(name), legacyRef(name, ids)},
			Constraints: Constraints{MaxLen: 150},
			Poisoned:    []string{"topic placeholder", "interview topic"},
		})
		topicFields = append(topicFields, name)
	}

	var questionFields []string
	for n := 1; n <= QuestionSlots; n++ {
		name := QuestionFieldName(n)
		defs = append(defs, FieldDefinition{
			Name:        name,
			Group:       GroupQuestion,
			Stores:      []StoreRef{attributeRef(name), legacyRef(name, ids)},
			Constraints: Constraints{MaxLen: 300},
		})
		questionFields = append(questionFields, name)
	}

	groups := []GroupSpec{
		{Group: GroupPositioning, Fields: positioningFields},
		{Group: GroupTopic, Fields: topicFields},
		{Group: GroupQuestion, Fields: questionFields, MinFilled: 1},
	}

	return New(defs, groups)
}
