package catalog

import (
	stderrors "errors"
	"testing"

	"github.com/meettonyg/guestify-backend/internal/pkg/errors"
)

func TestDefaultCatalogShape(t *testing.T) {
	cat, err := Default(nil)
	if err != nil {
		t.Fatalf("Default(nil): %v", err)
	}

	cases := []struct {
		group Group
		count int
	}{
		{group: GroupPositioning, count: 4},
		{group: GroupTopic, count: TopicSlots},
		{group: GroupQuestion, count: QuestionSlots},
	}
	for _, tc := range cases {
		spec, err := cat.GroupSpec(tc.group)
		if err != nil {
			t.Fatalf("GroupSpec(%q): %v", tc.group, err)
		}
		if len(spec.Fields) != tc.count {
			t.Fatalf("group %q has %d fields, want %d", tc.group, len(spec.Fields), tc.count)
		}
	}
}

func TestGetDefinitionUnknownField(t *testing.T) {
	cat, err := Default(nil)
	if err != nil {
		t.Fatalf("Default(nil): %v", err)
	}
	_, err = cat.GetDefinition("nope")
	if !stderrors.Is(err, errors.ErrFieldNotConfigured) {
		t.Fatalf("GetDefinition(nope) err=%v, want ErrFieldNotConfigured", err)
	}
}

func TestWhoExcludesLegacyStore(t *testing.T) {
	cat, err := Default(nil)
	if err != nil {
		t.Fatalf("Default(nil): %v", err)
	}
	who, err := cat.GetDefinition(FieldWho)
	if err != nil {
		t.Fatalf("GetDefinition(who): %v", err)
	}
	if len(who.Stores) != 1 || who.Stores[0].Store != StoreAttribute {
		t.Fatalf("who stores=%v, want attribute store only", who.Stores)
	}

	result, err := cat.GetDefinition(FieldResult)
	if err != nil {
		t.Fatalf("GetDefinition(result): %v", err)
	}
	if len(result.Stores) != 1 || result.Stores[0].Store != StoreSubmission {
		t.Fatalf("result stores=%v, want submission store only", result.Stores)
	}
}

func TestTopicFallsBackToLegacy(t *testing.T) {
	cat, err := Default(nil)
	if err != nil {
		t.Fatalf("Default(nil): %v", err)
	}
	topic, err := cat.GetDefinition(TopicFieldName(1))
	if err != nil {
		t.Fatalf("GetDefinition(topic_1): %v", err)
	}
	if len(topic.Stores) != 2 {
		t.Fatalf("topic_1 has %d stores, want 2", len(topic.Stores))
	}
	if topic.Stores[0].Store != StoreAttribute || topic.Stores[1].Store != StoreSubmission {
		t.Fatalf("topic_1 precedence=%v, want attribute then submission", topic.Stores)
	}
}

func TestIsPoisoned(t *testing.T) {
	def := FieldDefinition{
		Name:     FieldWho,
		Poisoned: []string{"your audience"},
	}
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "exact", value: "your audience", want: true},
		{name: "case_insensitive", value: "Your Audience", want: true},
		{name: "trimmed", value: "  your audience  ", want: true},
		{name: "substring_is_not_a_match", value: "I know your audience well", want: false},
		{name: "clean_value", value: "SaaS founders", want: false},
		{name: "empty_is_not_poisoned", value: "", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := def.IsPoisoned(tc.value)
			if got != tc.want {
				t.Fatalf("IsPoisoned(%q)=%v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestOverrideRemapsLegacyFieldID(t *testing.T) {
	cat, err := Default(&Override{LegacyFieldIDs: map[string]int64{FieldResult: 999}})
	if err != nil {
		t.Fatalf("Default(override): %v", err)
	}
	result, err := cat.GetDefinition(FieldResult)
	if err != nil {
		t.Fatalf("GetDefinition(result): %v", err)
	}
	if result.Stores[0].Key != "999" {
		t.Fatalf("result legacy key=%q, want 999", result.Stores[0].Key)
	}
}

func TestOverrideRejectsUnknownField(t *testing.T) {
	_, err := Default(&Override{LegacyFieldIDs: map[string]int64{"mystery": 1}})
	if err == nil {
		t.Fatal("Default accepted an override for an unknown field")
	}
}

func TestNewFailsFastOnMissingField(t *testing.T) {
	defs := []FieldDefinition{
		{Name: "present", Group: GroupTopic, Stores: []StoreRef{{Store: StoreAttribute, Key: "present"}}},
	}
	groups := []GroupSpec{
		{Group: GroupTopic, Fields: []string{"present", "absent"}},
	}
	_, err := New(defs, groups)
	if !stderrors.Is(err, errors.ErrFieldNotConfigured) {
		t.Fatalf("New err=%v, want ErrFieldNotConfigured", err)
	}
}
