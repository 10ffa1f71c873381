package services

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"

	redisclient "github.com/meettonyg/guestify-backend/internal/clients/redis"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/clients/openai"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/repos"
	"github.com/meettonyg/guestify-backend/internal/types"
)

type HookSuggestion struct {
	Who    string `json:"who"`
	Result string `json:"result"`
	When   string `json:"when"`
	How    string `json:"how"`
}

type BiographyResult struct {
	Short  string `json:"short"`
	Medium string `json:"medium"`
	Long   string `json:"long"`
}

// GenerationService produces marketing copy suggestions from the resolved
// profile. Generated copy is returned to the caller, never written
// directly; persisting it goes through ContentService.Save so catalog
// constraints apply.
type GenerationService interface {
	GenerateTopics(ctx context.Context, recordID uuid.UUID) ([]string, error)
	GenerateQuestions(ctx context.Context, recordID uuid.UUID, topic string, count int) ([]string, error)
	GenerateBiography(ctx context.Context, recordID uuid.UUID, tone string) (*BiographyResult, error)
	GenerateAuthorityHook(ctx context.Context, recordID uuid.UUID) (*HookSuggestion, error)
}

type generationService struct {
	log     *logger.Logger
	ai      openai.Client
	content ContentService
	aiLogs  repos.AICallLogRepo
	notify  redisclient.Notifier
	sf      singleflight.Group
}

func NewGenerationService(
	log *logger.Logger,
	ai openai.Client,
	content ContentService,
	aiLogs repos.AICallLogRepo,
	notify redisclient.Notifier,
) GenerationService {
	if notify == nil {
		notify = redisclient.NoopNotifier{}
	}
	return &generationService{
		log:     log.With("service", "GenerationService"),
		ai:      ai,
		content: content,
		aiLogs:  aiLogs,
		notify:  notify,
	}
}

func mustJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// profileContext summarizes the resolved profile for the prompt. Empty
// components stay empty here too; the model is told to work with what
// exists rather than invent placeholder positioning.
func (gs *generationService) profileContext(ctx context.Context, recordID uuid.UUID) (string, error) {
	positioning, err := gs.content.Resolve(ctx, recordID, catalog.GroupPositioning)
	if err != nil {
		return "", err
	}
	composite, err := gs.content.Composite(ctx, recordID)
	if err != nil {
		return "", err
	}
	topics, err := gs.content.Resolve(ctx, recordID, catalog.GroupTopic)
	if err != nil {
		return "", err
	}
	var topicList []string
	for n := 1; n <= catalog.TopicSlots; n++ {
		if v := topics.Fields[catalog.TopicFieldName(n)].Value; v != "" {
			topicList = append(topicList, v)
		}
	}
	payload := map[string]any{
		"who":                   positioning.Fields[catalog.FieldWho].Value,
		"result":                positioning.Fields[catalog.FieldResult].Value,
		"when":                  positioning.Fields[catalog.FieldWhen].Value,
		"how":                   positioning.Fields[catalog.FieldHow].Value,
		"positioning_statement": composite,
		"existing_topics":       topicList,
	}
	return mustJSON(payload), nil
}

func (gs *generationService) generateJSON(ctx context.Context, recordID uuid.UUID, kind, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	if gs.ai == nil {
		return nil, fmt.Errorf("generation unavailable: no AI client configured")
	}

	// Concurrent requests share one upstream call only when they would
	// produce the same content. The distinguishing inputs (topic, count,
	// tone) all land in the user prompt, so its hash goes into the key.
	sum := fnv.New64a()
	sum.Write([]byte(user))
	key := fmt.Sprintf("%s:%s:%x", recordID, kind, sum.Sum64())
	v, err, _ := gs.sf.Do(key, func() (any, error) {
		start := time.Now()
		obj, genErr := gs.ai.GenerateJSON(ctx, system, user, schemaName, schema)
		gs.logCall(ctx, recordID, kind, user, obj, genErr, time.Since(start))

		status := "completed"
		if genErr != nil {
			status = "failed"
		}
		if pubErr := gs.notify.Publish(ctx, redisclient.GenerationEvent{
			RecordID: recordID,
			Kind:     kind,
			Status:   status,
			At:       time.Now().UTC(),
		}); pubErr != nil {
			gs.log.Warn("generation event publish failed", "kind", kind, "error", pubErr)
		}
		return obj, genErr
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

func (gs *generationService) logCall(ctx context.Context, recordID uuid.UUID, kind, prompt string, response map[string]any, callErr error, latency time.Duration) {
	entry := &types.AICallLog{
		RecordID:  &recordID,
		CallType:  kind,
		Model:     gs.ai.Model(),
		Prompt:    prompt,
		Success:   callErr == nil,
		LatencyMs: latency.Milliseconds(),
		Usage:     datatypes.JSON([]byte("{}")),
	}
	if response != nil {
		entry.Response = mustJSON(response)
	}
	if callErr != nil {
		entry.Error = callErr.Error()
	}
	if _, err := gs.aiLogs.Create(ctx, nil, []*types.AICallLog{entry}); err != nil {
		gs.log.Warn("ai call log write failed", "kind", kind, "error", err)
	}
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func stringField(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func (gs *generationService) GenerateTopics(ctx context.Context, recordID uuid.UUID) ([]string, error) {
	profile, err := gs.profileContext(ctx, recordID)
	if err != nil {
		return nil, err
	}

	system := "You are a podcast booking strategist. You craft interview topics that make a guest compelling to show hosts. Respond only with the requested JSON."
	user := fmt.Sprintf(
		"Guest profile:\n%s\n\nSuggest %d interview topics this guest could speak about with authority. Each topic is one phrase under 100 characters, no numbering.",
		profile, catalog.TopicSlots,
	)
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topics": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": catalog.TopicSlots,
				"maxItems": catalog.TopicSlots,
			},
		},
		"required":             []string{"topics"},
		"additionalProperties": false,
	}

	obj, err := gs.generateJSON(ctx, recordID, "topics", system, user, "interview_topics", schema)
	if err != nil {
		return nil, err
	}
	topics := stringSlice(obj["topics"])
	if len(topics) == 0 {
		return nil, fmt.Errorf("model returned no topics")
	}
	return topics, nil
}

func (gs *generationService) GenerateQuestions(ctx context.Context, recordID uuid.UUID, topic string, count int) ([]string, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic required")
	}
	if count <= 0 {
		count = 5
	}
	profile, err := gs.profileContext(ctx, recordID)
	if err != nil {
		return nil, err
	}

	system := "You are a podcast producer preparing interview questions. Questions must be open-ended and specific to the guest. Respond only with the requested JSON."
	user := fmt.Sprintf(
		"Guest profile:\n%s\n\nWrite %d interview questions about the topic %q. One sentence each, no numbering.",
		profile, count, topic,
	)
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	}

	obj, err := gs.generateJSON(ctx, recordID, "questions", system, user, "interview_questions", schema)
	if err != nil {
		return nil, err
	}
	questions := stringSlice(obj["questions"])
	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

func (gs *generationService) GenerateBiography(ctx context.Context, recordID uuid.UUID, tone string) (*BiographyResult, error) {
	if strings.TrimSpace(tone) == "" {
		tone = "professional"
	}
	profile, err := gs.profileContext(ctx, recordID)
	if err != nil {
		return nil, err
	}

	system := "You write guest biographies for podcast media kits. Third person, no invented credentials. Respond only with the requested JSON."
	user := fmt.Sprintf(
		"Guest profile:\n%s\n\nWrite three %s biographies: short (about 50 words), medium (about 120 words), long (about 300 words).",
		profile, tone,
	)
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"short":  map[string]any{"type": "string"},
			"medium": map[string]any{"type": "string"},
			"long":   map[string]any{"type": "string"},
		},
		"required":             []string{"short", "medium", "long"},
		"additionalProperties": false,
	}

	obj, err := gs.generateJSON(ctx, recordID, "biography", system, user, "guest_biography", schema)
	if err != nil {
		return nil, err
	}
	bio := &BiographyResult{
		Short:  stringField(obj, "short"),
		Medium: stringField(obj, "medium"),
		Long:   stringField(obj, "long"),
	}
	if bio.Short == "" && bio.Medium == "" && bio.Long == "" {
		return nil, fmt.Errorf("model returned no biography")
	}
	return bio, nil
}

func (gs *generationService) GenerateAuthorityHook(ctx context.Context, recordID uuid.UUID) (*HookSuggestion, error) {
	profile, err := gs.profileContext(ctx, recordID)
	if err != nil {
		return nil, err
	}

	system := "You are a positioning coach. You write authority hook components that complete the sentence \"I help WHO RESULT when WHEN HOW.\" Respond only with the requested JSON."
	user := fmt.Sprintf(
		"Guest profile:\n%s\n\nSuggest the four components. WHO is a specific audience (comma-separated when more than one), RESULT a concrete outcome, WHEN a trigger moment, HOW the mechanism. Keep each under 100 characters.",
		profile,
	)
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"who":    map[string]any{"type": "string"},
			"result": map[string]any{"type": "string"},
			"when":   map[string]any{"type": "string"},
			"how":    map[string]any{"type": "string"},
		},
		"required":             []string{"who", "result", "when", "how"},
		"additionalProperties": false,
	}

	obj, err := gs.generateJSON(ctx, recordID, "authority_hook", system, user, "authority_hook", schema)
	if err != nil {
		return nil, err
	}
	hook := &HookSuggestion{
		Who:    stringField(obj, "who"),
		Result: stringField(obj, "result"),
		When:   stringField(obj, "when"),
		How:    stringField(obj, "how"),
	}
	if hook.Who == "" && hook.Result == "" && hook.When == "" && hook.How == "" {
		return nil, fmt.Errorf("model returned no hook components")
	}
	return hook, nil
}
