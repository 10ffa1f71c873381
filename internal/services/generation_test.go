package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/meettonyg/guestify-backend/internal/clients/redis"

	"github.com/meettonyg/guestify-backend/internal/types"
)

// stubAIClient echoes the user prompt back as the generated content and
// lets tests gate when in-flight calls return.
type stubAIClient struct {
	mu       sync.Mutex
	calls    int
	inflight chan string
	release  chan struct{}
}

func (s *stubAIClient) GenerateJSON(_ context.Context, _ string, user string, _ string, _ map[string]any) (map[string]any, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.inflight != nil {
		s.inflight <- user
	}
	if s.release != nil {
		<-s.release
	}
	return map[string]any{"questions": []any{user}}, nil
}

func (s *stubAIClient) GenerateText(_ context.Context, _ string, user string) (string, error) {
	return user, nil
}

func (s *stubAIClient) Model() string { return "stub-model" }

func (s *stubAIClient) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeAILogRepo struct {
	mu      sync.Mutex
	entries []*types.AICallLog
}

func (f *fakeAILogRepo) Create(_ context.Context, _ *gorm.DB, logs []*types.AICallLog) ([]*types.AICallLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, logs...)
	return logs, nil
}

func (f *fakeAILogRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func TestGenerateQuestionsConcurrentTopicsStaySeparate(t *testing.T) {
	record := &types.Record{ID: uuid.New()}
	content := newTestContentService(t, record)
	stub := &stubAIClient{
		inflight: make(chan string, 2),
		release:  make(chan struct{}),
	}
	aiLogs := &fakeAILogRepo{}
	svc := NewGenerationService(nopLogger(), stub, content, aiLogs, redisclient.NoopNotifier{})
	ctx := context.Background()

	topics := []string{"pricing experiments", "founder-led sales"}
	out := make([][]string, len(topics))
	errs := make([]error, len(topics))
	var wg sync.WaitGroup
	for i, topic := range topics {
		wg.Add(1)
		go func(i int, topic string) {
			defer wg.Done()
			out[i], errs[i] = svc.GenerateQuestions(ctx, record.ID, topic, 1)
		}(i, topic)

		// Each topic must reach the upstream client itself, even while the
		// other topic's call is still in flight.
		select {
		case <-stub.inflight:
		case <-time.After(2 * time.Second):
			t.Fatalf("call for topic %q never reached the client; deduplicated with a different topic", topic)
		}
	}
	close(stub.release)
	wg.Wait()

	for i, topic := range topics {
		if errs[i] != nil {
			t.Fatalf("GenerateQuestions(%q): %v", topic, errs[i])
		}
		if len(out[i]) != 1 || !strings.Contains(out[i][0], topic) {
			t.Fatalf("questions for %q do not mention it: %v", topic, out[i])
		}
	}
	if got := stub.callCount(); got != 2 {
		t.Fatalf("upstream calls=%d, want 2", got)
	}
	if got := aiLogs.count(); got != 2 {
		t.Fatalf("logged calls=%d, want 2", got)
	}
}

func TestGenerateQuestionsIdenticalRequestsShareOneCall(t *testing.T) {
	record := &types.Record{ID: uuid.New()}
	content := newTestContentService(t, record)
	stub := &stubAIClient{
		inflight: make(chan string, 2),
		release:  make(chan struct{}),
	}
	svc := NewGenerationService(nopLogger(), stub, content, &fakeAILogRepo{}, redisclient.NoopNotifier{})
	ctx := context.Background()

	out := make([][]string, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i], errs[i] = svc.GenerateQuestions(ctx, record.ID, "pricing experiments", 1)
		}(i)
		if i == 0 {
			select {
			case <-stub.inflight:
			case <-time.After(2 * time.Second):
				t.Fatal("first call never reached the client")
			}
		}
	}
	// Give the duplicate a moment to join the in-flight call.
	time.Sleep(100 * time.Millisecond)
	close(stub.release)
	wg.Wait()

	for i := 0; i < 2; i++ {
		if errs[i] != nil {
			t.Fatalf("GenerateQuestions #%d: %v", i, errs[i])
		}
	}
	if len(out[0]) != 1 || len(out[1]) != 1 || out[0][0] != out[1][0] {
		t.Fatalf("identical requests produced different results: %v vs %v", out[0], out[1])
	}
	if got := stub.callCount(); got != 1 {
		t.Fatalf("upstream calls=%d, want 1 shared call", got)
	}
}
