package services

import (
	"HRAS/models"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSuggester struct {
	response string
	err      error
	calls    int
}

func (f *fakeSuggester) Suggest(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

type fakeAIStore struct {
	usage    map[string]int
	messages []*models.AIChatMessage
}

func newFakeAIStore() *fakeAIStore {
	return &fakeAIStore{usage: map[string]int{}}
}

func (f *fakeAIStore) SaveChatMessage(ctx context.Context, message *models.AIChatMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeAIStore) RecentHistory(ctx context.Context, conversationID string, n int) ([]models.AIChatMessage, error) {
	return nil, nil
}

func (f *fakeAIStore) IncrementUsage(ctx context.Context, feature string) error {
	f.usage[feature]++
	return nil
}

func (f *fakeAIStore) GetUsage(ctx context.Context) ([]models.AIUsage, error) {
	return nil, nil
}

func TestFallbackPriority(t *testing.T) {
	tests := []struct {
		name     string
		symptoms string
		expected string
	}{
		{name: "chest pain is critical", symptoms: "sudden chest pain radiating to the arm", expected: models.PriorityCritical},
		{name: "difficulty breathing is critical", symptoms: "Difficulty Breathing since morning", expected: models.PriorityCritical},
		{name: "severe pain is critical", symptoms: "severe pain in abdomen", expected: models.PriorityCritical},
		{name: "unconscious is critical", symptoms: "found unconscious at home", expected: models.PriorityCritical},
		{name: "fever is high", symptoms: "persistent fever and chills", expected: models.PriorityHigh},
		{name: "vomiting is high", symptoms: "vomiting since last night", expected: models.PriorityHigh},
		{name: "infection is high", symptoms: "wound infection on left leg", expected: models.PriorityHigh},
		{name: "cough is medium", symptoms: "dry cough for a week", expected: models.PriorityMedium},
		{name: "headache is medium", symptoms: "mild headache", expected: models.PriorityMedium},
		{name: "unmatched defaults to low", symptoms: "sprained ankle", expected: models.PriorityLow},
		{name: "critical outranks high", symptoms: "fever and difficulty breathing", expected: models.PriorityCritical},
		{name: "case insensitive", symptoms: "CHEST PAIN", expected: models.PriorityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FallbackPriority(tt.symptoms))
		})
	}
}

func TestParseSuggestedPriority(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "names critical", text: "This presentation is Critical and needs immediate attention.", expected: models.PriorityCritical},
		{name: "names high", text: "Suggested priority: High. Monitor closely.", expected: models.PriorityHigh},
		{name: "names medium", text: "A medium priority seems appropriate.", expected: models.PriorityMedium},
		{name: "most urgent level wins", text: "Between medium and critical, lean critical.", expected: models.PriorityCritical},
		{name: "no level defaults to low", text: "Insufficient information.", expected: models.PriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSuggestedPriority(tt.text))
		})
	}
}

func TestTriageWithoutBackendUsesFallback(t *testing.T) {
	svc := NewAIService(nil, nil)
	assert.False(t, svc.Enabled())

	result, err := svc.Triage(context.Background(), "high fever and chills")
	require.NoError(t, err)
	assert.False(t, result.UsedAI)
	assert.Equal(t, models.PriorityHigh, result.Priority)
	assert.True(t, strings.Contains(result.Suggestion, AIUnavailableMessage))
	assert.Empty(t, result.Response, "no backend reply exists on the fallback path")
}

func TestTriageWithBackendReturnsFullResponse(t *testing.T) {
	suggester := &fakeSuggester{response: "Suggested priority: High. Monitor vitals hourly."}
	store := newFakeAIStore()
	svc := NewAIService(suggester, store)

	result, err := svc.Triage(context.Background(), "persistent fever and chills")
	require.NoError(t, err)
	assert.True(t, result.UsedAI)
	assert.Equal(t, models.PriorityHigh, result.Priority)
	assert.Equal(t, suggester.response, result.Suggestion)
	assert.Equal(t, suggester.response, result.Response)
	assert.Equal(t, 1, store.usage[models.AIFeatureTriage])
}

func TestChatStoresExchangeAndCountsUsage(t *testing.T) {
	suggester := &fakeSuggester{response: "Escalate to the on-call physician."}
	store := newFakeAIStore()
	svc := NewAIService(suggester, store)

	exchange, err := svc.Chat(context.Background(), 7, "conv-9", "when do we escalate suspected sepsis?")
	require.NoError(t, err)
	require.Len(t, store.messages, 1)
	assert.Equal(t, exchange, store.messages[0])
	assert.Equal(t, "Escalate to the on-call physician.", exchange.Response)
	assert.Equal(t, int64(7), exchange.UserID)
	assert.Equal(t, "conv-9", exchange.ConversationID)
	assert.Equal(t, 1, store.usage[models.AIFeatureChat])
}

func TestTriageDegradesWhenBackendFails(t *testing.T) {
	suggester := &fakeSuggester{err: errors.New("upstream timeout")}
	svc := NewAIService(suggester, nil)

	result, err := svc.Triage(context.Background(), "patient is unconscious")
	require.NoError(t, err)
	assert.Equal(t, 1, suggester.calls)
	assert.False(t, result.UsedAI)
	assert.Equal(t, models.PriorityCritical, result.Priority)
}

func TestTriageRejectsEmptySymptoms(t *testing.T) {
	suggester := &fakeSuggester{response: "Low"}
	svc := NewAIService(suggester, nil)

	_, err := svc.Triage(context.Background(), "   ")
	assert.Error(t, err)
	assert.Equal(t, 0, suggester.calls, "backend must not be called for empty symptoms")
}

func TestChatRequiresBackend(t *testing.T) {
	svc := NewAIService(nil, nil)
	_, err := svc.Chat(context.Background(), 1, "conv-1", "what is the sepsis protocol?")
	assert.Error(t, err)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	suggester := &fakeSuggester{response: "hello"}
	svc := NewAIService(suggester, nil)
	_, err := svc.Chat(context.Background(), 1, "conv-1", "  ")
	assert.Error(t, err)
	assert.Equal(t, 0, suggester.calls)
}
