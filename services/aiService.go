package services

import (
	"HRAS/logging"
	"HRAS/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// AIUnavailableMessage is returned to clients whenever the AI backend cannot
// be reached and the keyword fallback decides the priority instead.
const AIUnavailableMessage = "AI feature temporarily unavailable - using rule-based priority suggestion."

const triagePrompt = "You are a hospital triage assistant. Based on the symptoms below, suggest a " +
	"triage priority of exactly one of: Low, Medium, High, Critical. Give a one-paragraph " +
	"rationale. This is advisory only and must be reviewed by clinical staff.\n\nSymptoms: %s"

const chatPrompt = "You are a knowledge assistant for hospital staff. Answer concisely and " +
	"remind the user that clinical decisions require professional judgment.\n\n%sUser: %s"

// Suggester produces a completion for a prompt. The Gemini client implements
// it in production; tests substitute a fake.
type Suggester interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Google Generative Language REST API.
type GeminiClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		endpoint:   "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) Suggest(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode AI request")
	}

	url := fmt.Sprintf("%s?key=%s", c.endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build AI request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "AI request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errors.Errorf("AI request returned status %d: %s", resp.StatusCode, string(data))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode AI response")
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("AI response contained no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// FallbackPriority applies the keyword rules used when the AI backend is
// unavailable. Matching is case-insensitive; the most urgent matching rule
// wins, and unmatched symptoms default to Low.
func FallbackPriority(symptoms string) string {
	s := strings.ToLower(symptoms)
	for _, kw := range []string{"chest pain", "difficulty breathing", "severe pain", "unconscious"} {
		if strings.Contains(s, kw) {
			return models.PriorityCritical
		}
	}
	for _, kw := range []string{"fever", "vomiting", "infection"} {
		if strings.Contains(s, kw) {
			return models.PriorityHigh
		}
	}
	for _, kw := range []string{"cough", "headache"} {
		if strings.Contains(s, kw) {
			return models.PriorityMedium
		}
	}
	return models.PriorityLow
}

// ParseSuggestedPriority extracts the priority level named in an AI response.
// The most urgent level mentioned wins; text naming no level maps to Low.
func ParseSuggestedPriority(text string) string {
	s := strings.ToLower(text)
	for _, p := range []string{models.PriorityCritical, models.PriorityHigh, models.PriorityMedium} {
		if strings.Contains(s, strings.ToLower(p)) {
			return p
		}
	}
	return models.PriorityLow
}

// TriageResult carries the advisory output of a triage call. Suggestion is
// the text shown to staff and stored on the patient; Response is the backend
// reply verbatim, empty when the keyword fallback answered; Priority is the
// parsed level; UsedAI records which path produced it.
type TriageResult struct {
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
	Response   string `json:"full_response"`
	UsedAI     bool   `json:"used_ai"`
}

// AIStore persists chat exchanges and usage counters.
// *repositories.AIRepository implements it in production; tests substitute a
// fake.
type AIStore interface {
	SaveChatMessage(ctx context.Context, message *models.AIChatMessage) error
	RecentHistory(ctx context.Context, conversationID string, n int) ([]models.AIChatMessage, error)
	IncrementUsage(ctx context.Context, feature string) error
	GetUsage(ctx context.Context) ([]models.AIUsage, error)
}

type AIService struct {
	suggester Suggester
	repo      AIStore
}

// NewAIService wires the service. A nil suggester disables the AI backend and
// every triage call takes the keyword fallback path.
func NewAIService(suggester Suggester, repo AIStore) *AIService {
	return &AIService{suggester: suggester, repo: repo}
}

func (s *AIService) Enabled() bool {
	return s.suggester != nil
}

// Triage produces an advisory priority suggestion for the given symptoms. It
// never fails outright: any AI error degrades to the keyword rules.
func (s *AIService) Triage(ctx context.Context, symptoms string) (*TriageResult, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, errors.New("symptoms are required")
	}

	if s.suggester != nil {
		text, err := s.suggester.Suggest(ctx, fmt.Sprintf(triagePrompt, symptoms))
		if err == nil {
			if err := s.repo.IncrementUsage(ctx, models.AIFeatureTriage); err != nil {
				logging.Log.Warnw("failed to record AI usage", "feature", models.AIFeatureTriage, "error", err)
			}
			return &TriageResult{
				Suggestion: text,
				Priority:   ParseSuggestedPriority(text),
				Response:   text,
				UsedAI:     true,
			}, nil
		}
		logging.Log.Warnw("AI triage failed, using keyword fallback", "error", err)
	}

	priority := FallbackPriority(symptoms)
	return &TriageResult{
		Suggestion: fmt.Sprintf("%s Suggested priority: %s.", AIUnavailableMessage, priority),
		Priority:   priority,
		UsedAI:     false,
	}, nil
}

// Chat answers a staff question, replaying the last exchanges of the
// conversation as context, and stores the new exchange.
func (s *AIService) Chat(ctx context.Context, userID int64, conversationID, message string) (*models.AIChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errors.New("message is required")
	}
	if s.suggester == nil {
		return nil, errors.New("AI chat is not configured")
	}

	history, err := s.repo.RecentHistory(ctx, conversationID, 10)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	for _, h := range history {
		sb.WriteString("User: ")
		sb.WriteString(h.Message)
		sb.WriteString("\nAssistant: ")
		sb.WriteString(h.Response)
		sb.WriteString("\n")
	}

	response, err := s.suggester.Suggest(ctx, fmt.Sprintf(chatPrompt, sb.String(), message))
	if err != nil {
		return nil, errors.Wrap(err, "AI chat failed")
	}

	exchange := &models.AIChatMessage{
		ConversationID: conversationID,
		Message:        message,
		Response:       response,
		UserID:         userID,
	}
	if err := s.repo.SaveChatMessage(ctx, exchange); err != nil {
		return nil, err
	}
	if err := s.repo.IncrementUsage(ctx, models.AIFeatureChat); err != nil {
		logging.Log.Warnw("failed to record AI usage", "feature", models.AIFeatureChat, "error", err)
	}
	return exchange, nil
}

// Usage reports the per-feature call counters.
func (s *AIService) Usage(ctx context.Context) ([]models.AIUsage, error) {
	return s.repo.GetUsage(ctx)
}
