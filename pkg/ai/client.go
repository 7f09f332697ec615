// Package ai calls the text-generation collaborator that produces the
// qualitative psychological overlay. It is decoupled from the core: one
// attempt per analysis, failures degrade to a tagged AIAnalysis marker and
// never invalidate the locally computed stats.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/eladmint/whatsapp-analyzer/pkg/logger"
	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

// DefaultBaseURL points at OpenRouter's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

const defaultModel = "anthropic/claude-2"

const systemPrompt = "You are an expert psychologist specializing in relationship dynamics, " +
	"personality analysis, and behavioral patterns. Provide detailed, professional analysis " +
	"with specific examples and clear insights."

const analysisInstructions = `As an expert in psychological analysis and behavioral patterns, provide a detailed psychological profile of the participants in this WhatsApp conversation. Focus on:

1. Core Personality Traits & Motivations
2. Communication Patterns
3. Emotional Processing & Coping
4. Relationship Dynamics
5. Behavioral Contrasts

Format the analysis as a psychological profile with clear sections and specific examples from the conversation. Include a "Final Synthesis" section that captures the core dynamic between participants.

Conversation:
`

// ErrMissingAPIKey is returned by New when no credential is configured.
var ErrMissingAPIKey = errors.New("ai: missing API key")

// Config configures the collaborator client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client is a narrow typed binding to the remote text-generation service.
type Client struct {
	api     openai.Client
	model   string
	timeout time.Duration
}

// New builds a client. A missing credential is a construction error so that
// startup fails fast instead of deferring the problem to the first call.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		api:     openai.NewClient(option.WithAPIKey(cfg.APIKey), option.WithBaseURL(baseURL)),
		model:   model,
		timeout: timeout,
	}, nil
}

// Unavailable returns the failure marker attached to stats when no client is
// configured.
func Unavailable(reason string) models.AIAnalysis {
	return models.AIAnalysis{Content: nil, Success: false, Error: reason}
}

// AnalyzeConversation renders the transcript as "sender: content" lines,
// sends it with the fixed instructional prompt and returns a typed result.
// One attempt only; every failure class maps to a distinct message.
func (c *Client) AnalyzeConversation(ctx context.Context, msgs []models.Message) models.AIAnalysis {
	var b strings.Builder
	b.WriteString(analysisInstructions)
	for _, m := range msgs {
		b.WriteString(m.Sender)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteByte('\n')
	}

	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(cctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(b.String()),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(4000),
	})
	if err != nil {
		reason := classifyError(err)
		logger.Warn("ai_analysis_failed", "reason", reason)
		return Unavailable(reason)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		logger.Warn("ai_analysis_failed", "reason", "empty completion")
		return Unavailable("Invalid response format from AI service")
	}
	content := resp.Choices[0].Message.Content
	return models.AIAnalysis{Content: &content, Success: true}
}

// classifyError maps an upstream failure to one user-facing message per
// failure class: malformed credential, rate limit, upstream error, transport.
func classifyError(err error) string {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401, 403:
			return "AI service rejected the configured credential"
		case 429:
			return "AI service rate limit exceeded, try again later"
		default:
			return fmt.Sprintf("AI service request failed with status %d", apierr.StatusCode)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "AI analysis timed out"
	}
	return "could not reach the AI service"
}
