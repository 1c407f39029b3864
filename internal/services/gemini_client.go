package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/contentgen/backend/internal/models"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ContentGenerator turns a brief plus org and campaign context into the
// ten-field content set. Implementations make exactly one attempt; the
// caller decides whether to retry.
type ContentGenerator interface {
	Generate(ctx context.Context, brief string, orgContext *string, campaignContext string) (*models.FieldSet, error)
}

// fieldGuidance describes the tone and length expected per platform.
// It is embedded verbatim in the instruction; the model is trusted to
// honor it and nothing is re-validated locally.
var fieldGuidance = []struct {
	key, description string
}{
	{"linkedin_content", "Professional content for LinkedIn, business-focused and engaging for a professional audience, including relevant hashtags. Length should be 1 to 1.5 times the input content."},
	{"x_content", "Short, punchy content for X (formerly Twitter), under 280 characters, using emojis and relevant hashtags."},
	{"facebook_content", "Engaging and community-focused content for Facebook, suitable for discussion, including emojis and relevant hashtags."},
	{"instagram_content", "Visually-driven caption for an Instagram post, including relevant hashtags and emojis."},
	{"youtube_content", "A detailed description for a YouTube video."},
	{"quora_content", "An answer-style post for Quora, providing value and expertise on the topic. Length should be 1 to 1.5 times the input content."},
	{"reddit_content", "A post suitable for a relevant subreddit, written in a conversational and authentic tone. Length should be 1 to 1.5 times the input content."},
	{"blog_content", "A short-form blog post (2-3 paragraphs) that expands on the input content. Length should be 2 to 3 times the input content."},
	{"image_prompt", "A descriptive prompt for an AI image generator to create a relevant visual."},
	{"video_prompt", "A descriptive prompt for an AI video generator to create a short-form video."},
}

// GeminiClient is the production ContentGenerator backed by the Gemini
// API. A missing API key leaves the client nil; each Generate call then
// fails with a GenerationError instead of taking the process down.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration, log *zap.Logger) (*GeminiClient, error) {
	c := &GeminiClient{model: model, timeout: timeout, log: log}
	if apiKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (g *GeminiClient) Generate(ctx context.Context, brief string, orgContext *string, campaignContext string) (*models.FieldSet, error) {
	if g.client == nil {
		return nil, apperrors.Generation(errors.New("GEMINI_API_KEY is not configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := buildPrompt(brief, orgContext, campaignContext)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.log.Error("gemini request failed", zap.String("model", g.model), zap.Error(err))
		return nil, apperrors.Generation(err)
	}

	fs, err := parseFieldSet(resp.Text())
	if err != nil {
		g.log.Error("gemini response unparsable", zap.String("model", g.model), zap.Error(err))
		return nil, apperrors.Generation(err)
	}
	return fs, nil
}

func buildPrompt(brief string, orgContext *string, campaignContext string) string {
	var b strings.Builder
	b.WriteString("You are a world-class marketing and content creation expert.\n")
	b.WriteString("Your task is to understand the organization and campaign contexts and generate a cohesive set of social media and blog content.\n")
	b.WriteString("Use the input content and generate the other social media content as specified in the JSON output structure below.\n")
	b.WriteString("Provide the output as a single, valid JSON object.\n\n")

	b.WriteString("ORG_CONTEXT:\n------------\n")
	if orgContext != nil && *orgContext != "" {
		b.WriteString(*orgContext)
	} else {
		b.WriteString("(none provided)")
	}
	b.WriteString("\n\nCAMPAIGN_CONTEXT:\n-----------------\n")
	b.WriteString(campaignContext)
	b.WriteString("\n\nINPUT_CONTENT:\n")
	b.WriteString(brief)

	b.WriteString("\n\nJSON_OUTPUT_STRUCTURE:\n{\n")
	for idx, f := range fieldGuidance {
		desc, _ := json.Marshal(f.description)
		fmt.Fprintf(&b, "    %q: %s", f.key, desc)
		if idx < len(fieldGuidance)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
	b.WriteString("Ensure the output is ONLY the JSON object. Do not include any explanatory text, comments, or markdown formatting before or after the JSON object.\n")
	return b.String()
}

// parseFieldSet decodes the raw model output into a FieldSet. The model
// is told not to wrap the object, but fences still show up, so the text
// is unwrapped structurally rather than by slicing fixed offsets.
func parseFieldSet(raw string) (*models.FieldSet, error) {
	jsonStr := extractJSONObject(raw)
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON object in response (%d bytes)", len(raw))
	}

	var fs models.FieldSet
	if err := json.Unmarshal([]byte(jsonStr), &fs); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &fs, nil
}

// extractJSONObject returns the first balanced {...} object in s, which
// skips any markdown fences or prose around it.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
