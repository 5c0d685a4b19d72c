package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	openai "github.com/sashabaranov/go-openai"
)

type ModerationAnalysis struct {
	Flagged    bool    `json:"flagged"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

type ModerationOutcome struct {
	Flagged  bool               `json:"flagged"`
	Analysis ModerationAnalysis `json:"analysis"`
	Action   *string            `json:"action,omitempty"`
}

type Moderator struct {
	Client *openai.Client
	Model  string
}

func NewModerator(apiKey, baseURL, model string) *Moderator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Moderator{Client: openai.NewClientWithConfig(cfg), Model: model}
}

const moderationPrompt = `You are a content moderator for an education platform.
Classify the submission and answer with a single JSON object:
{"flagged": bool, "category": "none|spam|harassment|hate|sexual|violence|misinformation", "confidence": 0..1, "reason": "short explanation"}`

// Classify sends the content to the model and decodes its verdict.
func (m *Moderator) Classify(ctx context.Context, title, content string) (ModerationAnalysis, error) {
	input := content
	if strings.TrimSpace(title) != "" {
		input = "Title: " + title + "\n\n" + content
	}
	resp, err := m.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.Model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: moderationPrompt},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
	})
	if err != nil {
		return ModerationAnalysis{}, WrapError(err, "moderation request failed")
	}
	if len(resp.Choices) == 0 {
		return ModerationAnalysis{}, ErrBadRequest("Moderation service returned no result")
	}
	analysis := ModerationAnalysis{}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &analysis); err != nil {
		return ModerationAnalysis{}, WrapError(err, "moderation response decode failed")
	}
	if analysis.Category == "" {
		analysis.Category = "none"
	}
	return analysis, nil
}

var moderatedTables = map[string]string{
	"article": "articles",
	"news":    "news",
	"course":  "courses",
}

// AutoModerate classifies the content, records the verdict and applies the
// resulting action to the content row. The two writes are sequential; if the
// status patch fails the verdict row still stands, which is the useful half.
func AutoModerate(ctx context.Context, db *sqlx.DB, m *Moderator, title, content, contentID, contentType string) (ModerationOutcome, error) {
	table, ok := moderatedTables[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return ModerationOutcome{}, ErrBadRequest("Unknown content type")
	}
	analysis, err := m.Classify(ctx, title, content)
	if err != nil {
		return ModerationOutcome{}, err
	}
	action := "approve"
	status := "PUBLISHED"
	if analysis.Flagged {
		action = "flag"
		status = "FLAGGED"
	}
	if err := recordModeration(db, &contentID, &contentType, analysis, &action); err != nil {
		return ModerationOutcome{}, err
	}
	if _, err := db.Exec(`UPDATE `+table+` SET status = $2, updated_at = $3 WHERE id = $1`,
		contentID, status, time.Now().UTC()); err != nil {
		return ModerationOutcome{}, err
	}
	return ModerationOutcome{Flagged: analysis.Flagged, Analysis: analysis, Action: &action}, nil
}

// Analyze classifies without applying any action.
func Analyze(ctx context.Context, db *sqlx.DB, m *Moderator, title, content string) (ModerationOutcome, error) {
	analysis, err := m.Classify(ctx, title, content)
	if err != nil {
		return ModerationOutcome{}, err
	}
	if err := recordModeration(db, nil, nil, analysis, nil); err != nil {
		return ModerationOutcome{}, err
	}
	return ModerationOutcome{Flagged: analysis.Flagged, Analysis: analysis}, nil
}

func recordModeration(db *sqlx.DB, contentID, contentType *string, analysis ModerationAnalysis, action *string) error {
	raw, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
INSERT INTO moderation_results (id, content_id, content_type, flagged, category, confidence, action, analysis, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, uuid.NewString(), contentID, contentType, analysis.Flagged, analysis.Category,
		analysis.Confidence, action, raw, time.Now().UTC())
	return err
}

type ModerationStats struct {
	Timeframe  string         `json:"timeframe"`
	Total      int            `json:"total"`
	Flagged    int            `json:"flagged"`
	FlagRate   float64        `json:"flagRate"`
	ByCategory map[string]int `json:"byCategory"`
}

func TimeframeWindow(timeframe string) (time.Duration, error) {
	switch timeframe {
	case "day":
		return 24 * time.Hour, nil
	case "week":
		return 7 * 24 * time.Hour, nil
	case "month":
		return 30 * 24 * time.Hour, nil
	default:
		return 0, ErrBadRequest("Invalid timeframe")
	}
}

func FetchModerationStats(db *sqlx.DB, timeframe string) (ModerationStats, error) {
	window, err := TimeframeWindow(timeframe)
	if err != nil {
		return ModerationStats{}, err
	}
	since := time.Now().UTC().Add(-window)
	rows := []struct {
		Category string `db:"category"`
		Flagged  bool   `db:"flagged"`
		Count    int    `db:"count"`
	}{}
	if err := db.Select(&rows, `
SELECT category, flagged, count(*) AS count
FROM moderation_results
WHERE created_at >= $1
GROUP BY category, flagged
`, since); err != nil {
		return ModerationStats{}, err
	}
	stats := ModerationStats{Timeframe: timeframe, ByCategory: map[string]int{}}
	for _, row := range rows {
		stats.Total += row.Count
		if row.Flagged {
			stats.Flagged += row.Count
			stats.ByCategory[row.Category] += row.Count
		}
	}
	if stats.Total > 0 {
		stats.FlagRate = float64(stats.Flagged) / float64(stats.Total)
	}
	return stats, nil
}
