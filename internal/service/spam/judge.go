package spam

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/llm"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
)

// ErrJudgeUnavailable is returned by NopJudge so the classifier can tell
// "no remote check configured" apart from a real verdict.
var ErrJudgeUnavailable = errors.New("remote spam judge not configured")

// Judge is the optional generative classifier.
type Judge interface {
	IsSpam(ctx context.Context, body string) (bool, error)
}

type NopJudge struct{}

func (NopJudge) IsSpam(context.Context, string) (bool, error) {
	return false, ErrJudgeUnavailable
}

const judgeSystemPrompt = `A user is submitting feedback on a guided legal interview. ` +
	`Rate the following message as either spam or not spam. ` +
	`Respond with exactly "spam" or "not spam" and nothing else.`

// LLMJudge asks a chat model for a one-word verdict.
type LLMJudge struct {
	client llm.Client
}

func NewLLMJudge(client llm.Client) *LLMJudge {
	return &LLMJudge{client: client}
}

func (j *LLMJudge) IsSpam(ctx context.Context, body string) (bool, error) {
	reply, err := j.client.Complete(ctx, llm.Request{
		SystemPrompt: judgeSystemPrompt,
		UserPrompt:   body,
		MaxTokens:    5,
		Temperature:  llm.Temp(0),
	})
	if err != nil {
		return false, fmt.Errorf("spam judge (model=%s): %w", j.client.Model(), err)
	}
	return strings.EqualFold(strings.TrimSpace(reply), "spam"), nil
}

// NewJudge picks the judge from config: an LLMJudge when a classifier key is
// configured, NopJudge otherwise.
func NewJudge(ctx context.Context, cfg config.LLMConfig) Judge {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "remote spam check disabled (no classifier key configured)")
		return NopJudge{}
	}

	client, err := llm.New(llm.Config{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
	})
	if err != nil {
		slog.WarnContext(ctx, "remote spam check disabled", "error", err)
		return NopJudge{}
	}

	slog.InfoContext(ctx, "remote spam check enabled", "provider", cfg.Provider, "model", client.Model())
	return NewLLMJudge(client)
}
