// Package spam decides whether a feedback body is worth filing as an issue.
package spam

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/logger"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
)

type Reason string

const (
	ReasonNone    Reason = "none"
	ReasonKeyword Reason = "keyword"
	ReasonURL     Reason = "url"
	ReasonModel   Reason = "model"
)

type Result struct {
	Spam   bool
	Reason Reason
	Match  string // keyword or URL that triggered the verdict, if any
}

var urlPattern = regexp.MustCompile(`(?i)https?://\S*`)

type options struct {
	keywords []string
	remote   bool
}

type Option func(*options)

// WithKeywords adds caller keywords on top of the built-in and configured lists.
func WithKeywords(keywords ...string) Option {
	return func(o *options) {
		o.keywords = append(o.keywords, keywords...)
	}
}

// WithoutRemoteCheck skips the generative classifier for this call.
func WithoutRemoteCheck() Option {
	return func(o *options) {
		o.remote = false
	}
}

// Classifier is safe for concurrent use; it keeps no state between calls.
type Classifier struct {
	keywords []string
	judge    Judge
}

// NewClassifier builds a classifier from the configured extra keywords. A nil
// judge disables the remote step.
func NewClassifier(cfg config.SpamConfig, judge Judge) *Classifier {
	if judge == nil {
		judge = NopJudge{}
	}
	keywords := make([]string, 0, len(builtinKeywords)+len(cfg.Keywords))
	for _, k := range append(append([]string{}, builtinKeywords...), cfg.Keywords...) {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	return &Classifier{keywords: keywords, judge: judge}
}

// Classify runs the heuristics in order and stops at the first hit. The remote
// check never rejects on failure: an unavailable or erroring judge accepts.
func (c *Classifier) Classify(ctx context.Context, body string, opts ...Option) Result {
	o := options{remote: true}
	for _, opt := range opts {
		opt(&o)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "feedback.spam"})

	if strings.TrimSpace(body) == "" {
		return Result{Reason: ReasonNone}
	}

	lower := strings.ToLower(body)
	if kw, ok := c.matchKeyword(lower, o.keywords); ok {
		slog.InfoContext(ctx, "feedback rejected as spam", "reason", ReasonKeyword, "match", kw)
		return Result{Spam: true, Reason: ReasonKeyword, Match: kw}
	}

	if u := urlPattern.FindString(body); u != "" {
		slog.InfoContext(ctx, "feedback rejected as spam", "reason", ReasonURL, "match", logger.Truncate(u, 80))
		return Result{Spam: true, Reason: ReasonURL, Match: u}
	}

	if !o.remote {
		return Result{Reason: ReasonNone}
	}

	spam, err := c.judge.IsSpam(ctx, body)
	if errors.Is(err, ErrJudgeUnavailable) {
		slog.DebugContext(ctx, "remote spam check skipped", "error", err)
		return Result{Reason: ReasonNone}
	}
	if err != nil {
		slog.WarnContext(ctx, "remote spam check degraded, accepting feedback", "error", err)
		return Result{Reason: ReasonNone}
	}
	if spam {
		slog.InfoContext(ctx, "feedback rejected as spam", "reason", ReasonModel)
		return Result{Spam: true, Reason: ReasonModel}
	}
	return Result{Reason: ReasonNone}
}

// IsLikelySpam is Classify reduced to a yes/no.
func (c *Classifier) IsLikelySpam(ctx context.Context, body string, opts ...Option) bool {
	return c.Classify(ctx, body, opts...).Spam
}

func (c *Classifier) matchKeyword(lowerBody string, extra []string) (string, bool) {
	for _, kw := range c.keywords {
		if strings.Contains(lowerBody, kw) {
			return kw, true
		}
	}
	for _, kw := range extra {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lowerBody, kw) {
			return kw, true
		}
	}
	return "", false
}
