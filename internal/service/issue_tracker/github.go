package issue_tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v74/github"
	"github.com/patrickmn/go-cache"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/logger"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/spam"
)

type gitHubIssueTrackerService struct {
	client *github.Client
	gate   *Gate
	spam   SpamFilter
	labels *cache.Cache // nil disables caching
}

// NewGitHubIssueTrackerService builds the GitHub-backed tracker. httpClient may
// be nil. cfg.APIURL points the client at GitHub Enterprise or a test server.
func NewGitHubIssueTrackerService(cfg config.GitHubConfig, gate *Gate, spamFilter SpamFilter, httpClient *http.Client) (IssueTrackerService, error) {
	client := github.NewClient(httpClient)
	if cfg.Token != "" {
		client = client.WithAuthToken(cfg.Token)
	}
	if cfg.Username != "" {
		client.UserAgent = cfg.Username
	}
	if cfg.APIURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.APIURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parsing github api url: %w", err)
		}
		client.BaseURL = base
	}

	s := &gitHubIssueTrackerService{
		client: client,
		gate:   gate,
		spam:   spamFilter,
	}
	if cfg.LabelCacheTTL > 0 {
		s.labels = cache.New(cfg.LabelCacheTTL, 2*cfg.LabelCacheTTL)
	}
	return s, nil
}

func (s *gitHubIssueTrackerService) HasCredentials() bool {
	return s.gate.HasCredentials()
}

func (s *gitHubIssueTrackerService) Submit(ctx context.Context, req IssueRequest) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Repo:      logger.Ptr(req.Owner + "/" + req.Repo),
		Component: "feedback.issue_tracker.github",
	})

	if err := s.authorize(ctx, req.Owner); err != nil {
		return "", err
	}

	title, body, err := resolveContent(req.Title, req.Body, req.Template)
	if err != nil {
		slog.WarnContext(ctx, "issue not filed: neither title nor body given")
		return "", err
	}

	if s.spam != nil && s.spam.IsLikelySpam(ctx, body, spam.WithKeywords(req.SpamKeywords...)) {
		slog.WarnContext(ctx, "issue not filed: body classified as spam")
		return "", ErrSpam
	}

	issue := &github.IssueRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
	}
	if req.Label != "" && s.ensureLabel(ctx, req.Owner, req.Repo, req.Label) {
		issue.Labels = &[]string{req.Label}
	}

	created, resp, err := s.client.Issues.Create(ctx, req.Owner, req.Repo, issue)
	if err != nil {
		rerr := toRemoteError("create issue", resp, err)
		slog.ErrorContext(ctx, "could not create issue",
			"title", logger.Truncate(title, 80),
			"status", rerr.Status,
			"error", rerr.Message)
		return "", rerr
	}
	if resp.StatusCode != http.StatusCreated {
		rerr := &RemoteError{Op: "create issue", Status: resp.StatusCode, Message: "unexpected status"}
		slog.ErrorContext(ctx, "could not create issue", "title", logger.Truncate(title, 80), "status", resp.StatusCode)
		return "", rerr
	}

	slog.InfoContext(ctx, "issue created", "html_url", created.GetHTMLURL(), "number", created.GetNumber())
	return created.GetHTMLURL(), nil
}

// ensureLabel reports whether the label can be attached. It never fails the
// submission: anything unexpected drops the label.
func (s *gitHubIssueTrackerService) ensureLabel(ctx context.Context, owner, repo, name string) bool {
	key := strings.ToLower(owner + "/" + repo + "#" + name)
	if s.labels != nil {
		if _, ok := s.labels.Get(key); ok {
			return true
		}
	}

	_, resp, err := s.client.Issues.GetLabel(ctx, owner, repo, name)
	switch {
	case err == nil:
		s.rememberLabel(key)
		return true
	case resp == nil || resp.StatusCode != http.StatusNotFound:
		rerr := toRemoteError("get label", resp, err)
		slog.WarnContext(ctx, "label lookup failed, filing without label",
			"label", name, "status", rerr.Status, "error", rerr.Message)
		return false
	}

	_, resp, err = s.client.Issues.CreateLabel(ctx, owner, repo, &github.Label{
		Name:        github.Ptr(name),
		Description: github.Ptr(labelDescription),
		Color:       github.Ptr(labelColor),
	})
	if err == nil {
		slog.InfoContext(ctx, "created label", "label", name)
		s.rememberLabel(key)
		return true
	}
	if isAlreadyExists(resp, err) {
		slog.DebugContext(ctx, "label created concurrently", "label", name)
		s.rememberLabel(key)
		return true
	}

	rerr := toRemoteError("create label", resp, err)
	slog.WarnContext(ctx, "could not find nor create label, filing without label",
		"label", name, "status", rerr.Status, "error", rerr.Message)
	return false
}

func (s *gitHubIssueTrackerService) rememberLabel(key string) {
	if s.labels != nil {
		s.labels.Set(key, time.Now(), cache.DefaultExpiration)
	}
}

func (s *gitHubIssueTrackerService) RepoExists(ctx context.Context, owner, repo string) (bool, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Repo:      logger.Ptr(owner + "/" + repo),
		Component: "feedback.issue_tracker.github",
	})

	if err := s.authorize(ctx, owner); err != nil {
		return false, err
	}

	_, resp, err := s.client.Repositories.Get(ctx, owner, repo)
	if err == nil {
		return true, nil
	}
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		slog.InfoContext(ctx, "repository not found or not visible to token")
		return false, nil
	}
	rerr := toRemoteError("get repository", resp, err)
	slog.WarnContext(ctx, "repository probe failed", "status", rerr.Status, "error", rerr.Message)
	return false, rerr
}

func (s *gitHubIssueTrackerService) authorize(ctx context.Context, owner string) error {
	if !s.gate.HasCredentials() {
		slog.WarnContext(ctx, "issue not filed: no GitHub token configured")
		return ErrNotConfigured
	}
	if !s.gate.Authorize(owner) {
		slog.WarnContext(ctx, "issue not filed: repository owner not allowed",
			"owner", owner, "allowed", s.gate.AllowedOwners())
		return ErrOwnerNotAllowed
	}
	return nil
}

func toRemoteError(op string, resp *github.Response, err error) *RemoteError {
	rerr := &RemoteError{Op: op, Message: err.Error()}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		rerr.Message = ghErr.Message
	}
	if resp != nil && resp.Response != nil {
		rerr.Status = resp.StatusCode
	}
	return rerr
}

func isAlreadyExists(resp *github.Response, err error) bool {
	if resp == nil || resp.StatusCode != http.StatusUnprocessableEntity {
		return false
	}
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) {
		return false
	}
	for _, e := range ghErr.Errors {
		if e.Code == "already_exists" {
			return true
		}
	}
	return false
}
