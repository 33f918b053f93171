package service

import (
	"context"
	"net/url"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
)

const (
	demoOwner = "suffolklitlab-issues"
	demoRepo  = "demo"
)

// FeedbackLinkParams describes where the feedback is about. Explicit fields
// win over whatever Context supplies.
type FeedbackLinkParams struct {
	Context    *model.InterviewContext
	Interview  string // feedback interview to open; defaults to the configured one
	Owner      string
	Repo       string
	Variable   string
	QuestionID string
	Version    string
	Filename   string
	SessionID  string
}

// LinkBuilder composes deep links into the feedback interview.
type LinkBuilder struct {
	baseURL      string
	interview    string
	defaultOwner string
	versions     VersionLookup
}

func NewLinkBuilder(interviewCfg config.InterviewConfig, defaultOwner string, versions VersionLookup) *LinkBuilder {
	interview := interviewCfg.FeedbackInterview
	if interview == "" {
		interview = config.DefaultFeedbackInterview
	}
	return &LinkBuilder{
		baseURL:      interviewCfg.BaseURL,
		interview:    interview,
		defaultOwner: defaultOwner,
		versions:     versions,
	}
}

func (b *LinkBuilder) Build(ctx context.Context, p FeedbackLinkParams) string {
	var owner, repo, variable, questionID, version, filename, sessionID string

	if ic := p.Context; ic != nil {
		repo = ic.RepoName()
		if repo == "" {
			repo = demoRepo
		}
		owner = b.defaultOwner
		variable = ic.Variable
		questionID = ic.QuestionID
		filename = ic.Filename
		sessionID = ic.SessionID
		version = versionFor(ctx, b.versions, ic)
	}

	if p.Repo != "" {
		repo = p.Repo
		owner = b.defaultOwner
		if p.Owner != "" {
			owner = p.Owner
		}
	} else if p.Owner != "" && repo != "" {
		owner = p.Owner
	}
	if owner == "" || repo == "" {
		owner, repo = demoOwner, demoRepo
	}

	variable = firstNonEmpty(p.Variable, variable)
	questionID = firstNonEmpty(p.QuestionID, questionID)
	version = firstNonEmpty(p.Version, version)
	filename = firstNonEmpty(p.Filename, filename)
	sessionID = firstNonEmpty(p.SessionID, sessionID)

	q := url.Values{}
	q.Set("i", firstNonEmpty(p.Interview, b.interview))
	q.Set("github_user", owner)
	q.Set("github_repo", repo)
	setIfPresent(q, "variable", variable)
	setIfPresent(q, "question_id", questionID)
	setIfPresent(q, "package_version", version)
	setIfPresent(q, "filename", filename)
	setIfPresent(q, "session_id", sessionID)
	q.Set("reset", "1")

	return b.baseURL + "/interview?" + q.Encode()
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
