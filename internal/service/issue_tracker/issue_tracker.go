package issue_tracker

import (
	"context"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/spam"
)

const (
	DefaultIssueTitle = "User feedback"

	labelDescription = "Feedback from a Docassemble Interview"
	labelColor       = "002E60"
)

type IssueRequest struct {
	Owner    string
	Repo     string
	Title    *string
	Body     *string
	Template *model.IssueTemplate // overrides Title and Body when set
	Label    string               // optional; provisioned on the repo if missing

	SpamKeywords []string
}

type PrefillRequest struct {
	Owner    string // defaults to the configured default owner, then "suffolklitlab"
	Repo     string // defaults to "docassemble-AssemblyLine"
	Title    *string
	Body     *string
	Template *model.IssueTemplate
	Label    string
}

// SpamFilter is satisfied by *spam.Classifier.
type SpamFilter interface {
	IsLikelySpam(ctx context.Context, body string, opts ...spam.Option) bool
}

type IssueTrackerService interface {
	// Submit files an issue and returns its public URL.
	Submit(ctx context.Context, req IssueRequest) (string, error)
	// RepoExists probes whether the token can see owner/repo.
	RepoExists(ctx context.Context, owner, repo string) (bool, error)
	// PrefillURL builds a browser link that opens a pre-filled new-issue form.
	PrefillURL(req PrefillRequest) (string, error)
	HasCredentials() bool
}

// resolveContent applies the template override and the title default.
func resolveContent(title, body *string, tmpl *model.IssueTemplate) (string, string, error) {
	if tmpl != nil {
		title, body = &tmpl.Subject, &tmpl.Content
	}

	var t, b string
	if title != nil {
		t = *title
	}
	if body != nil {
		b = *body
	}
	if t == "" && b == "" {
		return "", "", ErrEmptyIssue
	}
	if t == "" {
		t = DefaultIssueTitle
	}
	return t, b, nil
}
