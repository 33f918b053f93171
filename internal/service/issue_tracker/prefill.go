package issue_tracker

import (
	"fmt"
	"log/slog"
	"net/url"
)

const (
	prefillFallbackOwner = "suffolklitlab"
	prefillFallbackRepo  = "docassemble-AssemblyLine"
)

// PrefillURL does not call the API, so it needs no token; the owner must still
// be on the allow-list.
func (s *gitHubIssueTrackerService) PrefillURL(req PrefillRequest) (string, error) {
	return buildPrefillURL(s.gate, req)
}

func buildPrefillURL(gate *Gate, req PrefillRequest) (string, error) {
	owner := req.Owner
	if owner == "" {
		owner = gate.DefaultOwner()
	}
	if owner == "" {
		owner = prefillFallbackOwner
	}
	repo := req.Repo
	if repo == "" {
		repo = prefillFallbackRepo
	}

	if !gate.Authorize(owner) {
		slog.Warn("prefill url not built: repository owner not allowed",
			"owner", owner, "allowed", gate.AllowedOwners())
		return "", ErrOwnerNotAllowed
	}

	title, body := req.Title, req.Body
	if req.Template != nil {
		title, body = &req.Template.Subject, &req.Template.Content
	}

	params := url.Values{}
	params.Set("title", deref(title))
	params.Set("body", deref(body))
	if req.Label != "" {
		params.Set("labels", req.Label)
	}

	return fmt.Sprintf("https://github.com/%s/%s/issues/new?%s",
		url.PathEscape(owner), url.PathEscape(repo), params.Encode()), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
