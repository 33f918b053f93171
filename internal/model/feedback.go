package model

import "time"

// Feedback is one row of feedback_session. It doubles as the link between an
// interview session and the GitHub issue filed for it, and as storage for
// end-of-interview feedback that never becomes an issue.
type Feedback struct {
	ID        int64     `json:"id,string"`
	Interview string    `json:"interview"`
	SessionID *string   `json:"session_id,omitempty"`
	Body      *string   `json:"body,omitempty"`
	HTMLURL   *string   `json:"html_url,omitempty"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"datetime"`
	RepoOwner *string   `json:"github_user,omitempty"`
	RepoName  *string   `json:"github_repo_name,omitempty"`
}

type FeedbackFilter struct {
	Interview       *string
	IncludeArchived bool
}

// IssueTemplate mirrors a docassemble template: subject becomes the issue
// title and content the issue body.
type IssueTemplate struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}
