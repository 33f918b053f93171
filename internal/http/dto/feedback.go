package dto

import "github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"

type SaveFeedbackRequest struct {
	Interview string               `json:"interview"`
	SessionID *string              `json:"session_id,omitempty"`
	Body      *string              `json:"body,omitempty"`
	Template  *model.IssueTemplate `json:"template,omitempty"`
	RepoOwner *string              `json:"github_user,omitempty"`
	RepoName  *string              `json:"github_repo_name,omitempty"`
}

type SaveFeedbackResponse struct {
	ID int64 `json:"id,string"`
}

type SubmitFeedbackRequest struct {
	Interview    string               `json:"interview"`
	SessionID    *string              `json:"session_id,omitempty"`
	Title        *string              `json:"title,omitempty"`
	Body         *string              `json:"body,omitempty"`
	Template     *model.IssueTemplate `json:"template,omitempty"`
	RepoOwner    string               `json:"repo_owner" binding:"required"`
	RepoName     string               `json:"repo_name" binding:"required"`
	Label        string               `json:"label,omitempty"`
	SpamKeywords []string             `json:"spam_keywords,omitempty"`
}

type SubmitFeedbackResponse struct {
	SubmissionID int64   `json:"submission_id,string"`
	FeedbackID   *string `json:"feedback_id,omitempty"`
	IssueURL     *string `json:"html_url,omitempty"`
	FilingError  string  `json:"filing_error,omitempty"`
}

type SetIssueURLRequest struct {
	URL string `json:"html_url" binding:"required,url"`
}

type UpdatedResponse struct {
	Updated bool `json:"updated"`
}

type ListFeedbackResponse struct {
	Feedback map[int64]model.Feedback `json:"feedback"`
}
