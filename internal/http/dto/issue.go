package dto

import "github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"

type CreateIssueRequest struct {
	RepoOwner    string               `json:"repo_owner" binding:"required"`
	RepoName     string               `json:"repo_name" binding:"required"`
	Title        *string              `json:"title,omitempty"`
	Body         *string              `json:"body,omitempty"`
	Template     *model.IssueTemplate `json:"template,omitempty"`
	Label        string               `json:"label,omitempty"`
	SpamKeywords []string             `json:"spam_keywords,omitempty"`
}

type CreateIssueResponse struct {
	IssueURL string `json:"html_url"`
}

type PrefillIssueRequest struct {
	RepoOwner string               `json:"repo_owner,omitempty"`
	RepoName  string               `json:"repo_name,omitempty"`
	Title     *string              `json:"title,omitempty"`
	Body      *string              `json:"body,omitempty"`
	Template  *model.IssueTemplate `json:"template,omitempty"`
	Label     string               `json:"label,omitempty"`
}

type IssueConfigResponse struct {
	Valid         bool     `json:"valid"`
	DefaultOwner  string   `json:"default_owner,omitempty"`
	AllowedOwners []string `json:"allowed_owners"`
	RepoExists    *bool    `json:"repo_exists,omitempty"`
}
