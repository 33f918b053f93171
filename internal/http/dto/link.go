package dto

import "github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"

type FeedbackLinkRequest struct {
	Context        *model.InterviewContext `json:"context,omitempty"`
	Interview      string                  `json:"i,omitempty"`
	GithubUser     string                  `json:"github_user,omitempty"`
	GithubRepo     string                  `json:"github_repo,omitempty"`
	Variable       string                  `json:"variable,omitempty"`
	QuestionID     string                  `json:"question_id,omitempty"`
	PackageVersion string                  `json:"package_version,omitempty"`
	Filename       string                  `json:"filename,omitempty"`
	SessionID      string                  `json:"session_id,omitempty"`
}

type URLResponse struct {
	URL string `json:"url"`
}
