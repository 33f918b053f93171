package model

import "strings"

// InterviewContext is what the interview runtime knows about the page the user
// was on. Every field is optional; an empty string means the runtime did not
// supply it.
type InterviewContext struct {
	Filename   string `json:"filename,omitempty"`
	Package    string `json:"package,omitempty"`
	Variable   string `json:"variable,omitempty"`
	QuestionID string `json:"question_id,omitempty"`
	SessionID  string `json:"session,omitempty"`
}

// IsPlayground reports whether the interview runs from a playground package,
// which has no published version and no GitHub repository.
func (c InterviewContext) IsPlayground() bool {
	return c.Package == "" || strings.HasPrefix(c.Package, "docassemble-playground")
}

// RepoName derives the GitHub repository from the package name:
// "docassemble.AssemblyLine" lives at "docassemble-AssemblyLine".
func (c InterviewContext) RepoName() string {
	if c.IsPlayground() {
		return ""
	}
	return strings.ReplaceAll(c.Package, ".", "-")
}
