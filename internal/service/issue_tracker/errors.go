package issue_tracker

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured   = errors.New("no GitHub token configured")
	ErrOwnerNotAllowed = errors.New("repository owner is not on the allow-list")
	ErrEmptyIssue      = errors.New("issue needs a title or a body")
	ErrSpam            = errors.New("issue body was classified as spam")
)

// RemoteError is a non-success answer from the GitHub API, or a transport
// failure when Status is 0.
type RemoteError struct {
	Op      string
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("github %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("github %s: status %d: %s", e.Op, e.Status, e.Message)
}
