package issue_tracker

import (
	"strings"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
)

// fallbackOwners is used when neither an allow-list nor a default owner is configured.
var fallbackOwners = []string{"suffolklitlab", "suffolklitlab-issues"}

// Gate decides whether a repository owner may receive issues and whether
// filing is possible at all. It never talks to GitHub.
type Gate struct {
	token        string
	defaultOwner string
	allowed      []string
}

func NewGate(cfg config.GitHubConfig) *Gate {
	var owners []string
	for _, o := range cfg.AllowedRepoOwners {
		if o = strings.ToLower(strings.TrimSpace(o)); o != "" {
			owners = append(owners, o)
		}
	}
	if len(owners) == 0 && cfg.DefaultRepoOwner != "" {
		owners = []string{strings.ToLower(cfg.DefaultRepoOwner)}
	}
	if len(owners) == 0 {
		owners = append(owners, fallbackOwners...)
	}

	return &Gate{
		token:        cfg.Token,
		defaultOwner: cfg.DefaultRepoOwner,
		allowed:      owners,
	}
}

func (g *Gate) HasCredentials() bool {
	return g.token != ""
}

// Authorize matches owner against the allow-list, ignoring case.
func (g *Gate) Authorize(owner string) bool {
	owner = strings.ToLower(strings.TrimSpace(owner))
	if owner == "" {
		return false
	}
	for _, o := range g.allowed {
		if o == owner {
			return true
		}
	}
	return false
}

// AllowedOwners returns the resolved, lowercased allow-list.
func (g *Gate) AllowedOwners() []string {
	return append([]string(nil), g.allowed...)
}

func (g *Gate) DefaultOwner() string {
	return g.defaultOwner
}
