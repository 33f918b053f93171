package service

import (
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/issue_tracker"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/spam"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/store"
)

type Services struct {
	stores     *store.Stores
	tracker    issue_tracker.IssueTrackerService
	classifier *spam.Classifier
	gate       *issue_tracker.Gate
	cfg        config.Config
	versions   VersionLookup
}

func NewServices(
	stores *store.Stores,
	tracker issue_tracker.IssueTrackerService,
	classifier *spam.Classifier,
	gate *issue_tracker.Gate,
	cfg config.Config,
) *Services {
	return &Services{
		stores:     stores,
		tracker:    tracker,
		classifier: classifier,
		gate:       gate,
		cfg:        cfg,
		versions:   StaticVersions(cfg.Interview.PackageVersions),
	}
}

func (s *Services) Feedback() FeedbackService {
	return NewFeedbackService(s.stores.Feedback())
}

func (s *Services) Reactions() ReactionService {
	return NewReactionService(s.stores.Reactions(), s.versions)
}

func (s *Services) Panel() PanelService {
	return NewPanelService(s.stores.Panel(), nil)
}

func (s *Services) Links() *LinkBuilder {
	return NewLinkBuilder(s.cfg.Interview, s.gate.DefaultOwner(), s.versions)
}

func (s *Services) Submissions() SubmissionService {
	return NewSubmissionService(s.Feedback(), s.tracker)
}

func (s *Services) Issues() issue_tracker.IssueTrackerService {
	return s.tracker
}

func (s *Services) Gate() *issue_tracker.Gate {
	return s.gate
}

func (s *Services) Spam() *spam.Classifier {
	return s.classifier
}
