// Package cli implements feedbackctl, the operator's view of stored feedback.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/db"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/db/migrations"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/issue_tracker"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/spam"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/store"
)

// Provider hands commands the services they need. Commands that never touch
// Postgres or Redis must not force a connection.
type Provider interface {
	Feedback(ctx context.Context) (service.FeedbackService, error)
	Reactions(ctx context.Context) (service.ReactionService, error)
	Panel(ctx context.Context) (service.PanelService, error)
	Migrate(ctx context.Context) ([]string, error)
	Links() *service.LinkBuilder
	Issues() issue_tracker.IssueTrackerService
}

// Runtime is the Provider backed by real connections, opened on first use.
type Runtime struct {
	cfg     config.Config
	gate    *issue_tracker.Gate
	tracker issue_tracker.IssueTrackerService

	dbOnce sync.Once
	db     *db.DB
	dbErr  error

	redisOnce sync.Once
	redis     *redis.Client
	redisErr  error
}

func NewRuntime(ctx context.Context, cfg config.Config) (*Runtime, error) {
	gate := issue_tracker.NewGate(cfg.GitHub)
	classifier := spam.NewClassifier(cfg.Spam, spam.NewJudge(ctx, cfg.Spam.LLM))
	tracker, err := issue_tracker.NewGitHubIssueTrackerService(cfg.GitHub, gate, classifier, nil)
	if err != nil {
		return nil, err
	}
	return &Runtime{cfg: cfg, gate: gate, tracker: tracker}, nil
}

func (r *Runtime) database(ctx context.Context) (*db.DB, error) {
	r.dbOnce.Do(func() {
		r.db, r.dbErr = db.New(ctx, r.cfg.DB)
	})
	return r.db, r.dbErr
}

func (r *Runtime) redisClient(ctx context.Context) (*redis.Client, error) {
	r.redisOnce.Do(func() {
		opts, err := redis.ParseURL(r.cfg.Redis.URL)
		if err != nil {
			r.redisErr = fmt.Errorf("parsing redis url: %w", err)
			return
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			r.redisErr = fmt.Errorf("connecting to redis: %w", err)
			return
		}
		r.redis = client
	})
	return r.redis, r.redisErr
}

func (r *Runtime) stores(ctx context.Context) (*store.Stores, error) {
	database, err := r.database(ctx)
	if err != nil {
		return nil, err
	}
	return store.NewStores(database, nil, r.cfg.Redis.PanelKey), nil
}

func (r *Runtime) Feedback(ctx context.Context) (service.FeedbackService, error) {
	stores, err := r.stores(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewFeedbackService(stores.Feedback()), nil
}

func (r *Runtime) Reactions(ctx context.Context) (service.ReactionService, error) {
	stores, err := r.stores(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewReactionService(stores.Reactions(), service.StaticVersions(r.cfg.Interview.PackageVersions)), nil
}

func (r *Runtime) Panel(ctx context.Context) (service.PanelService, error) {
	client, err := r.redisClient(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewPanelService(store.NewPanelStore(client, r.cfg.Redis.PanelKey), nil), nil
}

func (r *Runtime) Migrate(ctx context.Context) ([]string, error) {
	database, err := r.database(ctx)
	if err != nil {
		return nil, err
	}
	return migrations.Up(ctx, database.Pool())
}

func (r *Runtime) Links() *service.LinkBuilder {
	return service.NewLinkBuilder(r.cfg.Interview, r.gate.DefaultOwner(), service.StaticVersions(r.cfg.Interview.PackageVersions))
}

func (r *Runtime) Issues() issue_tracker.IssueTrackerService {
	return r.tracker
}

func (r *Runtime) Close() {
	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}
}
