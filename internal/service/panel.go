package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/store"
)

var ErrEmptyIdentifier = errors.New("panel identifier is empty")

// PanelService keeps the research panel list. Only the response time is
// stored with an identifier so it can't be tied back to any feedback.
type PanelService interface {
	Add(ctx context.Context, identifier string) error
	List(ctx context.Context) ([]model.PanelEntry, error)
}

type panelService struct {
	panel store.PanelStore
	now   func() time.Time
}

func NewPanelService(panel store.PanelStore, now func() time.Time) PanelService {
	if now == nil {
		now = time.Now
	}
	return &panelService{panel: panel, now: now}
}

func (s *panelService) Add(ctx context.Context, identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		slog.WarnContext(ctx, "panel participant not added: empty identifier")
		return ErrEmptyIdentifier
	}
	if err := s.panel.Add(ctx, identifier, s.now()); err != nil {
		return fmt.Errorf("adding panel participant: %w", err)
	}
	return nil
}

func (s *panelService) List(ctx context.Context) ([]model.PanelEntry, error) {
	entries, err := s.panel.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing panel participants: %w", err)
	}
	return entries, nil
}
