package dto

import "github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"

type RecordReactionRequest struct {
	Reaction  *int                    `json:"reaction" binding:"required"`
	Interview *string                 `json:"interview,omitempty"`
	Version   *string                 `json:"version,omitempty"`
	Context   *model.InterviewContext `json:"context,omitempty"`
}

type ReactionsResponse struct {
	Reactions []model.ReactionSummary `json:"reactions"`
}
