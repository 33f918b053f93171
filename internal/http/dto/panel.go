package dto

import "github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"

type AddPanelParticipantRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

type PanelistsResponse struct {
	Panelists []model.PanelEntry `json:"panelists"`
}
