// internals/features/curriculum/planner/dto/planner_dto.go
package dto

import (
	"planeador_backend/internals/features/curriculum/planner/model"
)

type CreatePlannerRequest struct {
	TrainingArea string `json:"training_area" validate:"required,min=3,max=120"`
	UserID       int    `json:"user_id" validate:"required,gt=0"`
	SubjectID    int    `json:"subject_id" validate:"required,gt=0"`
}

type UpdatePlannerRequest struct {
	TrainingArea string `json:"training_area" validate:"required,min=3,max=120"`
	UserID       int    `json:"user_id" validate:"required,gt=0"`
	SubjectID    int    `json:"subject_id" validate:"required,gt=0"`
}

type PlannerUserLite struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type PlannerSubjectLite struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type PlannerResponse struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	TrainingArea string              `json:"training_area"`
	User         *PlannerUserLite    `json:"user,omitempty"`
	Subject      *PlannerSubjectLite `json:"subject,omitempty"`
	DetailIDs    []int               `json:"detail_ids,omitempty"`
}

func NewPlannerResponse(m *model.PlannerModel, withDetails bool) PlannerResponse {
	resp := PlannerResponse{
		ID:           m.ID,
		Name:         m.Name,
		TrainingArea: m.TrainingArea,
	}
	if m.User != nil {
		resp.User = &PlannerUserLite{ID: m.User.ID, Code: m.User.Code, Name: m.User.Name}
	}
	if m.Subject != nil {
		resp.Subject = &PlannerSubjectLite{ID: m.Subject.ID, Code: m.Subject.Code, Name: m.Subject.Name}
	}
	if withDetails {
		resp.DetailIDs = make([]int, 0, len(m.Details))
		for _, d := range m.Details {
			resp.DetailIDs = append(resp.DetailIDs, d.ID)
		}
	}
	return resp
}
