package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

type recommendationUsecase struct {
	repo    domain.ResumeRepository
	advisor domain.CareerAdvisor
}

func NewRecommendationUsecase(repo domain.ResumeRepository, advisor domain.CareerAdvisor) domain.RecommendationUsecase {
	return &recommendationUsecase{repo: repo, advisor: advisor}
}

func (u *recommendationUsecase) RecommendForResume(ctx context.Context, resumeID uuid.UUID) (*domain.CareerRecommendation, error) {
	if u.advisor == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "Career recommendations are not configured", nil)
	}

	rec, err := u.repo.GetByID(ctx, resumeID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	if err != nil {
		return nil, err
	}

	advice, err := u.advisor.Recommend(ctx, &rec.Parsed)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	advice.ResumeID = resumeID
	return advice, nil
}
