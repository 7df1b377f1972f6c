package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

// maxQuerySkills caps how many skills go into the search query. The
// highest-confidence, most frequent skills carry the signal; the tail only
// dilutes the search terms.
const maxQuerySkills = 5

type jobMatchUsecase struct {
	repo   domain.ResumeRepository
	search domain.JobSearchClient
}

func NewJobMatchUsecase(repo domain.ResumeRepository, search domain.JobSearchClient) domain.JobMatchUsecase {
	return &jobMatchUsecase{repo: repo, search: search}
}

func (u *jobMatchUsecase) MatchesForResume(ctx context.Context, resumeID uuid.UUID, limit int) ([]domain.JobPosting, error) {
	rec, err := u.repo.GetByID(ctx, resumeID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	if err != nil {
		return nil, err
	}

	query := buildJobQuery(&rec.Parsed, limit)
	if query.Title == "" && len(query.Skills) == 0 {
		return nil, apperror.BadRequest("resume has no searchable title or skills")
	}

	postings, err := u.search.Search(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return postings, nil
}

// buildJobQuery derives search terms from the strongest resume signals: the
// most recent job title, the top skills and the candidate's location.
func buildJobQuery(parsed *domain.ParsedResume, limit int) domain.JobQuery {
	query := domain.JobQuery{Limit: limit}

	if len(parsed.Experiences) > 0 {
		query.Title = parsed.Experiences[0].Title
	}

	skills := make([]domain.Skill, len(parsed.Skills))
	copy(skills, parsed.Skills)
	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Confidence != skills[j].Confidence {
			return skills[i].Confidence > skills[j].Confidence
		}
		return skills[i].Frequency > skills[j].Frequency
	})
	for _, s := range skills {
		if len(query.Skills) >= maxQuerySkills {
			break
		}
		if s.Category == domain.SkillSoft {
			continue
		}
		query.Skills = append(query.Skills, s.Name)
	}

	if parsed.PersonalInfo != nil {
		query.Location = parsed.PersonalInfo.Location
	}
	return query
}
