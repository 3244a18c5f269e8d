package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/ent"
	"github.com/EAGLE1309/placecraft-sub002/ent/subject"
)

// subjectRepo implements SubjectRepo using the ent client.
type subjectRepo struct {
	client *ent.Client
}

func (r *subjectRepo) Create(ctx context.Context, s *Subject) (*Subject, error) {
	created, err := r.client.Subject.Create().
		SetSkillKey(s.SkillKey).
		SetDisplayName(s.DisplayName).
		SetLearningType(s.LearningType).
		SetRoadmap(s.Roadmap).
		Save(ctx)
	if err != nil {
		// A racing writer may have created the subject for the same skill
		// key first; the unique constraint makes them equivalent, so hand
		// back the winner's row.
		if ent.IsConstraintError(err) {
			existing, lookupErr := r.GetBySkillKey(ctx, s.SkillKey)
			if lookupErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("create subject: %w", err)
	}
	return entSubjectToSubject(created), nil
}

func (r *subjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*Subject, error) {
	s, err := r.client.Subject.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return entSubjectToSubject(s), nil
}

func (r *subjectRepo) GetBySkillKey(ctx context.Context, key string) (*Subject, error) {
	s, err := r.client.Subject.Query().
		Where(subject.SkillKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query subject by skill key: %w", err)
	}
	return entSubjectToSubject(s), nil
}

func entSubjectToSubject(s *ent.Subject) *Subject {
	return &Subject{
		ID:           s.ID,
		SkillKey:     s.SkillKey,
		DisplayName:  s.DisplayName,
		LearningType: s.LearningType,
		Roadmap:      s.Roadmap,
		CreatedAt:    s.CreatedAt,
	}
}
