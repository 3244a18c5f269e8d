package subjects

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/llm"
	"github.com/EAGLE1309/placecraft-sub002/internal/logger"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// Service resolves subjects cache-first, generating a roadmap on miss.
// Subjects are immutable once created; the skill key is the cache key.
type Service struct {
	repo     store.SubjectRepo
	provider llm.Provider
	log      *logger.Logger
	cfg      Config

	flight singleflight.Group
}

// NewService creates a subject resolver.
func NewService(repo store.SubjectRepo, provider llm.Provider, log *logger.Logger, cfg Config) *Service {
	return &Service{
		repo:     repo,
		provider: provider,
		log:      log.With("service", "subjects"),
		cfg:      cfg,
	}
}

// NormalizeSkillKey produces the unique cache key for a skill name:
// surrounding whitespace trimmed, inner runs collapsed, case-folded.
func NormalizeSkillKey(skillName string) string {
	return strings.ToLower(strings.Join(strings.Fields(skillName), " "))
}

// GetOrGenerate returns the subject for skillName, generating and persisting
// a roadmap when no subject exists for the normalized key. Concurrent calls
// for the same key share one generation.
func (s *Service) GetOrGenerate(ctx context.Context, skillName, learningType string) (*Result, error) {
	name := strings.TrimSpace(skillName)
	if name == "" {
		return nil, apperr.Validation("skillName is required")
	}
	key := NormalizeSkillKey(name)

	existing, err := s.repo.GetBySkillKey(ctx, key)
	if err != nil {
		return nil, apperr.Store("subject lookup", err)
	}
	if existing != nil {
		return &Result{Subject: existing, Cached: true}, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		// Another flight member may have finished between our read and
		// this call.
		cached, err := s.repo.GetBySkillKey(ctx, key)
		if err != nil {
			return nil, apperr.Store("subject lookup", err)
		}
		if cached != nil {
			return &Result{Subject: cached, Cached: true}, nil
		}

		roadmap, err := s.generateRoadmap(ctx, name, learningType)
		if err != nil {
			return nil, err
		}

		created, err := s.repo.Create(ctx, &store.Subject{
			SkillKey:     key,
			DisplayName:  name,
			LearningType: learningType,
			Roadmap:      roadmap,
		})
		if err != nil {
			return nil, apperr.Store("subject create", err)
		}
		s.log.Info("subject created", "subject_id", created.ID, "skill_key", key, "topics", len(roadmap))
		return &Result{Subject: created, Cached: false}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

// CheckExists reports whether a subject exists for skillName.
// Pure lookup: no generation, no writes.
func (s *Service) CheckExists(ctx context.Context, skillName string) (bool, *store.Subject, error) {
	name := strings.TrimSpace(skillName)
	if name == "" {
		return false, nil, apperr.Validation("skillName is required")
	}
	subj, err := s.repo.GetBySkillKey(ctx, NormalizeSkillKey(name))
	if err != nil {
		return false, nil, apperr.Store("subject lookup", err)
	}
	return subj != nil, subj, nil
}

// GetByID returns the subject with the given id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*store.Subject, error) {
	subj, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("subject lookup", err)
	}
	if subj == nil {
		return nil, apperr.NotFound("subject", id.String())
	}
	return subj, nil
}

func (s *Service) generateRoadmap(ctx context.Context, skillName, learningType string) ([]types.RoadmapTopic, error) {
	ctx = llm.WithPurpose(ctx, "roadmap")

	req := llm.Request{
		System: roadmapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRoadmapUserMessage(skillName, learningType)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &apperr.GenerationError{Purpose: "roadmap", Err: err}
	}

	var out roadmapOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &apperr.GenerationError{Purpose: "roadmap", Err: fmt.Errorf("parse response: %w", err)}
	}
	if len(out.Topics) == 0 {
		return nil, &apperr.GenerationError{Purpose: "roadmap", Err: fmt.Errorf("empty roadmap")}
	}

	roadmap := make([]types.RoadmapTopic, len(out.Topics))
	for i, t := range out.Topics {
		if strings.TrimSpace(t.Title) == "" {
			return nil, &apperr.GenerationError{Purpose: "roadmap", Err: fmt.Errorf("topic %d has no title", i)}
		}
		roadmap[i] = types.RoadmapTopic{Title: t.Title, Description: t.Description}
	}
	return roadmap, nil
}
