package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	"github.com/dmitrijs2005/diarykeeper/internal/server/ai"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const (
	maxTitleLength  = 200
	fallbackInsight = "Thank you for sharing your thoughts. Keep writing to help me understand you better!"
)

var (
	errEntryNotFound = common.NewError(common.ErrNotFound, "Diary not found")
	errBadTitle      = common.NewError(common.ErrValidation, "Title must be between 1 and 200 characters")
	errEmptyContent  = common.NewError(common.ErrValidation, "Content must not be empty")
)

// EntryService manages a user's diary entries and asks the advisor for
// insights and recommendations. Every operation is scoped to userID.
type EntryService struct {
	repos   repomanager.RepositoryManager
	advisor ai.Advisor
	logger  logging.Logger
	now     func() time.Time
	newID   func() string
}

func NewEntryService(m repomanager.RepositoryManager, advisor ai.Advisor, logger logging.Logger) *EntryService {
	return &EntryService{
		repos:   m,
		advisor: advisor,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (s *EntryService) List(ctx context.Context, userID string) ([]models.Entry, error) {
	list, err := s.repos.Entries().List(ctx, userID)
	if err != nil {
		return nil, internal(err)
	}
	return list, nil
}

func (s *EntryService) Get(ctx context.Context, userID, id string) (*models.Entry, error) {
	e, err := s.repos.Entries().Get(ctx, userID, id)
	if err != nil {
		return nil, entryErr(err)
	}
	return e, nil
}

func validTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	return n >= 1 && n <= maxTitleLength
}

func (s *EntryService) Create(ctx context.Context, userID, title, content string) (*models.Entry, error) {
	title = strings.TrimSpace(title)
	if !validTitle(title) {
		return nil, errBadTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, errEmptyContent
	}

	now := s.now().UTC()
	e := &models.Entry{
		ID:        s.newID(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repos.Entries().Create(ctx, e); err != nil {
		return nil, internal(err)
	}
	return e, nil
}

// Update changes only the non-empty fields and bumps UpdatedAt.
func (s *EntryService) Update(ctx context.Context, userID, id, title, content string) (*models.Entry, error) {
	title = strings.TrimSpace(title)
	if title != "" && !validTitle(title) {
		return nil, errBadTitle
	}

	var updated *models.Entry
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx repomanager.RepositoryManager) error {
		e, err := tx.Entries().Get(ctx, userID, id)
		if err != nil {
			return err
		}
		if title != "" {
			e.Title = title
		}
		if strings.TrimSpace(content) != "" {
			e.Content = content
		}
		e.UpdatedAt = s.now().UTC()
		if err := tx.Entries().Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, entryErr(err)
	}
	return updated, nil
}

func (s *EntryService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repos.Entries().Delete(ctx, userID, id); err != nil {
		return entryErr(err)
	}
	return nil
}

// GenerateInsight writes an insight for entry id from the entry and up to
// three related entries, stores it and returns it. An advisor failure is
// logged and replaced by a fixed encouraging sentence.
func (s *EntryService) GenerateInsight(ctx context.Context, userID, id string) (string, error) {
	e, err := s.repos.Entries().Get(ctx, userID, id)
	if err != nil {
		return "", entryErr(err)
	}

	all, err := s.repos.Entries().List(ctx, userID)
	if err != nil {
		return "", internal(err)
	}
	related := relatedEntries(e.Text(), all, e.ID, relatedLimit)

	insight, err := s.advisor.Generate(ctx, insightPrompt(e, related))
	if err != nil {
		s.logger.Warn(ctx, "insight generation failed, using fallback", "entry_id", id, "error", err)
		insight = fallbackInsight
	}

	e.AIInsight = insight
	e.UpdatedAt = s.now().UTC()
	if err := s.repos.Entries().Update(ctx, e); err != nil {
		return "", entryErr(err)
	}
	return insight, nil
}

// Recommend suggests directions for an entry that is still being written.
// Failures carry a message naming the model backend.
func (s *EntryService) Recommend(ctx context.Context, userID, title, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", errEmptyContent
	}

	all, err := s.repos.Entries().List(ctx, userID)
	if err != nil {
		return "", internal(err)
	}
	query := strings.TrimSpace(title + "\n\n" + content)
	related := relatedEntries(query, all, "", relatedLimit)

	text, err := s.advisor.Generate(ctx, recommendationPrompt(title, content, related))
	if err != nil {
		s.logger.Error(ctx, "recommendation failed", "error", err)
		return "", common.WrapError(common.ErrInternal, err, "Failed to generate recommendation: "+err.Error())
	}
	return text, nil
}

func (s *EntryService) AdvisorStatus(ctx context.Context) ai.Status {
	return s.advisor.Status(ctx)
}

func entryErr(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return errEntryNotFound
	}
	return internal(err)
}
