package service

import (
	"context"
	"errors"
	"time"

	"dreamshoots/internal/events"
	"dreamshoots/internal/metrics"
	"dreamshoots/internal/reels/cache"
	"dreamshoots/internal/reels/embed"
	reelserrors "dreamshoots/internal/reels/errors"
	"dreamshoots/internal/reels/repository"
	"dreamshoots/internal/reels/validator"
	"dreamshoots/pkg/config"
	apperrors "dreamshoots/pkg/errors"
	"dreamshoots/pkg/model"
	"dreamshoots/pkg/sanitizer"

	"github.com/google/uuid"
)

type ReelService interface {
	Add(ctx context.Context, input *model.ReelCreate) (*model.ReelView, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.ReelView, error)
	Embeds(ctx context.Context) ([]*model.ReelView, error)
}

type reelService struct {
	repo      repository.ReelRepository
	validator *validator.ReelValidator
	cache     cache.ReelCache
	embedder  *embed.Embedder
	events    events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewReelService(
	repo repository.ReelRepository,
	validator *validator.ReelValidator,
	reelCache cache.ReelCache,
	publisher events.Publisher,
	cfg *config.Config,
) ReelService {
	if reelCache == nil {
		reelCache = cache.New(nil, 0, cfg.Log)
	}
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &reelService{
		repo:      repo,
		validator: validator,
		cache:     reelCache,
		embedder:  embed.New(cfg.ReelEmbedTemplate),
		events:    publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *reelService) Add(ctx context.Context, input *model.ReelCreate) (*model.ReelView, error) {
	if input == nil {
		return nil, apperrors.InvalidInput("Request body is required")
	}

	input.URL = sanitizer.NormalizeURL(input.URL)
	input.Title = sanitizer.NormalizeText(input.Title)
	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Reel validation failed", "error", err)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, apperrors.Validation("Reel validation failed", map[string]any{"fields": verrs})
		}
		return nil, apperrors.Validation("Reel validation failed", map[string]any{"error": err.Error()})
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Internal("Failed to generate reel ID", err)
	}

	reel := &model.Reel{
		ID:        id.String(),
		URL:       input.URL,
		Title:     input.Title,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.Create(ctx, reel); err != nil {
		s.cfg.Log.Error("Failed to create reel", "id", reel.ID, "error", err)
		return nil, apperrors.Internal("Failed to create reel", err)
	}
	s.cache.Invalidate(ctx)

	view := s.view(reel)
	s.cfg.Log.Info("Reel added successfully",
		"id", reel.ID,
		"embeddable", view.EmbedURL != "",
	)
	metrics.IncReel("add")
	s.events.Publish(ctx, events.NewReelCreated(reel))
	return view, nil
}

func (s *reelService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reelserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Reel", id)
		}
		s.cfg.Log.Error("Failed to delete reel", "id", id, "error", err)
		return apperrors.Internal("Failed to delete reel", err)
	}
	s.cache.Invalidate(ctx)

	s.cfg.Log.Info("Reel deleted successfully", "id", id)
	metrics.IncReel("delete")
	s.events.Publish(ctx, events.NewReelDeleted(id))
	return nil
}

// List returns every reel, newest first. Reels without an embeddable link
// are included with an empty embed_url.
func (s *reelService) List(ctx context.Context) ([]*model.ReelView, error) {
	reels, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*model.ReelView, 0, len(reels))
	for _, r := range reels {
		views = append(views, s.view(r))
	}
	return views, nil
}

func (s *reelService) Embeds(ctx context.Context) ([]*model.ReelView, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*model.ReelView, 0, len(all))
	for _, v := range all {
		if v.EmbedURL != "" {
			views = append(views, v)
		}
	}
	return views, nil
}

// load reads through the cache. The generation is taken before the store
// read, so a listing that raced a write is cached under a stale generation.
func (s *reelService) load(ctx context.Context) ([]*model.Reel, error) {
	reels, gen, ok := s.cache.Get(ctx)
	if ok {
		return reels, nil
	}

	reels, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list reels", "error", err)
		return nil, apperrors.Internal("Failed to retrieve reels", err)
	}
	s.cache.Set(ctx, gen, reels)
	return reels, nil
}

func (s *reelService) view(r *model.Reel) *model.ReelView {
	v := &model.ReelView{Reel: *r}
	if embedURL, ok := s.embedder.URL(r.URL); ok {
		v.EmbedURL = embedURL
	}
	return v
}
