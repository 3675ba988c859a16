package repository

import (
	"context"
	"sync"

	reelserrors "dreamshoots/internal/reels/errors"
	"dreamshoots/pkg/model"
)

type memoryReelRepository struct {
	mu    sync.RWMutex
	byID  map[string]*model.Reel
	order []string
}

func NewMemoryReelRepository() ReelRepository {
	return &memoryReelRepository{
		byID: make(map[string]*model.Reel),
	}
}

func (r *memoryReelRepository) Create(ctx context.Context, reel *model.Reel) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[reel.ID]; exists {
		return reelserrors.ErrDuplicateID
	}

	stored := *reel
	r.byID[reel.ID] = &stored
	r.order = append(r.order, reel.ID)
	return nil
}

func (r *memoryReelRepository) FindAll(ctx context.Context) ([]*model.Reel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	reels := make([]*model.Reel, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out := *r.byID[r.order[i]]
		reels = append(reels, &out)
	}
	return reels, nil
}

func (r *memoryReelRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return reelserrors.ErrNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
