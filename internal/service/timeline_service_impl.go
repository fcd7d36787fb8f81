package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
	"github.com/rowanveldt/chronolane/internal/repository"
)

type timelineService struct {
	repo     repository.TimelineRepo
	observer Observer
}

func NewTimelineService(repo repository.TimelineRepo, observers ...Observer) TimelineService {
	return &timelineService{
		repo:     repo,
		observer: observerOrNoop(observers),
	}
}

func (s *timelineService) Fetch(ctx context.Context, opts repository.FetchOptions) (*domain.Snapshot, error) {
	start := time.Now()

	if opts.ProjectID == "" {
		err := errors.New("project id is required")
		s.emit(ctx, "fetch", opts.ProjectID, start, err)
		return nil, err
	}

	snap, err := s.repo.LoadSnapshot(ctx, opts)
	if err != nil {
		err = fmt.Errorf("loading timeline for project %s: %w", opts.ProjectID, err)
	}
	s.emit(ctx, "fetch", opts.ProjectID, start, err)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *timelineService) Save(ctx context.Context, projectID string, snap *domain.Snapshot) error {
	start := time.Now()

	if snap == nil {
		err := errors.New("nothing to save")
		s.emit(ctx, "save", projectID, start, err)
		return err
	}

	err := s.repo.EnsureProject(ctx, projectID, projectID)
	if err == nil {
		err = s.repo.SaveSnapshot(ctx, projectID, snap)
	}
	if err != nil {
		err = fmt.Errorf("saving timeline for project %s: %w", projectID, err)
	}
	s.emit(ctx, "save", projectID, start, err)
	return err
}

func (s *timelineService) AddItem(ctx context.Context, projectID string, item *domain.Item) error {
	start := time.Now()

	if item == nil || item.Title == "" {
		err := errors.New("item title is required")
		s.emit(ctx, "add_item", projectID, start, err)
		return err
	}

	err := s.repo.EnsureProject(ctx, projectID, projectID)
	if err == nil {
		err = s.repo.CreateItem(ctx, projectID, item)
	}
	if err != nil {
		err = fmt.Errorf("creating item %q: %w", item.Title, err)
	}
	s.emit(ctx, "add_item", projectID, start, err)
	return err
}

func (s *timelineService) emit(ctx context.Context, name, projectID string, start time.Time, err error) {
	s.observer.ObserveOp(ctx, OpEvent{
		Name:      name,
		ProjectID: projectID,
		Duration:  time.Since(start),
		Err:       err,
	})
}
