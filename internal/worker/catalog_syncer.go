package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vominhduc11/dealerhub/internal/adapter/catalog"
	"github.com/vominhduc11/dealerhub/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the syncer.
type StorefrontFacade interface {
	FetchCatalog(ctx context.Context) ([]model.Product, error)
	StoreProduct(ctx context.Context, product model.Product) error
}

// CatalogSyncer periodically pulls the external product feed and mirrors it
// into storage concurrently.
type CatalogSyncer struct {
	facade       StorefrontFacade
	syncInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Product
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCatalogSyncer constructs catalog syncer worker pool.
func NewCatalogSyncer(facade StorefrontFacade, syncInterval time.Duration, batchSize, workers int, logger *slog.Logger) *CatalogSyncer {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &CatalogSyncer{
		facade:       facade,
		syncInterval: syncInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Product, batchSize*workers),
	}
}

// Start launches background processing.
func (s *CatalogSyncer) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *CatalogSyncer) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *CatalogSyncer) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	s.fetchAndDispatch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx)
		}
	}
}

func (s *CatalogSyncer) fetchAndDispatch(ctx context.Context) {
	products, err := s.facade.FetchCatalog(ctx)
	if err != nil {
		switch e := err.(type) {
		case catalog.TooManyRequestsError:
			s.logger.Warn("catalog feed rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, catalog.ErrFeedEmpty) {
				return
			}
			s.logger.Error("catalog fetch failed", slog.String("error", err.Error()))
		}
		return
	}

	if len(products) > s.batchSize {
		products = products[:s.batchSize]
	}
	for _, product := range products {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- product:
		}
	}
}

func (s *CatalogSyncer) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case product, ok := <-s.jobs:
			if !ok {
				return
			}
			if err := s.facade.StoreProduct(ctx, product); err != nil {
				s.logger.Error("store product failed", slog.String("product", product.ID), slog.String("error", err.Error()))
			}
		}
	}
}
