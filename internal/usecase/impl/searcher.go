package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"
)

// SearcherParams configures a Searcher.
type SearcherParams struct {
	Catalog       usecase.CatalogUsecase
	Debounce      time.Duration
	EmptyDebounce time.Duration
	PageSize      int
	Logger        *slog.Logger

	// OnUpdate is called with every state the searcher applies, outside its lock.
	OnUpdate func(usecase.SearchState)
}

// Searcher debounces keystrokes and applies only the response of the latest dispatched request.
type Searcher struct {
	catalog       usecase.CatalogUsecase
	debounce      time.Duration
	emptyDebounce time.Duration
	pageSize      int
	logger        *slog.Logger
	onUpdate      func(usecase.SearchState)

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	timer      *time.Timer
	timerGen   uint64
	query      string
	pending    string
	dispatched uint64
	state      usecase.SearchState
	closed     bool
}

// NewSearcher creates a searcher. Requests run under ctx until Close.
func NewSearcher(ctx context.Context, params SearcherParams) *Searcher {
	ctx, cancel := context.WithCancel(ctx)

	return &Searcher{
		catalog:       params.Catalog,
		debounce:      params.Debounce,
		emptyDebounce: params.EmptyDebounce,
		pageSize:      params.PageSize,
		logger:        params.Logger,
		onUpdate:      params.OnUpdate,
		ctx:           ctx,
		cancel:        cancel,
		state:         usecase.SearchState{Items: []entity.Product{}},
	}
}

// NewConsoleSearcher creates the process-wide searcher of the console from config.
func NewConsoleSearcher(ctx context.Context, cfg *config.Config, catalog usecase.CatalogUsecase, logger *slog.Logger) usecase.CatalogSearcher {
	return NewSearcher(ctx, SearcherParams{
		Catalog:       catalog,
		Debounce:      cfg.Search.Debounce,
		EmptyDebounce: cfg.Search.EmptyDebounce,
		PageSize:      cfg.Search.PageSize,
		Logger:        logger,
	})
}

// Submit starts or restarts the debounce timer for query. A superseded timer never dispatches.
func (s *Searcher) Submit(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.stopTimerLocked()
	s.timerGen++
	gen := s.timerGen
	s.pending = query

	delay := s.debounce
	if strings.TrimSpace(query) == "" {
		delay = s.emptyDebounce
	}

	s.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.closed || gen != s.timerGen {
			s.mu.Unlock()

			return
		}
		s.timer = nil
		s.query = query
		seq := s.beginLocked(query)
		s.mu.Unlock()

		s.run(seq, query, 1, s.pageSize)
	})
}

// Page dispatches the current query for page right away. A pending keystroke is
// cancelled and its text becomes the current query.
func (s *Searcher) Page(page, pageSize int) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	if s.timer != nil {
		s.query = s.pending
	}
	s.stopTimerLocked()
	s.timerGen++
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	query := s.query
	seq := s.beginLocked(query)
	s.mu.Unlock()

	go s.run(seq, query, page, pageSize)
}

func (s *Searcher) Snapshot() usecase.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.stopTimerLocked()
	s.cancel()
}

func (s *Searcher) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// beginLocked numbers a new request and raises the loading flag.
func (s *Searcher) beginLocked(query string) uint64 {
	s.dispatched++
	s.state.Query = query
	s.state.Loading = true

	return s.dispatched
}

func (s *Searcher) run(seq uint64, query string, page, pageSize int) {
	result, err := s.catalog.Search(s.ctx, query, page, pageSize)

	s.mu.Lock()
	if seq != s.dispatched {
		s.mu.Unlock()
		s.logger.Debug("Dropping stale search response",
			slog.String("query", query),
			slog.Uint64("sequence", seq),
		)

		return
	}

	s.state.Loading = false
	s.state.Sequence = seq
	if err != nil || result == nil {
		if err != nil {
			s.logger.Warn("Search failed", slog.String("query", query), slog.Any("error", err))
		}
		s.state.Items = []entity.Product{}
		s.state.Pagination = entity.Pagination{Page: page, Limit: pageSize}
	} else {
		s.state.Items = result.Items
		s.state.Pagination = result.Pagination
	}
	state := s.snapshotLocked()
	onUpdate := s.onUpdate
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(state)
	}
}

func (s *Searcher) snapshotLocked() usecase.SearchState {
	state := s.state
	state.Items = make([]entity.Product, len(s.state.Items))
	copy(state.Items, s.state.Items)

	return state
}
