package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	mockUsecase "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T, catalog usecase.CatalogUsecase, updates chan usecase.SearchState) *Searcher {
	s := NewSearcher(context.Background(), SearcherParams{
		Catalog:       catalog,
		Debounce:      40 * time.Millisecond,
		EmptyDebounce: 10 * time.Millisecond,
		PageSize:      50,
		Logger:        testLogger(),
		OnUpdate: func(state usecase.SearchState) {
			updates <- state
		},
	})
	t.Cleanup(s.Close)

	return s
}

func waitUpdate(t *testing.T, updates chan usecase.SearchState) usecase.SearchState {
	t.Helper()
	select {
	case state := <-updates:
		return state
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no search update")
	}

	return usecase.SearchState{}
}

func productPage(skus ...string) *entity.ProductPage {
	items := make([]entity.Product, 0, len(skus))
	for _, sku := range skus {
		items = append(items, entity.Product{SKU: sku})
	}

	return &entity.ProductPage{Items: items, Pagination: entity.Pagination{Page: 1, Total: len(items), TotalPages: 1}}
}

func TestSearcher_KeystrokeBurstDispatchesOnce(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	updates := make(chan usecase.SearchState, 4)
	s := newTestSearcher(t, catalog, updates)

	catalog.EXPECT().Search(mock.Anything, "ABC", 1, 50).Return(productPage("ABC-1"), nil).Once()

	s.Submit("A")
	s.Submit("AB")
	s.Submit("ABC")

	state := waitUpdate(t, updates)
	assert.Equal(t, "ABC", state.Query)
	assert.False(t, state.Loading)
	assert.Equal(t, uint64(1), state.Sequence)
	require.Len(t, state.Items, 1)
	assert.Equal(t, "ABC-1", state.Items[0].SKU)

	// No late dispatch for the superseded keystrokes
	select {
	case extra := <-updates:
		assert.Failf(t, "unexpected update", "%+v", extra)
	case <-time.After(120 * time.Millisecond):
	}
}

func TestSearcher_StaleResponseIsDropped(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	updates := make(chan usecase.SearchState, 4)
	s := newTestSearcher(t, catalog, updates)

	release := make(chan struct{})
	catalog.EXPECT().
		Search(mock.Anything, "", 2, 50).
		RunAndReturn(func(context.Context, string, int, int) (*entity.ProductPage, error) {
			<-release

			return productPage("SLOW"), nil
		}).
		Once()
	catalog.EXPECT().Search(mock.Anything, "", 3, 50).Return(productPage("FAST"), nil).Once()

	s.Page(2, 0)
	time.Sleep(20 * time.Millisecond)
	s.Page(3, 0)

	state := waitUpdate(t, updates)
	require.Len(t, state.Items, 1)
	assert.Equal(t, "FAST", state.Items[0].SKU)
	assert.Equal(t, uint64(2), state.Sequence)

	close(release)
	time.Sleep(50 * time.Millisecond)

	snapshot := s.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "FAST", snapshot.Items[0].SKU)
	assert.Equal(t, uint64(2), snapshot.Sequence)
	assert.Empty(t, updates)
}

func TestSearcher_PageCancelsPendingKeystroke(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	updates := make(chan usecase.SearchState, 4)
	s := newTestSearcher(t, catalog, updates)

	catalog.EXPECT().Search(mock.Anything, "winch", 2, 10).Return(productPage("P2"), nil).Once()

	s.Submit("winch")
	s.Page(2, 10)

	state := waitUpdate(t, updates)
	assert.Equal(t, "P2", state.Items[0].SKU)
	assert.Equal(t, "winch", state.Query)

	select {
	case extra := <-updates:
		assert.Failf(t, "unexpected update", "%+v", extra)
	case <-time.After(120 * time.Millisecond):
	}
}

func TestSearcher_FailureShowsEmptyPage(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	updates := make(chan usecase.SearchState, 4)
	s := newTestSearcher(t, catalog, updates)

	catalog.EXPECT().Search(mock.Anything, "", 1, 50).Return(nil, assert.AnError).Once()

	s.Submit("")

	state := waitUpdate(t, updates)
	assert.NotNil(t, state.Items)
	assert.Empty(t, state.Items)
	assert.Equal(t, 1, state.Pagination.Page)
}

func TestSearcher_CloseStopsPendingDispatch(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	updates := make(chan usecase.SearchState, 4)
	s := newTestSearcher(t, catalog, updates)

	s.Submit("winch")
	s.Close()
	s.Submit("winches")

	select {
	case extra := <-updates:
		assert.Failf(t, "unexpected update", "%+v", extra)
	case <-time.After(120 * time.Millisecond):
	}
	assert.Equal(t, uint64(0), s.Snapshot().Sequence)
}
