package browse

import (
	"context"
	"time"

	"github.com/shopgrid/catalog-browser/internal/model"
)

// Fetcher is the retrieval collaborator: whatever obtains the product
// catalog (HTTP client, local file, test stub). The browse service depends
// only on this contract.
type Fetcher interface {
	// FetchAll returns the full product catalog. The returned slice is owned
	// by the caller; implementations must not retain or mutate it.
	FetchAll(ctx context.Context) ([]model.Product, error)
}

// Browser defines the interface for the browse service as consumed by the UI.
type Browser interface {
	SetUpdateCallback(func(model.ViewState))
	Refresh()
	Search(query string)
	State() model.ViewState

	// SetFetchTimeout sets the per-fetch deadline
	SetFetchTimeout(timeout time.Duration)

	// SetFailureMessage sets the stable user-presentable text carried by the
	// Error state (e.g. a localized string)
	SetFailureMessage(message string)
}
