package bandwidth

import (
	"context"
	"fmt"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
)

// ListOptions selects one page of a list endpoint. Zero fields are not sent.
type ListOptions struct {
	// Page is the 1-based page index.
	Page int
	// Size is the number of items per page.
	Size int
}

// NewListOptions creates list options for the given page and size.
func NewListOptions(page, size int) *ListOptions {
	return &ListOptions{Page: page, Size: size}
}

// Validate rejects negative values.
func (o *ListOptions) Validate() error {
	if o == nil {
		return nil
	}

	if o.Page < 0 {
		return fmt.Errorf("%w: page must not be negative, got %d", ErrInvalidArgument, o.Page)
	}

	if o.Size < 0 {
		return fmt.Errorf("%w: size must not be negative, got %d", ErrInvalidArgument, o.Size)
	}

	return nil
}

// PageFunc fetches a single page.
type PageFunc[T any] func(ctx context.Context, opts *ListOptions) ([]T, error)

// CollectPages fetches pages starting at page 1 until a page holds fewer than
// size items or maxPages pages were read. A maxPages of zero uses the default cap.
func CollectPages[T any](ctx context.Context, size, maxPages int, fetch PageFunc[T]) ([]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, size)
	}

	if maxPages <= 0 {
		maxPages = constants.DefaultMaxPages
	}

	var all []T

	for page := 1; page <= maxPages; page++ {
		err := ctx.Err()
		if err != nil {
			return all, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		items, err := fetch(ctx, &ListOptions{Page: page, Size: size})
		if err != nil {
			return all, fmt.Errorf("fetching page %d: %w", page, err)
		}

		all = append(all, items...)

		if len(items) < size {
			break
		}
	}

	return all, nil
}
