package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProductRegistry is the fixed, read-only source of catalog records.
type ProductRegistry interface {
	// All returns every record in registry order.
	All() []ProductRecord
	// ByID returns the record with the given id.
	ByID(id int) (ProductRecord, bool)
	// CategoryLabels returns the selector labels shown to visitors.
	CategoryLabels() []string
}

// InquirySink receives accepted contact inquiries.
type InquirySink interface {
	Deliver(ctx context.Context, inquiry *Inquiry) error
}
