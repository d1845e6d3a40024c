package domain

import "context"

// Service records and lists audit entries. Record never fails; an audit
// entry must not block the operation it describes.
type Service interface {
	Record(ctx context.Context, action, targetType, targetID string, metadata map[string]any)
	List(ctx context.Context, limit int) []Entry
}
