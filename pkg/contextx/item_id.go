package contextx

import (
	"context"
	"fmt"
)

// ItemID identifies the inventory item an appraisal request is about.
type ItemID string

type contextKeyItemID struct{}

func (i ItemID) String() string {
	return string(i)
}

func WithItemID(ctx context.Context, itemID ItemID) context.Context {
	return context.WithValue(ctx, contextKeyItemID{}, itemID)
}

func ItemIDFromContext(ctx context.Context) (ItemID, error) {
	itemID, ok := ctx.Value(contextKeyItemID{}).(ItemID)
	if !ok {
		return "", fmt.Errorf("item id: %w", ErrNoValue)
	}

	return itemID, nil
}
