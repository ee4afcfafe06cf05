package azure

import (
	"context"
	"fmt"

	"github.com/sweepr-io/sweepr/internal/azcli"
)

// Subscription is one subscription visible to the signed-in account.
type Subscription struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListSubscriptions enumerates the subscriptions the current
// credentials can reach. Used when a sweep is not pinned to a single
// subscription.
func ListSubscriptions(ctx context.Context, run azcli.CommandRunner) ([]Subscription, error) {
	var subs []Subscription
	if err := azcli.JSON(ctx, run, &subs, "account", "list"); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}
