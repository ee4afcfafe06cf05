// Package provider defines the boundary between the orchestration core
// and the concrete transports that enumerate and delete resources.
package provider

import (
	"context"

	"github.com/sweepr-io/sweepr/internal/resource"
)

// Provider exposes one deletable resource collection. Implementations
// are scoped to a session (organization, project, region) at
// construction; the scope argument of List selects a sub-collection
// where the kind has one (a subscription id, a parent pipeline id) and
// is ignored otherwise.
//
// Providers whose deletes complete asynchronously additionally
// implement StatusPoller.
type Provider interface {
	List(ctx context.Context, scope string) ([]resource.Ref, error)
	Delete(ctx context.Context, ref resource.Ref) (*Operation, error)
}

// StatusPoller is implemented by providers whose Delete can return an
// unfinished Operation.
type StatusPoller interface {
	PollStatus(ctx context.Context, op *Operation) (Status, error)
}

// Operation is the result of one delete call. Done means the delete
// completed synchronously; otherwise Handle identifies the in-flight
// operation for PollStatus.
type Operation struct {
	Done   bool
	Handle string
}

// Status is one observation of a long-running delete.
type Status struct {
	// Phase is the provider-reported state, surfaced to the operator
	// as transitions occur.
	Phase string

	// Terminal means no further transition will occur.
	Terminal bool

	// Failed qualifies a terminal status; Reason carries the
	// provider's opaque failure text.
	Failed bool
	Reason string
}
