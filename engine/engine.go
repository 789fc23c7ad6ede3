// Package engine wraps the orchestration engine the manager dispatches
// against. The manager never schedules by itself: constraints are passed
// through and the engine stays the source of truth for placement outcome.
package engine

import (
	"context"
	"errors"
)

var (
	ErrPlacementNotFound  = errors.New("placement not found")
	ErrCredentialNotFound = errors.New("credential not found")
)

type NodeStatus struct {
	Hostname    string
	Ready       bool
	Schedulable bool
}

// Online reports whether the node may receive placements right now.
func (n NodeStatus) Online() bool {
	return n.Ready && n.Schedulable
}

type Mount struct {
	Source   string
	Target   string
	ReadOnly bool
}

// PlacementSpec pins a job to one node and a set of GPU uuids. The uuids are
// opaque pass-through values; the engine-side runtime interprets them.
type PlacementSpec struct {
	Name          string
	Image         string
	NodeHostname  string
	GPUUUIDs      []string
	CredentialRef string
	OwnerID       string
	Mounts        []Mount
}

type PlacementStatus struct {
	Name  string
	Phase string
	Ports []int32
}

type Engine interface {
	ListNodes(ctx context.Context) ([]NodeStatus, error)
	CreatePlacement(ctx context.Context, spec PlacementSpec) (string, error)
	GetPlacement(ctx context.Context, handle string) (PlacementStatus, error)
	RemovePlacement(ctx context.Context, handle string) error

	StoreCredential(ctx context.Context, name, blob string) (string, error)
	GetCredential(ctx context.Context, ref string) (string, error)
	RemoveCredential(ctx context.Context, ref string) error
	CredentialInUse(ctx context.Context, ref string) (bool, error)
}
