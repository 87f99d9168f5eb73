// Package events defines the dispatcher's overflow-policy contract: the
// Handler callback invoked when an adapter's private queue rejects a
// record, and the Action the callback chooses in response.
//
// This is the spec's analogue of the teacher's handler/policy.go
// OverflowPolicy (DropNewest/DropOldest/Block) and Stats counters. The
// spec never blocks the dispatcher on a full adapter queue, so Block
// has no equivalent here — SkipNewest and DiscardOlder are the only
// two actions, matching spec.md's overflow policy exactly.
package events
