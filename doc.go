// Package ns provides a keypath namespace registry.
//
// A Registry holds a tree of nested containers addressed by delimiter-separated
// keypaths such as "app.services.mailer". Reading a keypath returns whatever
// lives there, creating empty containers for every missing segment along the way.
// Writing a keypath either merges a record into the container found there or
// replaces the slot with the given value.
//
// # Values
//
// Register classifies the value it receives:
//   - Container or map[string]any: merged key by key into the existing container
//   - Factory: invoked first, its result is classified again
//   - anything else: stored as-is, replacing the previous slot content
//
// Factories receive the caller's extra arguments followed by the registry's
// default arguments, and the configured context as receiver:
//
//	reg := ns.New(ns.WithArguments(db), ns.WithContext(appCtx))
//	_, err := reg.Register("services.users", func(recv any, args ...any) (any, error) {
//	    return newUserService(args...), nil
//	}, cache)
//
// # Default registry
//
// Package-level Resolve, Register and Configure operate on the registry returned
// by Default. SetDefault installs another registry into that slot and
// Registry.NoConflict gives the slot back to its previous occupant.
package ns
