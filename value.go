package ns

import (
	"log/slog"
	"maps"
)

// Container is a namespace node of the registry tree.
// Plain map[string]any values are accepted wherever a Container is expected.
type Container map[string]any

// Factory lazily produces the value stored at a keypath.
// The receiver is the registry context; args are the caller's extra arguments
// followed by the registry default arguments.
type Factory func(receiver any, args ...any) (any, error)

// asContainer reports whether value can be descended into or merged into.
func asContainer(value any) (Container, bool) {
	switch typed := value.(type) {
	case Container:
		return typed, typed != nil
	case map[string]any:
		return Container(typed), typed != nil
	default:
		return nil, false
	}
}

// asRecord reports whether value should be merged rather than stored.
func asRecord(value any) (Container, bool) {
	switch typed := value.(type) {
	case Container:
		return typed, true
	case map[string]any:
		return Container(typed), true
	default:
		return nil, false
	}
}

func asFactory(value any) (Factory, bool) {
	switch typed := value.(type) {
	case Factory:
		return typed, typed != nil
	case func(any, ...any) (any, error):
		return typed, typed != nil
	default:
		return nil, false
	}
}

// apply writes value into target: records are merged into the container found there,
// everything else replaces the slot.
//
// apply must be called with r.mu held.
func (r *Registry) apply(keypath string, target slot, value any) error {
	record, isRecord := asRecord(value)
	if isRecord {
		existing, isContainer := asContainer(target.value)
		if isContainer {
			maps.Copy(existing, record)
			r.logger.Debug("record merged", slog.String("keypath", keypath), slog.Int("keys", len(record)))

			return nil
		}

		fresh := make(Container, len(record))
		maps.Copy(fresh, record)
		value = fresh
	}

	if target.parent == nil {
		return ErrRootSlot
	}

	target.parent[target.key] = value
	r.logger.Debug("value replaced", slog.String("keypath", keypath))

	return nil
}
