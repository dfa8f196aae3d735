package ns

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultDelimiter separates keypath segments unless WithDelimiter overrides it.
const DefaultDelimiter = "."

// slot addresses exactly one location inside the registry tree.
// parent is nil when the keypath addresses the root itself.
type slot struct {
	parent Container
	key    string
	value  any
}

// splitKeypath returns the segments of keypath up to, not including, the first empty one.
// An empty keypath or one made only of delimiters yields no segments.
func splitKeypath(keypath, delimiter string) []string {
	if keypath == "" {
		return nil
	}

	segments := strings.Split(keypath, delimiter)
	for i, segment := range segments {
		if segment == "" {
			return segments[:i]
		}
	}

	return segments
}

// resolve walks the keypath from the root, creating an empty container for every missing segment.
// The last segment stops at whatever value is already there.
//
// resolve must be called with r.mu held.
func (r *Registry) resolve(keypath string) (slot, error) {
	segments := splitKeypath(keypath, r.config.Delimiter)
	current := slot{parent: nil, key: "", value: r.root}

	for i, segment := range segments {
		container, isContainer := asContainer(current.value)
		if !isContainer {
			blocked := strings.Join(segments[:i], r.config.Delimiter)

			return slot{}, fmt.Errorf("%w: %q", ErrNotContainer, blocked)
		}

		value, exists := container[segment]
		if !exists {
			value = Container{}
			container[segment] = value

			r.logger.Debug("container created",
				slog.String("keypath", strings.Join(segments[:i+1], r.config.Delimiter)))
		}

		current = slot{parent: container, key: segment, value: value}
	}

	return current, nil
}
