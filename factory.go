package ns

// invoke calls factory with callArgs followed by the default arguments, bound to the
// configured context. The registry lock is not held while the factory runs, so it may
// resolve its own dependencies from the same registry.
func (r *Registry) invoke(factory Factory, callArgs []any) (any, error) {
	r.mu.Lock()
	receiver := r.config.Context
	args := make([]any, 0, len(callArgs)+len(r.config.Arguments))
	args = append(args, callArgs...)
	args = append(args, r.config.Arguments...)
	r.mu.Unlock()

	return factory(receiver, args...)
}
