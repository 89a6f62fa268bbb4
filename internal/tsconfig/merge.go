package tsconfig

// Merge combines fragments left to right into a new fragment. Later
// fragments win.
//
//   - nil fragments are skipped.
//   - Include and Exclude are concatenated in order; duplicates are kept.
//   - Options are merged one level deep: a key in a later fragment replaces
//     the same key wholesale, nested maps are not merged.
//   - FileName is taken from the last fragment that sets it.
//
// Inputs are never modified and the result shares no slices or maps with
// them.
func Merge(fragments ...*Fragment) *Fragment {
	out := Empty()
	for _, f := range fragments {
		if f == nil {
			continue
		}
		out.Include = append(out.Include, f.Include...)
		out.Exclude = append(out.Exclude, f.Exclude...)
		for k, v := range f.Options {
			out.Options[k] = copyValue(v)
		}
		if f.FileName != "" {
			out.FileName = f.FileName
		}
	}
	return out
}

// copyValue detaches one level of nested containers from the caller's value.
func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = inner
		}
		return m
	case Options:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = inner
		}
		return m
	case []any:
		s := make([]any, len(t))
		copy(s, t)
		return s
	case []string:
		s := make([]string, len(t))
		copy(s, t)
		return s
	default:
		return v
	}
}
