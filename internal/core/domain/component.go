package domain

// Document is the parsed, structured representation of one component source
// file. The orchestration core never interprets it; it is cloned and handed
// to the generator as-is.
type Document map[string]any

// Clone returns a deep copy of the document. Nested maps and slices are
// copied recursively so that no mutation of the copy is visible through d.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Document:
		return val.Clone()
	case map[string]any:
		return map[string]any(Document(val).Clone())
	case []any:
		if val == nil {
			return val
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		if val == nil {
			return val
		}
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []byte:
		if val == nil {
			return val
		}
		out := make([]byte, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}

// Component pairs a discovered source path with its parsed description.
type Component struct {
	// Path is the slash separated source path relative to the glob base.
	Path string
	// Doc is the parsed description.
	Doc Document
}

// Clone returns a deep copy of the component.
func (c Component) Clone() Component {
	return Component{Path: c.Path, Doc: c.Doc.Clone()}
}

// CloneComponents deep copies every component in the slice.
func CloneComponents(components []Component) []Component {
	out := make([]Component, len(components))
	for i, c := range components {
		out[i] = c.Clone()
	}
	return out
}
