package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"
)

// DefaultExtension is the snapshot file extension used by jest.
const DefaultExtension = ".snap"

//go:embed resolver.js.tmpl
var resolverTemplate string

var resolverTmpl = template.Must(template.New("resolver").Funcs(template.FuncMap{
	"quote": quoteJS,
}).Parse(resolverTemplate))

type resolverData struct {
	Roots                Roots
	ConsistencyCheckPath string
	SnapshotDir          string
	SourceExt            string
	CompiledExt          string
}

// RenderResolver renders the snapshot resolver module for roots. The module
// exports resolveSnapshotPath, resolveTestPath and
// testPathForConsistencyCheck. Rendering fails if the consistency-check path
// does not survive a round trip through ToSnapshotPath and ToTestPath, or if
// a root is empty.
func RenderResolver(roots Roots) ([]byte, error) {
	if roots.SourceTestRoot == "" || roots.CompiledTestRoot == "" {
		return nil, fmt.Errorf("resolver roots must not be empty: %+v", roots)
	}
	check := ConsistencyCheckPath(roots)
	snap, err := ToSnapshotPath(roots, check, DefaultExtension)
	if err != nil {
		return nil, fmt.Errorf("resolver consistency check failed: %w", err)
	}
	back, err := ToTestPath(roots, snap, DefaultExtension)
	if err != nil {
		return nil, fmt.Errorf("resolver consistency check failed: %w", err)
	}
	if back != check {
		return nil, fmt.Errorf("resolver consistency check failed: %q resolved back to %q", check, back)
	}

	var buf bytes.Buffer
	err = resolverTmpl.Execute(&buf, resolverData{
		Roots:                roots,
		ConsistencyCheckPath: check,
		SnapshotDir:          SnapshotDir,
		SourceExt:            sourceExt,
		CompiledExt:          compiledExt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render snapshot resolver: %w", err)
	}
	return buf.Bytes(), nil
}

// quoteJS renders s as a JavaScript string literal.
func quoteJS(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
