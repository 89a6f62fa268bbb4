package snapshot

import (
	"path"
	"strings"
)

const (
	// SnapshotDir is the directory segment snapshots are stored under.
	SnapshotDir = "__snapshots__"

	compiledExt = ".js"
	sourceExt   = ".ts"
)

// Roots holds the two root paths the transforms are parameterized by, each
// relative to the common ancestor of the source and compiled test trees.
type Roots struct {
	SourceTestRoot   string
	CompiledTestRoot string
}

// ToSnapshotPath maps a compiled test file to the snapshot path next to its
// TypeScript source. The first occurrence of the compiled root that starts
// and ends on a path segment boundary is replaced with the source root.
func ToSnapshotPath(roots Roots, testPath, ext string) (string, error) {
	idx := indexSegment(testPath, roots.CompiledTestRoot)
	if idx < 0 {
		return "", &MalformedPathError{Path: testPath, Missing: roots.CompiledTestRoot, Reason: "compiled test root not found"}
	}
	sourcePath := testPath[:idx] + roots.SourceTestRoot + testPath[idx+len(roots.CompiledTestRoot):]

	dir, file := path.Split(sourcePath)
	base := strings.TrimSuffix(file, compiledExt)
	return dir + SnapshotDir + "/" + base + sourceExt + ext, nil
}

// ToTestPath maps a snapshot path back to the compiled test file it was
// derived from. The first segment-aligned occurrence of the source root in
// the directory is replaced with the compiled root.
//
// ToTestPath(ToSnapshotPath(p)) == p for compiled test paths; the reverse
// composition does not hold in general.
func ToTestPath(roots Roots, snapshotPath, ext string) (string, error) {
	dir, file := path.Split(snapshotPath)

	suffix := sourceExt + ext
	if !strings.HasSuffix(file, suffix) {
		return "", &MalformedPathError{Path: snapshotPath, Missing: suffix, Reason: "snapshot suffix not found"}
	}
	base := strings.TrimSuffix(file, suffix) + compiledExt

	trimmed := strings.TrimSuffix(dir, "/")
	if path.Base(trimmed) != SnapshotDir {
		return "", &MalformedPathError{Path: snapshotPath, Missing: SnapshotDir, Reason: "snapshot directory not found"}
	}
	dir = strings.TrimSuffix(trimmed, SnapshotDir)

	idx := indexSegment(dir, roots.SourceTestRoot)
	if idx < 0 {
		return "", &MalformedPathError{Path: snapshotPath, Missing: roots.SourceTestRoot, Reason: "source test root not found"}
	}
	dir = dir[:idx] + roots.CompiledTestRoot + dir[idx+len(roots.SourceTestRoot):]

	return dir + base, nil
}

// indexSegment returns the index of the first occurrence of root in s that
// is bounded by "/" or the ends of s on both sides, or -1.
func indexSegment(s, root string) int {
	if root == "" {
		return -1
	}
	for from := 0; from <= len(s)-len(root); {
		i := strings.Index(s[from:], root)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(root)
		if (i == 0 || s[i-1] == '/') && (end == len(s) || s[end] == '/') {
			return i
		}
		from = i + 1
	}
	return -1
}

// CommonRoots expresses both test directories relative to their longest
// common ancestor. Paths are cleaned first; "test" and "lib/test" share the
// project root and come back unchanged.
func CommonRoots(sourceTestDir, compiledTestDir string) Roots {
	src := splitClean(sourceTestDir)
	out := splitClean(compiledTestDir)

	n := 0
	for n < len(src) && n < len(out) && src[n] == out[n] {
		n++
	}
	// Keep at least one segment on each side so neither root is empty.
	if n == len(src) || n == len(out) {
		if n > 0 {
			n--
		}
	}

	return Roots{
		SourceTestRoot:   strings.Join(src[n:], "/"),
		CompiledTestRoot: strings.Join(out[n:], "/"),
	}
}

func splitClean(p string) []string {
	p = strings.Trim(path.Clean(p), "/")
	if p == "" || p == "." {
		return nil
	}
	return strings.Split(p, "/")
}

// ConsistencyCheckPath is the sample compiled test path the test runner
// feeds through both resolver functions at startup.
func ConsistencyCheckPath(roots Roots) string {
	return roots.CompiledTestRoot + "/some/example.test" + compiledExt
}
