// Package snapshot maps between compiled test files and the golden snapshot
// files that live next to their authored TypeScript sources.
//
// Test runners see compiled tests (lib/test/foo/bar.test.js) while snapshots
// belong beside the source (test/foo/__snapshots__/bar.test.ts.snap). The
// two transforms are pure and take both roots explicitly; RenderResolver
// turns a pair of roots into the resolver module the test runner loads.
package snapshot
