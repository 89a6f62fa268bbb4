// Package tsconfig composes TypeScript compiler configuration from ordered,
// possibly-overlapping fragments.
//
// A Fragment carries include and exclude globs plus a compilerOptions
// mapping. Merge folds fragments left to right: globs concatenate in order
// with duplicates kept, options merge one level deep with later fragments
// winning. Nothing here reads or writes files; Render only produces bytes
// for a writer to persist.
package tsconfig
