// Package source provides the catalog loading backends: the compiled-in
// dataset, YAML files on disk, and the surrounding application's SQLite
// rule and RACC tables.
//
// Every backend implements Source and returns a Dataset that the
// catalog package validates at construction time. Loading is the only
// phase allowed to fail hard; once a catalog is built it is immutable.
package source
