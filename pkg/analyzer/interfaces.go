package analyzer

import "igunfollow/pkg/compare"

// Extractor defines the interface for reading usernames out of export files
type Extractor interface {
	Name() string
	ExtractFile(path string) (compare.Set, error)
	ExtractFiles(paths ...string) (compare.Set, error)
}
