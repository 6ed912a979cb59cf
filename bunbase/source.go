package bunbase

import (
	"github.com/Masterminds/semver/v3"
)

// SourceInfo identifies the program that is producing log records.
type SourceInfo struct {
	Source           string
	SourceVersion    *semver.Version
	Namespace        string
	NamespaceVersion *semver.Version
}
