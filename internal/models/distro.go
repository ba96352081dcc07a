package models

// DistroConfig contains the container image metadata and mirror rewrites
// for a single distro. Entries are immutable once the registry is built.
type DistroConfig struct {
	// Base is the canonical image repository name, used as the FROM
	// reference when ImagePath is empty.
	Base string

	// BaseURL is the upstream repository URL that gets replaced.
	BaseURL string

	// MirrorURL is the default regional mirror, overridable per invocation.
	MirrorURL string

	// Pattern lists the repo-definition file globs rewritten in place.
	Pattern []string

	// Optional command blocks
	EnableCRB       bool
	EnableRPMFusion bool
	EnableEPEL      bool

	// ImagePath optionally overrides the registry/repository part of the
	// FROM reference, without tag.
	ImagePath string
}
