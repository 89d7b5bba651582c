// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version
// information for the embers demo.
package version

import "fmt"

// These variables define the application version and follow the semantic
// versioning 2.0.0 spec (https://semver.org/).
var (
	// Version is the application version.  It is defined as a variable so it
	// can be overridden during the build process with:
	// '-ldflags "-X github.com/emberlab/embers/internal/version.Version=fullsemver"'
	// if needed.
	Version = "0.3.0-pre"

	// BuildMetadata defines additional build metadata.  It is modified at
	// link time for official releases.
	BuildMetadata = "dev"
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	if BuildMetadata == "" {
		return Version
	}
	return fmt.Sprintf("%s+%s", Version, BuildMetadata)
}
