// Package version compares release versions of the client and server.
package version

import "github.com/Masterminds/semver/v3"

// Dev is the version reported by builds without release ldflags.
const Dev = "dev"

// Compare returns -1, 0, or 1 based on comparing a vs b.
// Dev is considered greater than any release; non-semver strings fall back
// to string comparison and sort after semver ones.
func Compare(a, b string) int {
	if a == Dev && b == Dev {
		return 0
	}
	if a == Dev {
		return 1
	}
	if b == Dev {
		return -1
	}

	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}

	// Semver wins over non-semver in sorting
	if errA == nil {
		return -1
	}
	if errB == nil {
		return 1
	}

	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Compatible reports whether two release versions share a major version.
// Dev builds are compatible with everything.
func Compatible(a, b string) (bool, error) {
	if a == Dev || b == Dev {
		return true, nil
	}
	va, err := semver.NewVersion(a)
	if err != nil {
		return false, err
	}
	vb, err := semver.NewVersion(b)
	if err != nil {
		return false, err
	}
	return va.Major() == vb.Major(), nil
}
