package memload

import (
	"fmt"

	"github.com/bft-labs/memload/pkg/bridge"
	"github.com/bft-labs/memload/pkg/bundle"
	"github.com/bft-labs/memload/pkg/ingest"
	"github.com/bft-labs/memload/pkg/log"
	"github.com/bft-labs/memload/pkg/registry"
)

// Version is the current version of the memload module.
const Version = "1.0.0"

// moduleVersion pairs a sub-module's version with its minimum compatible one.
type moduleVersion struct {
	version    string
	minVersion string
}

func moduleVersions() map[string]moduleVersion {
	return map[string]moduleVersion{
		"registry": {registry.Version, registry.MinCompatibleVersion},
		"ingest":   {ingest.Version, ingest.MinCompatibleVersion},
		"bridge":   {bridge.Version, bridge.MinCompatibleVersion},
		"bundle":   {bundle.Version, bundle.MinCompatibleVersion},
		"log":      {log.Version, log.MinCompatibleVersion},
	}
}

// ModuleVersions returns the version of every sub-module.
func ModuleVersions() map[string]string {
	out := make(map[string]string)
	for name, m := range moduleVersions() {
		out[name] = m.version
	}
	return out
}

// validateModuleVersions checks that all module versions are compatible.
func validateModuleVersions() error {
	for name, m := range moduleVersions() {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}
	return nil
}

// isVersionCompatible checks if version >= minVersion.
// Versions are in "major.minor.patch" format.
func isVersionCompatible(version, minVersion string) bool {
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}
