package projdetect

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

var nodeMarkers = []Marker{PackageJson, PackageLock, YarnLock, PnpmLock, TsConfig, NodeModules}

func detectNode(dir string, markers MarkerSet) *NodeInfo {
	if !markers.HasAny(nodeMarkers...) {
		return nil
	}

	info := &NodeInfo{
		PackageManager: packageManagerFor(markers),
		IsTypeScript:   markers.Has(TsConfig),
		ModuleType:     ModuleUnknown,
	}

	if !markers.Has(PackageJson) {
		return info
	}

	contents, err := os.ReadFile(filepath.Join(dir, string(PackageJson)))
	if err != nil || !gjson.ValidBytes(contents) {
		return info
	}

	if gjson.GetBytes(contents, "dependencies.typescript").Exists() ||
		gjson.GetBytes(contents, "devDependencies.typescript").Exists() {
		info.IsTypeScript = true
	}

	switch gjson.GetBytes(contents, "type").String() {
	case "module":
		info.ModuleType = ModuleESM
	case "", "commonjs":
		info.ModuleType = ModuleCommonJS
	default:
		info.ModuleType = ModuleUnknown
	}

	info.PackageName = gjson.GetBytes(contents, "name").String()
	info.PackageVersion = gjson.GetBytes(contents, "version").String()

	return info
}

// Lockfile precedence is fixed: yarn wins over pnpm, pnpm over npm. A bare
// package.json without any lockfile is treated as npm.
func packageManagerFor(markers MarkerSet) PackageManager {
	switch {
	case markers.Has(YarnLock):
		return Yarn
	case markers.Has(PnpmLock):
		return Pnpm
	case markers.Has(PackageLock), markers.Has(PackageJson):
		return Npm
	}

	return NoManager
}
