package offline

import (
	"path"
	"strings"
)

// CachePrefix is the leading segment of every bucket this controller owns.
// Activation uses it to tell "mine, but stale" apart from "not mine".
const CachePrefix = "recipebox"

// DefaultVersion tags buckets with the currently deployed app version. A new
// deploy bumps this, which makes install populate fresh buckets and
// activation sweep the old ones.
const DefaultVersion = "v1.0.0"

// RootDocument is the app shell served to offline navigations.
const RootDocument = "/index.html"

// StaticAssets is the build-time manifest of app-shell paths. Install fails
// unless every one of them can be fetched.
var StaticAssets = []string{
	"/",
	"/index.html",
	"/style.css",
	"/script.js",
	"/manifest.json",
	"/icons/icon-192x192.png",
	"/icons/icon-512x512.png",
	"/icons/apple-touch-icon.png",
	"/icons/favicon-32x32.png",
	"/icons/favicon-16x16.png",
}

var staticExtensions = map[string]bool{
	".css":         true,
	".js":          true,
	".png":         true,
	".jpg":         true,
	".ico":         true,
	".svg":         true,
	".webmanifest": true,
	".woff2":       true,
}

func staticBucketName(version string) string {
	return CachePrefix + "-static-" + version
}

func dynamicBucketName(version string) string {
	return CachePrefix + "-dynamic-" + version
}

// isStaticAsset reports whether a path belongs to the app shell: either
// listed in the manifest or carrying a recognized static file extension.
func isStaticAsset(p string) bool {
	for _, asset := range StaticAssets {
		if p == asset {
			return true
		}
	}
	return staticExtensions[strings.ToLower(path.Ext(p))]
}
