package offline

import "testing"

func TestBucketNames(t *testing.T) {
	if got := staticBucketName("v1.0.0"); got != "recipebox-static-v1.0.0" {
		t.Errorf("staticBucketName = %s", got)
	}
	if got := dynamicBucketName("v1.0.0"); got != "recipebox-dynamic-v1.0.0" {
		t.Errorf("dynamicBucketName = %s", got)
	}
}

func TestIsStaticAsset(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/index.html", true},
		{"/style.css", true},
		{"/icons/icon-192x192.png", true},
		{"/images/photo.JPG", true},
		{"/vendor/lib.js", true},
		{"/api/recipes", false},
		{"/recipes/42", false},
		{"/about", false},
	}
	for _, tc := range cases {
		if got := isStaticAsset(tc.path); got != tc.want {
			t.Errorf("isStaticAsset(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestManifestCoversTheShell(t *testing.T) {
	found := false
	for _, asset := range StaticAssets {
		if asset == RootDocument {
			found = true
		}
	}
	if !found {
		t.Errorf("manifest does not include the app shell %s", RootDocument)
	}
}
