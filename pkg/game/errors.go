package game

import "fmt"

// AssetLoadError is returned when an image referenced by the game
// configuration cannot be resolved, read or decoded.
//
// Frontends treat it as fatal: the scene is never built and the update
// loop never starts.
type AssetLoadError struct {
	Ref  string // resource ID or path as requested (e.g. "IMAGE_PLANE")
	Path string // resolved file path, empty if the ID was unknown
	Err  error
}

func (e *AssetLoadError) Error() string {
	if e.Path == "" || e.Path == e.Ref {
		return fmt.Sprintf("failed to load asset %s: %v", e.Ref, e.Err)
	}
	return fmt.Sprintf("failed to load asset %s (%s): %v", e.Ref, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
