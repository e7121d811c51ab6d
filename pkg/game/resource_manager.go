package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"path/filepath"
	"sort"

	"github.com/decker502/planewar/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrUnknownResource is wrapped by AssetLoadError when a resource ID is not
// declared in the resource configuration.
var ErrUnknownResource = errors.New("resource ID not declared")

// ReadFileFunc reads a resource by its project-relative path.
type ReadFileFunc func(path string) ([]byte, error)

// ResourceManager is responsible for centralized management of image assets.
//
// It is engine-agnostic: images are decoded into image.Image and each
// frontend converts them into its own texture type (the Ebitengine renderer
// caches *ebiten.Image, the terminal renderer caches an average colour).
//
// The ResourceManager implements the following key features:
//   - YAML resource configuration (resource ID -> file path)
//   - Image loading and caching (PNG/JPEG)
//   - Cheap size lookups via image.DecodeConfig for the stage
//   - Typed AssetLoadError for every failure
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All calls are expected from the
// game-loop goroutine.
type ResourceManager struct {
	readFile    ReadFileFunc
	imageCache  map[string]image.Image // Decoded images: path -> Image
	sizeCache   map[string]image.Point // Image sizes: path -> (w, h)
	config      *ResourceConfig        // Parsed YAML configuration
	resourceMap map[string]string      // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates a ResourceManager reading through readFile.
// A nil readFile reads from the embedded package.
//
// Example:
//
//	rm := NewResourceManager(nil)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	img, err := rm.LoadImage("IMAGE_PLANE")
func NewResourceManager(readFile ReadFileFunc) *ResourceManager {
	if readFile == nil {
		readFile = embedded.ReadFile
	}
	return &ResourceManager{
		readFile:    readFile,
		imageCache:  make(map[string]image.Image),
		sizeCache:   make(map[string]image.Point),
		resourceMap: make(map[string]string),
	}
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
// It replaces any previously loaded configuration.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config %s (%d images)", configPath, len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_PLANE -> assets/images/plane.png
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
		}
	}
}

// ResolvePath maps a resource reference to a file path.
//
// References containing a path separator or an extension are treated as
// paths and returned unchanged; anything else must be a declared resource ID.
func (rm *ResourceManager) ResolvePath(ref string) (string, error) {
	if path, ok := rm.resourceMap[ref]; ok {
		return path, nil
	}
	if filepath.Ext(ref) != "" || filepath.Base(ref) != ref {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownResource, ref)
}

// LoadImage decodes an image by resource ID or path and caches it.
// The same image.Image is returned for repeated calls.
func (rm *ResourceManager) LoadImage(ref string) (image.Image, error) {
	path, err := rm.ResolvePath(ref)
	if err != nil {
		return nil, &AssetLoadError{Ref: ref, Err: err}
	}

	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	data, err := rm.readFile(path)
	if err != nil {
		return nil, &AssetLoadError{Ref: ref, Path: path, Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &AssetLoadError{Ref: ref, Path: path, Err: fmt.Errorf("decode: %w", err)}
	}

	rm.imageCache[path] = img
	b := img.Bounds()
	rm.sizeCache[path] = image.Pt(b.Dx(), b.Dy())
	return img, nil
}

// GetImage returns a previously loaded image, or nil.
func (rm *ResourceManager) GetImage(ref string) image.Image {
	path, err := rm.ResolvePath(ref)
	if err != nil {
		return nil
	}
	return rm.imageCache[path]
}

// ImageSize returns the pixel size of an image without fully decoding it
// when it has not been loaded yet.
func (rm *ResourceManager) ImageSize(ref string) (int, int, error) {
	path, err := rm.ResolvePath(ref)
	if err != nil {
		return 0, 0, &AssetLoadError{Ref: ref, Err: err}
	}

	if size, ok := rm.sizeCache[path]; ok {
		return size.X, size.Y, nil
	}

	data, err := rm.readFile(path)
	if err != nil {
		return 0, 0, &AssetLoadError{Ref: ref, Path: path, Err: err}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, &AssetLoadError{Ref: ref, Path: path, Err: fmt.Errorf("decode config: %w", err)}
	}

	rm.sizeCache[path] = image.Pt(cfg.Width, cfg.Height)
	return cfg.Width, cfg.Height, nil
}

// LoadResourceGroup decodes every image of a group.
// It stops at the first failure so startup fails fast.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImage(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	log.Printf("[ResourceManager] Loaded group %s (%d images)", groupName, len(group.Images))
	return nil
}

// ImageIDs returns all declared image IDs in sorted order.
func (rm *ResourceManager) ImageIDs() []string {
	ids := make([]string, 0, len(rm.resourceMap))
	for id := range rm.resourceMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
