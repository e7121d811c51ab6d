package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  battle:
//	    images:
//	      - id: IMAGE_PLANE
//	        path: images/plane.png
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of images that are loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
}

// ImageResource is a single image definition.
// Path is relative to base_path; ".png" is appended when it has no extension.
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// buildFullPath joins the base path and a resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
