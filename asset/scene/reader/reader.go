package reader

import (
	"fmt"

	"github.com/achilleasa/whitted/asset"
	"github.com/achilleasa/whitted/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Config, error)
}

// Read a scene configuration from a local file or URL. The reader is
// selected by the resource extension.
func ReadConfig(pathToScene string) (*scene.Config, error) {
	res, err := asset.NewResource(pathToScene, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	var reader Reader
	switch res.Ext() {
	case ".json":
		reader = newJSONSceneReader()
	case ".obj":
		reader = newWavefrontSceneReader()
	default:
		return nil, fmt.Errorf("reader: unsupported scene format %q", res.Ext())
	}
	return reader.Read(res)
}

// Read and build a scene from a local file or URL.
func ReadScene(pathToScene string) (*scene.Scene, error) {
	cfg, err := ReadConfig(pathToScene)
	if err != nil {
		return nil, err
	}
	return scene.New(*cfg)
}
