package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "Scene.JSON")
	if err := os.WriteFile(scenePath, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := NewResource(scenePath, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.IsRemote() {
		t.Fatal("expected local resource")
	}
	if res.Name() != "Scene.JSON" || res.Ext() != ".json" {
		t.Fatalf("expected name Scene.JSON with ext .json; got %q and %q", res.Name(), res.Ext())
	}

	data, err := io.ReadAll(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected file contents to be read back; got %q", data)
	}
}

func TestLocalRelativeResource(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "meshes"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scene.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "meshes", "cube.obj"), []byte("v 0 0 0"), 0o644); err != nil {
		t.Fatal(err)
	}

	parent, err := NewResource(filepath.Join(dir, "scene.json"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer parent.Close()

	child, err := NewResource("meshes/cube.obj", parent)
	if err != nil {
		t.Fatal(err)
	}
	defer child.Close()

	if child.Ext() != ".obj" {
		t.Fatalf("expected .obj extension; got %q", child.Ext())
	}
}

func TestHttpResource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scene.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.FileServer(http.Dir(dir)))
	defer server.Close()

	res, err := NewResource(server.URL+"/scene.json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()
	if !res.IsRemote() {
		t.Fatal("expected remote resource")
	}

	fetchUrl := server.URL + "/file-not-found.foo"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = NewResource(fetchUrl, nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestRemoteRelativeResources(t *testing.T) {
	var requested []string
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		switch r.URL.Path {
		case "/scenes/room.json", "/scenes/meshes/teapot.obj":
			w.Write([]byte("OK"))
		default:
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	res1, err := NewResource(server.URL+"/scenes/room.json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res1.Close()
	res2, err := NewResource("meshes/teapot.obj", res1)
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Close()

	if len(requested) != 2 || requested[1] != "/scenes/meshes/teapot.obj" {
		t.Fatalf("expected relative resource to resolve against the parent URL; requests: %v", requested)
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "resource: unsupported scheme 'gopher'"
	_, err := NewResource("gopher://digging.obj", nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestResourceFromStream(t *testing.T) {
	res := NewResourceFromStream("inline.obj", strings.NewReader("v 1 2 3"))
	defer res.Close()

	if res.Path() != "inline.obj" || res.Ext() != ".obj" || res.IsRemote() {
		t.Fatalf("unexpected stream resource metadata: path %q ext %q", res.Path(), res.Ext())
	}
}
