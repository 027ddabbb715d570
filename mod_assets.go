package blackhole

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/blackhole/rt/core"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// AssetServer owns the loaded scene data: environment cubemaps and disk
// color ramps, keyed by opaque ids.
type AssetServer struct {
	cubemaps map[AssetId]*core.Cubemap
	ramps    map[AssetId]*core.ColorRamp
}

type AssetServerModule struct{}

func (mod AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&AssetServer{
		cubemaps: map[AssetId]*core.Cubemap{},
		ramps:    map[AssetId]*core.ColorRamp{},
	})
}

// SceneLoaderModule fills SceneData from disk, falling back to the
// procedural assets when a path is empty or unreadable. Install it after
// AssetServerModule and RenderModule.
type SceneLoaderModule struct {
	SkyboxDir    string
	ColormapPath string
}

func (m SceneLoaderModule) Install(app *App, cmd *Commands) {
	server := mustResource[*AssetServer](app)
	scene := mustResource[*SceneData](app)
	logger := app.Logger()

	var env core.Environment
	if m.SkyboxDir != "" {
		if id, err := server.LoadCubemap(m.SkyboxDir); err != nil {
			logger.Warnf("skybox %s: %v, using starfield", m.SkyboxDir, err)
		} else {
			cm, _ := server.Cubemap(id)
			env = cm
		}
	}
	if env == nil {
		cm, _ := server.Cubemap(server.CreateStarfield(512, 1))
		env = cm
	}

	var ramp *core.ColorRamp
	if m.ColormapPath != "" {
		if id, err := server.LoadColorRamp(m.ColormapPath); err != nil {
			logger.Warnf("colormap %s: %v, using thermal ramp", m.ColormapPath, err)
		} else {
			ramp, _ = server.Ramp(id)
		}
	}
	if ramp == nil {
		ramp, _ = server.Ramp(server.CreateThermalRamp(64))
	}

	scene.Env = env
	scene.Ramp = ramp
}

// cubemapFaceFiles lists the face images expected inside a skybox
// directory, in cubemap face order.
var cubemapFaceFiles = [6]string{
	"px.png", "nx.png", "py.png", "ny.png", "pz.png", "nz.png",
}

// LoadCubemap reads the six face images of a skybox directory.
func (server *AssetServer) LoadCubemap(dir string) (AssetId, error) {
	var faces [6]*core.Bitmap
	for i, name := range cubemapFaceFiles {
		img, err := loadPng(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("cubemap face %s: %w", name, err)
		}
		faces[i] = bitmapFromImage(img)
	}

	cm, err := core.NewCubemap(faces)
	if err != nil {
		return "", fmt.Errorf("cubemap %s: %w", dir, err)
	}

	id := makeAssetId()
	server.cubemaps[id] = cm
	return id, nil
}

// LoadColorRamp reads a ramp texture; only its middle scanline is used.
func (server *AssetServer) LoadColorRamp(path string) (AssetId, error) {
	img, err := loadPng(path)
	if err != nil {
		return "", fmt.Errorf("color ramp %s: %w", path, err)
	}

	id := makeAssetId()
	server.ramps[id] = core.RampFromImage(img)
	return id, nil
}

func (server *AssetServer) Cubemap(id AssetId) (*core.Cubemap, bool) {
	cm, ok := server.cubemaps[id]
	return cm, ok
}

func (server *AssetServer) Ramp(id AssetId) (*core.ColorRamp, bool) {
	r, ok := server.ramps[id]
	return r, ok
}

func loadPng(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func bitmapFromImage(img image.Image) *core.Bitmap {
	bounds := img.Bounds()
	bm := core.NewBitmap(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			bm.Set(x-bounds.Min.X, y-bounds.Min.Y, mgl32.Vec3{
				float32(r) / 0xffff,
				float32(g) / 0xffff,
				float32(b) / 0xffff,
			})
		}
	}
	return bm
}
