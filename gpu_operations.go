package blackhole

import (
	"image"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	// glfw
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

type GpuState struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration

	blitPipeline *wgpu.RenderPipeline
	sampler      *wgpu.Sampler

	frameTexture *wgpu.Texture
	frameView    *wgpu.TextureView
	blitGroup    *wgpu.BindGroup
	frameW       int
	frameH       int
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // wgpu owns the surface, not OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func pollEvents() {
	glfw.PollEvents()
}

func createGpuState(s *WindowState) *GpuState {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(s.windowGlfw))
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		panic(err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		panic(err)
	}
	queue := device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(s.WindowWidth),
		Height:      uint32(s.WindowHeight),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &surfaceConfig)

	state := &GpuState{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         queue,
		surfaceConfig: &surfaceConfig,
	}
	state.blitPipeline = createBlitPipeline(state)

	state.sampler, err = device.CreateSampler(&wgpu.SamplerDescriptor{
		MinFilter:     wgpu.FilterModeLinear,
		MagFilter:     wgpu.FilterModeLinear,
		MaxAnisotropy: 1,
	})
	if err != nil {
		panic(err)
	}
	return state
}

// blitWGSL stretches whatever is in the frame texture over the window.
// The traced image is smaller than the surface when the render scale is
// below 1; the linear sampler hides the difference.
const blitWGSL = `
struct VSOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_main(@builtin(vertex_index) vi: u32) -> VSOut {
    var out: VSOut;
    let x = f32(i32(vi) - 1);
    let y = f32(i32(vi & 1u) * 2 - 1);
    out.pos = vec4<f32>(x * 3.0, y * 3.0, 0.0, 1.0);
    out.uv = vec2<f32>(x * 1.5 + 0.5, 0.5 - y * 1.5);
    return out;
}

@group(0) @binding(0) var frame: texture_2d<f32>;
@group(0) @binding(1) var frameSampler: sampler;

@fragment
fn fs_main(in: VSOut) -> @location(0) vec4<f32> {
    return textureSample(frame, frameSampler, in.uv);
}
`

func createBlitPipeline(gpuState *GpuState) *wgpu.RenderPipeline {
	shader, err := gpuState.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Blit",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: blitWGSL},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	pipeline, err := gpuState.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    gpuState.surfaceConfig.Format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		panic(err)
	}
	return pipeline
}

// ensureFrameTexture reallocates the upload texture and its bind group
// whenever the traced frame size changes.
func (g *GpuState) ensureFrameTexture(w, h int) {
	if w == g.frameW && h == g.frameH {
		return
	}
	if g.frameTexture != nil {
		g.blitGroup.Release()
		g.frameView.Release()
		g.frameTexture.Release()
	}

	var err error
	g.frameTexture, err = g.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Frame",
		Size:          wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	g.frameView, err = g.frameTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	layout := g.blitPipeline.GetBindGroupLayout(0)
	defer layout.Release()
	g.blitGroup, err = g.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: g.frameView},
			{Binding: 1, Sampler: g.sampler},
		},
	})
	if err != nil {
		panic(err)
	}
	g.frameW, g.frameH = w, h
}

// uploadFrame pushes an RGBA image into the frame texture.
func (g *GpuState) uploadFrame(img *image.RGBA, logger Logger) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	g.ensureFrameTexture(w, h)

	err := g.queue.WriteTexture(
		g.frameTexture.AsImageCopy(),
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(img.Stride),
			RowsPerImage: uint32(h),
		},
		&wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)
	if err != nil {
		logger.Errorf("WriteTexture failed: %v", err)
	}
}

// resizeSurface reconfigures the swapchain after a window resize.
func (g *GpuState) resizeSurface(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if uint32(w) == g.surfaceConfig.Width && uint32(h) == g.surfaceConfig.Height {
		return
	}
	g.surfaceConfig.Width = uint32(w)
	g.surfaceConfig.Height = uint32(h)
	g.surface.Configure(g.adapter, g.device, g.surfaceConfig)
}

// present blits the frame texture onto the next swapchain image.
func (g *GpuState) present(logger Logger) {
	nextTexture, err := g.surface.GetCurrentTexture()
	if err != nil {
		logger.Errorf("GetCurrentTexture failed: %v", err)
		return
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		logger.Errorf("CreateView failed: %v", err)
		return
	}
	defer view.Release()

	encoder, err := g.device.CreateCommandEncoder(nil)
	if err != nil {
		logger.Errorf("CreateCommandEncoder failed: %v", err)
		return
	}
	defer encoder.Release()

	rPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	rPass.SetPipeline(g.blitPipeline)
	rPass.SetBindGroup(0, g.blitGroup, nil)
	rPass.Draw(3, 1, 0, 0)
	if err := rPass.End(); err != nil {
		logger.Errorf("render pass End failed: %v", err)
		return
	}
	rPass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		logger.Errorf("encoder Finish failed: %v", err)
		return
	}
	defer cmd.Release()

	g.queue.Submit(cmd)
	g.surface.Present()
}
