package triangle

// NewScene builds everything a frame draws, in bootstrap order: shader
// modules for cfg.Shader, the vertex buffer (plus the index buffer for
// the strip topology) and the pipeline targeting the context format.
func NewScene(c *Context, cfg Config) (*Scene, error) {
	set, err := LookupShaderSet(cfg.Shader)
	if err != nil {
		return nil, err
	}
	vs, fs, err := ResolveShaders(c.device, set)
	if err != nil {
		return nil, err
	}

	s := &Scene{ClearColor: cfg.ClearColor, vs: vs, fs: fs}
	s.Vertices, err = UploadVertices(c.device, "triangle vertices", 0, TriangleVertices[:])
	if err != nil {
		s.Release()
		return nil, err
	}
	if cfg.Topology == TopologyStrip {
		s.Indices, err = UploadIndices(c.device, "triangle indices", 0, TriangleIndices[:])
		if err != nil {
			s.Release()
			return nil, err
		}
	}

	s.Pipeline, err = NewPipeline(c.device, PipelineDesc{
		Vertex:   vs,
		Fragment: fs,
		Layout:   TriangleLayout(),
		Topology: cfg.Topology,
		Format:   c.format,
	})
	if err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// Release frees every GPU object the scene owns.
func (s *Scene) Release() {
	if s == nil {
		return
	}
	s.Pipeline.Release()
	s.Indices.Release()
	s.Vertices.Release()
	s.fs.Release()
	s.vs.Release()
}
