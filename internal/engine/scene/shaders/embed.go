// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// GrassVertexShader builds blades from gl_VertexID and gl_InstanceID.
//
//go:embed grass.vert
var GrassVertexShader string

// GrassFragmentShader is the fragment shader for grass rendering.
//
//go:embed grass.frag
var GrassFragmentShader string

// GroundVertexShader is the vertex shader for ground rendering.
//
//go:embed ground.vert
var GroundVertexShader string

// GroundFragmentShader is the fragment shader for ground rendering.
//
//go:embed ground.frag
var GroundFragmentShader string

// SkyVertexShader draws a full-screen triangle.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader is the fragment shader for the sky gradient.
//
//go:embed sky.frag
var SkyFragmentShader string

// LandmarkVertexShader is the vertex shader for the landmark box.
//
//go:embed landmark.vert
var LandmarkVertexShader string

// LandmarkFragmentShader is the fragment shader for the landmark box.
//
//go:embed landmark.frag
var LandmarkFragmentShader string
