// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader is the vertex shader shared by all scene geometry.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader is the lighting fragment shader: directional sun,
// viewer spotlight and alpha cut-out.
//
//go:embed scene.frag
var SceneFragmentShader string
