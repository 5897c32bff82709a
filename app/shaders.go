package app

import "dasa.cc/learngl/glw"

// DefaultVertexShader passes attribute location 0 through as clip position.
const DefaultVertexShader glw.VertSrc = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
  gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// DefaultFragmentShader colors every fragment with uniform ourColor.
const DefaultFragmentShader glw.FragSrc = `#version 330 core
out vec4 FragColor;
uniform vec4 ourColor;
void main()
{
  FragColor = ourColor;
}
`

// ColorUniform is the vec4 uniform set each frame.
const ColorUniform = "ourColor"
