package shader

// MaxPointLights is the size of the pointLights uniform array.
const MaxPointLights = 4

// ────────────────────────────────── headers ──────────────────────────────────

const headerGL = `#version 410 core
`

const headerGLES = `#version 300 es
precision highp float;
precision highp int;
`

// ────────────────────────────────── scene ────────────────────────────────────

const sceneVertexBody = `
layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec3 inNormal;
layout (location = 2) in vec2 inTexCoord;

out vec3 fragmentPosition;
out vec3 fragmentVertexNormal;
out vec2 fragmentTextureCoordinate;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main()
{
    vec4 world = model * vec4(inPosition, 1.0);
    fragmentPosition = world.xyz;
    fragmentVertexNormal = mat3(transpose(inverse(model))) * inNormal;
    fragmentTextureCoordinate = inTexCoord;
    gl_Position = projection * view * world;
}
`

// Phong shading with one directional light and up to four point lights.
// Flat color and texture are mutually exclusive per draw (bUseTexture).
const sceneFragmentBody = `
struct Material {
    vec3  ambientColor;
    float ambientStrength;
    vec3  diffuseColor;
    vec3  specularColor;
    float shininess;
};

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

#define MAX_POINT_LIGHTS 4

in vec3 fragmentPosition;
in vec3 fragmentVertexNormal;
in vec2 fragmentTextureCoordinate;

out vec4 outFragmentColor;

uniform bool      bUseTexture;
uniform bool      bUseLighting;
uniform vec4      objectColor;
uniform sampler2D objectTexture;
uniform vec2      UVscale;
uniform vec3      viewPosition;
uniform Material  material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[MAX_POINT_LIGHTS];

vec3 calcDirectionalLight(DirectionalLight light, vec3 normal, vec3 viewDir, vec3 base)
{
    vec3 lightDir = normalize(-light.direction);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));
    vec3 ambient = light.ambient * material.ambientColor * material.ambientStrength;
    vec3 diffuse = light.diffuse * diff * material.diffuseColor;
    vec3 specular = light.specular * spec * material.specularColor;
    return (ambient + diffuse) * base + specular;
}

vec3 calcPointLight(PointLight light, vec3 normal, vec3 viewDir, vec3 base)
{
    vec3 lightDir = normalize(light.position - fragmentPosition);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));
    float distance = length(light.position - fragmentPosition);
    float attenuation = 1.0 / (1.0 + 0.09 * distance + 0.032 * distance * distance);
    vec3 ambient = light.ambient * material.ambientColor * material.ambientStrength;
    vec3 diffuse = light.diffuse * diff * material.diffuseColor;
    vec3 specular = light.specular * spec * material.specularColor;
    return ((ambient + diffuse) * base + specular) * attenuation;
}

void main()
{
    vec4 base = objectColor;
    if (bUseTexture) {
        base = texture(objectTexture, fragmentTextureCoordinate * UVscale);
    }

    if (!bUseLighting) {
        outFragmentColor = base;
        return;
    }

    vec3 normal = normalize(fragmentVertexNormal);
    vec3 viewDir = normalize(viewPosition - fragmentPosition);
    vec3 result = vec3(0.0);
    if (directionalLight.bActive) {
        result += calcDirectionalLight(directionalLight, normal, viewDir, base.rgb);
    }
    for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
        if (pointLights[i].bActive) {
            result += calcPointLight(pointLights[i], normal, viewDir, base.rgb);
        }
    }
    outFragmentColor = vec4(result, base.a);
}
`

// ────────────────────────────────── blit ─────────────────────────────────────

const blitVertexBody = `
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

const blitFragmentBody = `
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, frag_uv); }
`

// ────────────────────────────────── Public API ───────────────────────────────

func header(isGLES bool) string {
	if isGLES {
		return headerGLES
	}
	return headerGL
}

// SceneVertexShader returns the lit scene vertex shader.
func SceneVertexShader(isGLES bool) string {
	return header(isGLES) + sceneVertexBody
}

// SceneFragmentShader returns the lit scene fragment shader.
func SceneFragmentShader(isGLES bool) string {
	return header(isGLES) + sceneFragmentBody
}

// BlitVertexShader returns the fullscreen-quad vertex shader.
func BlitVertexShader(isGLES bool) string {
	return header(isGLES) + blitVertexBody
}

// BlitFragmentShader copies u_texture to the bound framebuffer.
func BlitFragmentShader(isGLES bool) string {
	if isGLES {
		return headerGLES + "precision mediump sampler2D;\n" + blitFragmentBody
	}
	return headerGL + blitFragmentBody
}
