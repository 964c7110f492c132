package shader

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrLayoutMismatch is returned when the vertex and fragment stages of a pipeline
// disagree on their inter-stage interface, or when host-side data disagrees with
// the layout declared in shader source.
var ErrLayoutMismatch = errors.New("shader layout mismatch")

var (
	// vertexReturnRegex captures the return type expression of the @vertex entry function.
	// The parameter list may carry nested parens from @location/@builtin attributes.
	vertexReturnRegex = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+\w+\s*\((?:[^()]|\([^()]*\))*\)\s*->\s*([^{]+?)\s*\{`)

	// fragmentParamsRegex captures the parameter list of the @fragment entry function,
	// balancing one level of parens so @location(N) attributes stay inside the capture.
	fragmentParamsRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+\w+\s*\(((?:[^()]|\([^()]*\))*)\)`)
)

// wgslTypeAliasMap maps WGSL predeclared vector shorthands to their canonical spelling
// so that inter-stage types compare equal regardless of which form a shader uses.
var wgslTypeAliasMap = map[string]string{
	"vec2f": "vec2<f32>",
	"vec3f": "vec3<f32>",
	"vec4f": "vec4<f32>",
	"vec2i": "vec2<i32>",
	"vec3i": "vec3<i32>",
	"vec4i": "vec4<i32>",
	"vec2u": "vec2<u32>",
	"vec3u": "vec3<u32>",
	"vec4u": "vec4<u32>",
}

// normalizeTypeName canonicalizes a WGSL type spelling for comparison.
//
// Parameters:
//   - typeName: the WGSL type string
//
// Returns:
//   - string: the canonical spelling
func normalizeTypeName(typeName string) string {
	typeName = strings.TrimSpace(typeName)
	if canonical, ok := wgslTypeAliasMap[typeName]; ok {
		return canonical
	}
	return typeName
}

// parseStageOutputs extracts the inter-stage outputs of a vertex shader: the @location
// fields of the struct returned by the @vertex entry function. @builtin fields are not
// part of the inter-stage interface and are skipped. Returns an empty map when the
// entry function returns only a builtin value.
//
// Parameters:
//   - source: the raw WGSL source code string
//
// Returns:
//   - map[int]string: canonical WGSL type names keyed by location index
func parseStageOutputs(source string) map[int]string {
	result := make(map[int]string)
	cleaned := stripComments(source)

	match := vertexReturnRegex.FindStringSubmatch(cleaned)
	if match == nil {
		return result
	}
	returnType := strings.TrimSpace(match[1])
	if strings.HasPrefix(returnType, "@") {
		// Direct builtin return, e.g. "-> @builtin(position) vec4<f32>"
		return result
	}

	for _, ps := range parseStructBlocks(cleaned) {
		if ps.name != returnType {
			continue
		}
		for _, f := range ps.fields {
			if f.isBuiltin || f.location < 0 {
				continue
			}
			result[f.location] = normalizeTypeName(f.typeName)
		}
	}
	return result
}

// parseStageInputs extracts the inter-stage inputs of a fragment shader: the @location
// parameters of the @fragment entry function, either declared directly or via a struct
// parameter. @builtin parameters are skipped.
//
// Parameters:
//   - source: the raw WGSL source code string
//
// Returns:
//   - map[int]string: canonical WGSL type names keyed by location index
func parseStageInputs(source string) map[int]string {
	result := make(map[int]string)
	cleaned := stripComments(source)

	match := fragmentParamsRegex.FindStringSubmatch(cleaned)
	if match == nil {
		return result
	}

	structs := parseStructBlocks(cleaned)
	structsByName := make(map[string]parsedStruct, len(structs))
	for _, ps := range structs {
		structsByName[ps.name] = ps
	}

	for _, param := range splitAtTopLevelCommas(match[1]) {
		param = strings.TrimSpace(param)
		if param == "" {
			continue
		}
		if builtinRegex.MatchString(param) {
			continue
		}

		if locMatch := locationRegex.FindStringSubmatch(param); locMatch != nil {
			// Direct parameter, e.g. "@location(0) color: vec4<f32>"
			loc, err := strconv.Atoi(locMatch[1])
			if err != nil {
				continue
			}
			if fm := fieldRegex.FindStringSubmatch(param); fm != nil {
				result[loc] = normalizeTypeName(fm[2])
			}
			continue
		}

		// Struct parameter, e.g. "in: FragmentInput"
		if fm := fieldRegex.FindStringSubmatch(param); fm != nil {
			if ps, ok := structsByName[strings.TrimSpace(fm[2])]; ok {
				for _, f := range ps.fields {
					if f.isBuiltin || f.location < 0 {
						continue
					}
					result[f.location] = normalizeTypeName(f.typeName)
				}
			}
		}
	}
	return result
}

// ValidateStageInterface checks that a vertex/fragment shader pair agrees on its
// inter-stage interface: every location the fragment stage reads must be written by
// the vertex stage with an identical type. Vertex outputs the fragment stage does
// not read are permitted.
//
// Parameters:
//   - vs: the vertex shader
//   - fs: the fragment shader
//
// Returns:
//   - error: ErrLayoutMismatch (wrapped with the offending locations) on disagreement, nil otherwise
func ValidateStageInterface(vs, fs Shader) error {
	if vs == nil || fs == nil {
		return fmt.Errorf("%w: nil shader", ErrLayoutMismatch)
	}
	if vs.ShaderType() != ShaderTypeVertex {
		return fmt.Errorf("%w: %s is not a vertex shader", ErrLayoutMismatch, vs.Key())
	}
	if fs.ShaderType() != ShaderTypeFragment {
		return fmt.Errorf("%w: %s is not a fragment shader", ErrLayoutMismatch, fs.Key())
	}

	outputs := vs.StageOutputs()
	inputs := fs.StageInputs()

	locations := make([]int, 0, len(inputs))
	for loc := range inputs {
		locations = append(locations, loc)
	}
	sort.Ints(locations)

	for _, loc := range locations {
		wanted := inputs[loc]
		produced, ok := outputs[loc]
		if !ok {
			return fmt.Errorf("%w: fragment shader %s reads location %d which vertex shader %s does not write",
				ErrLayoutMismatch, fs.Key(), loc, vs.Key())
		}
		if produced != wanted {
			return fmt.Errorf("%w: location %d is %s in vertex shader %s but %s in fragment shader %s",
				ErrLayoutMismatch, loc, produced, vs.Key(), wanted, fs.Key())
		}
	}
	return nil
}

// ValidateUniformBlock checks that a host-side uniform struct matches the layout the
// shader declares for a given group and binding: the binding must exist, must be a
// uniform buffer, and its WGSL size must equal the host struct's marshalled size.
//
// Parameters:
//   - s: the shader declaring the binding
//   - group: the bind group index
//   - binding: the binding index within the group
//   - hostSize: the marshalled byte size of the host-side struct
//
// Returns:
//   - error: ErrLayoutMismatch on disagreement, nil otherwise
func ValidateUniformBlock(s Shader, group, binding int, hostSize uint64) error {
	desc, ok := s.BindGroupLayoutDescriptors()[group]
	if !ok {
		return fmt.Errorf("%w: shader %s declares no bind group %d", ErrLayoutMismatch, s.Key(), group)
	}
	for _, entry := range desc.Entries {
		if entry.Binding != uint32(binding) {
			continue
		}
		if entry.Buffer.Type != wgpu.BufferBindingTypeUniform {
			return fmt.Errorf("%w: shader %s group %d binding %d is not a uniform buffer",
				ErrLayoutMismatch, s.Key(), group, binding)
		}
		if entry.Buffer.MinBindingSize != hostSize {
			return fmt.Errorf("%w: shader %s group %d binding %d expects %d bytes, host struct is %d bytes",
				ErrLayoutMismatch, s.Key(), group, binding, entry.Buffer.MinBindingSize, hostSize)
		}
		return nil
	}
	return fmt.Errorf("%w: shader %s declares no binding %d in group %d", ErrLayoutMismatch, s.Key(), binding, group)
}
