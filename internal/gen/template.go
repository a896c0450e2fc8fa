package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"collection-generator/internal/analyze"
	"collection-generator/internal/common"
	"collection-generator/internal/registry"
	"collection-generator/internal/resolve"
)

// constructorTemplate renders the generated constructor file. Output is
// passed through go/format, so the template only has to produce parseable Go.
const constructorTemplate = `// Code generated by collection-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	"{{.Path}}"
{{- end}}
)

{{if .GenerateComments}}// {{.FunctionName}} constructs {{.StructName}} from the shared runtime context.
// Fields are constructed independently, in declaration order.
{{end -}}
func {{.FunctionName}}(ctx *resource.Context) (*{{.StructName}}, error) {
	out := &{{.StructName}}{}
{{- range .Steps}}
{{- if .Comment}}
	// {{.Comment}}
{{- end}}
{{- range .Lines}}
	{{.}}
{{- end}}
{{- end}}

	return out, nil
}
`

// templateData holds all data needed for the constructor template.
type templateData struct {
	PackageName      string
	StructName       string
	FunctionName     string
	Imports          []importSpec
	Steps            []stepData
	GenerateComments bool
}

// importSpec is one import in the generated file.
type importSpec struct {
	Path string
}

// stepData is the construction code for one field.
type stepData struct {
	Comment string
	Lines   []string
}

var constructorTmpl = template.Must(template.New("constructor").Parse(constructorTemplate))

// generateConstructor renders and formats the constructor file for a shape
// whose fields all resolved to a satisfied capability.
func (e *Emitter) generateConstructor(
	shape *analyze.StructShape,
	verdicts []resolve.FieldVerdict,
) (*GeneratedFile, error) {
	data, err := e.buildTemplateData(shape, verdicts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := constructorTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return &GeneratedFile{
		Dir:      e.outputDir(shape),
		Filename: e.filename(shape),
		Content:  formatted,
	}, nil
}

// buildTemplateData constructs the template data for one shape.
func (e *Emitter) buildTemplateData(
	shape *analyze.StructShape,
	verdicts []resolve.FieldVerdict,
) (*templateData, error) {
	data := &templateData{
		PackageName:      shape.PkgName,
		StructName:       shape.ID.Name,
		FunctionName:     "New" + shape.ID.Name,
		GenerateComments: e.config.GenerateComments,
	}

	// The constructor signature always references the resource package.
	imports := map[string]importSpec{
		registry.ResourcePkgPath: {Path: registry.ResourcePkgPath},
	}

	for _, fv := range verdicts {
		step, err := e.buildStep(shape, fv, imports)
		if err != nil {
			return nil, err
		}

		if step != nil {
			data.Steps = append(data.Steps, *step)
		}
	}

	for _, path := range common.SortedKeys(imports) {
		data.Imports = append(data.Imports, imports[path])
	}

	return data, nil
}

// buildStep builds the construction code for one field.
// Fields are constructed independently from the context, never from each other.
func (e *Emitter) buildStep(
	shape *analyze.StructShape,
	fv resolve.FieldVerdict,
	imports map[string]importSpec,
) (*stepData, error) {
	field := fv.Field
	isPointer := field.Type.Kind == analyze.TypeKindPointer

	var step stepData

	if isPointer {
		expr, err := e.typeExpr(field.Type.ElemType, shape.ID.PkgPath, imports)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		step.Lines = append(step.Lines, fmt.Sprintf("out.%s = &%s{}", field.Name, expr))
	}

	switch fv.Verdict {
	case resolve.VerdictContextualConstructor:
		imports["fmt"] = importSpec{Path: "fmt"}
		step.Lines = append(step.Lines,
			fmt.Sprintf("if err := out.%s.ConstructFromContext(ctx); err != nil {", field.Name),
			fmt.Sprintf("return nil, fmt.Errorf(\"constructing field %s: %%w\", err)", field.Name),
			"}",
		)

	case resolve.VerdictIntrinsicDefault:
		id := resolve.CapabilityTypeID(field.Type)
		if e.reg.DefaultViaMethod(id) {
			step.Lines = append(step.Lines, fmt.Sprintf("out.%s.ApplyDefault()", field.Name))
		} else if !isPointer {
			// Zero value is the registered default; nothing to assign.
			if !e.config.GenerateComments {
				return nil, nil
			}

			step.Comment = field.Name + ": zero value (registered default)."
		}

	default:
		return nil, fmt.Errorf("field %s: unexpected verdict %s", field.Name, fv.Verdict)
	}

	return &step, nil
}

// typeExpr renders a named type for use inside the collection's package,
// recording an import when the type lives elsewhere.
func (e *Emitter) typeExpr(
	t *analyze.TypeInfo,
	shapePkgPath string,
	imports map[string]importSpec,
) (string, error) {
	if t == nil || !t.IsNamed() {
		return "", fmt.Errorf("cannot name unnamed type in generated code")
	}

	if t.ID.PkgPath == "" || t.ID.PkgPath == shapePkgPath {
		return t.ID.Name, nil
	}

	imports[t.ID.PkgPath] = importSpec{Path: t.ID.PkgPath}

	return common.PkgAlias(t.ID.PkgPath) + "." + t.ID.Name, nil
}
