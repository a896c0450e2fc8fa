package gen

import (
	"flag"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-generator/internal/analyze"
	"collection-generator/internal/registry"
	"collection-generator/internal/resolve"
)

var update = flag.Bool("update", false, "rewrite golden files")

const testPkgPath = "example.com/game"

func namedType(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: testPkgPath, Name: name},
		Kind: analyze.TypeKindStruct,
	}
}

func pointerTo(elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: elem}
}

// testShape models:
//
//	type GameAssets struct {
//		Atlas  TextureAtlas   // contextual
//		Audio  AudioSettings  // default via ApplyDefault
//		Window *WindowConfig  // zero-value default, pointer
//		Flags  RenderFlags    // zero-value default, value
//	}
func testShape() *analyze.StructShape {
	return &analyze.StructShape{
		ID:      analyze.TypeID{PkgPath: testPkgPath, Name: "GameAssets"},
		PkgName: "game",
		Pos:     token.Position{Filename: "/work/game/collection.go", Line: 5, Column: 1},
		Fields: []analyze.FieldDecl{
			{Name: "Atlas", Type: namedType("TextureAtlas"), Index: 0},
			{Name: "Audio", Type: namedType("AudioSettings"), Index: 1},
			{Name: "Window", Type: pointerTo(namedType("WindowConfig")), Index: 2},
			{Name: "Flags", Type: namedType("RenderFlags"), Index: 3},
		},
	}
}

func testRegistry() *registry.Registry {
	reg := registry.New()
	reg.AddContextual(analyze.TypeID{PkgPath: testPkgPath, Name: "TextureAtlas"})
	reg.AddIntrinsicDefault(analyze.TypeID{PkgPath: testPkgPath, Name: "AudioSettings"}, true)
	reg.AddIntrinsicDefault(analyze.TypeID{PkgPath: testPkgPath, Name: "WindowConfig"}, false)
	reg.AddIntrinsicDefault(analyze.TypeID{PkgPath: testPkgPath, Name: "RenderFlags"}, false)

	return reg.Freeze()
}

func satisfiedVerdicts(shape *analyze.StructShape) []resolve.FieldVerdict {
	return []resolve.FieldVerdict{
		{Field: shape.Fields[0], Verdict: resolve.VerdictContextualConstructor},
		{Field: shape.Fields[1], Verdict: resolve.VerdictIntrinsicDefault},
		{Field: shape.Fields[2], Verdict: resolve.VerdictIntrinsicDefault},
		{Field: shape.Fields[3], Verdict: resolve.VerdictIntrinsicDefault},
	}
}

func TestEmitGeneratesConstructor(t *testing.T) {
	emitter := NewEmitter(testRegistry(), DefaultConfig())
	shape := testShape()

	file, diags, err := emitter.Emit(shape, satisfiedVerdicts(shape))
	require.NoError(t, err)
	require.Empty(t, diags)
	require.NotNil(t, file)

	assert.Equal(t, "/work/game", file.Dir)
	assert.Equal(t, "game_assets_collection.go", file.Filename)

	goldenPath := filepath.Join("testdata", "game_assets_collection.go.golden")

	if *update {
		require.NoError(t, os.WriteFile(goldenPath, file.Content, 0o644))
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err)

	assert.Equal(t, string(want), string(file.Content))
}

func TestEmitDeterministic(t *testing.T) {
	emitter := NewEmitter(testRegistry(), DefaultConfig())
	shape := testShape()

	first, _, err := emitter.Emit(shape, satisfiedVerdicts(shape))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, _, err := emitter.Emit(shape, satisfiedVerdicts(shape))
		require.NoError(t, err)
		assert.Equal(t, string(first.Content), string(again.Content))
	}
}

func TestEmitAllOrNothing(t *testing.T) {
	emitter := NewEmitter(testRegistry(), DefaultConfig())
	shape := testShape()

	// One unsatisfied field suppresses the whole constructor, including the
	// three fields that resolved fine.
	verdicts := satisfiedVerdicts(shape)
	verdicts[2].Verdict = resolve.VerdictUnsatisfied

	file, diags, err := emitter.Emit(shape, verdicts)
	require.NoError(t, err)
	assert.Nil(t, file)
	require.Len(t, diags, 1)

	assert.Equal(t, "Window", diags[0].FieldName)
	assert.Equal(t, "game.GameAssets", diags[0].Collection)
}

func TestEmitSingleUnregisteredField(t *testing.T) {
	// A collection whose only field has a type nobody registered yields
	// exactly one diagnostic and no code.
	shape := &analyze.StructShape{
		ID:      analyze.TypeID{PkgPath: testPkgPath, Name: "Lonely"},
		PkgName: "game",
		Pos:     token.Position{Filename: "/work/game/lonely.go", Line: 3, Column: 1},
		Fields: []analyze.FieldDecl{
			{Name: "NoDefault", Type: namedType("Opaque"), Index: 0},
		},
	}

	emitter := NewEmitter(testRegistry(), DefaultConfig())

	file, diags, err := emitter.Emit(shape, []resolve.FieldVerdict{
		{Field: shape.Fields[0], Verdict: resolve.VerdictUnsatisfied},
	})
	require.NoError(t, err)
	assert.Nil(t, file)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, "NoDefault", d.FieldName)
	assert.Contains(t, d.Message, "construct-from-context")
	assert.Contains(t, d.Message, "game.Opaque")
	assert.NotEmpty(t, d.Help)
	assert.NotEmpty(t, d.Note)
	assert.NotEmpty(t, d.Suggestion.Text)
}

func TestEmitSingleDefaultableField(t *testing.T) {
	shape := &analyze.StructShape{
		ID:      analyze.TypeID{PkgPath: testPkgPath, Name: "AudioBundle"},
		PkgName: "game",
		Pos:     token.Position{Filename: "/work/game/audio.go", Line: 3, Column: 1},
		Fields: []analyze.FieldDecl{
			{Name: "Audio", Type: namedType("AudioSettings"), Index: 0},
		},
	}

	emitter := NewEmitter(testRegistry(), DefaultConfig())

	file, diags, err := emitter.Emit(shape, []resolve.FieldVerdict{
		{Field: shape.Fields[0], Verdict: resolve.VerdictIntrinsicDefault},
	})
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.NotNil(t, file)

	assert.Equal(t, "audio_bundle_collection.go", file.Filename)
	assert.Contains(t, string(file.Content), "out.Audio.ApplyDefault()")
}

func TestEmitDiagnosticsInDeclarationOrder(t *testing.T) {
	shape := testShape()

	verdicts := satisfiedVerdicts(shape)
	verdicts[0].Verdict = resolve.VerdictUnsatisfied
	verdicts[3].Verdict = resolve.VerdictUnsatisfied

	emitter := NewEmitter(testRegistry(), DefaultConfig())

	_, diags, err := emitter.Emit(shape, verdicts)
	require.NoError(t, err)
	require.Len(t, diags, 2)

	assert.Equal(t, "Atlas", diags[0].FieldName)
	assert.Equal(t, "Flags", diags[1].FieldName)
}

func TestEmitWithoutComments(t *testing.T) {
	config := DefaultConfig()
	config.GenerateComments = false

	emitter := NewEmitter(testRegistry(), config)
	shape := testShape()

	file, _, err := emitter.Emit(shape, satisfiedVerdicts(shape))
	require.NoError(t, err)
	require.NotNil(t, file)

	content := string(file.Content)
	assert.NotContains(t, content, "zero value (registered default)")
	assert.NotContains(t, content, "// NewGameAssets constructs")
	assert.Contains(t, content, "func NewGameAssets(ctx *resource.Context) (*GameAssets, error)")
}

func TestFilenameSuffix(t *testing.T) {
	config := DefaultConfig()
	config.FileSuffix = "_gen.go"

	emitter := NewEmitter(testRegistry(), config)
	assert.Equal(t, "game_assets_gen.go", emitter.filename(testShape()))
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"GameAssets", "game_assets"},
		{"Assets", "assets"},
		{"UIOverlay", "u_i_overlay"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		if got := toSnakeCase(tt.input); got != tt.expected {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
