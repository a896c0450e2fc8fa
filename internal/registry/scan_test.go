package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-generator/internal/analyze"
)

func TestScanExamplePackage(t *testing.T) {
	analyzer := analyze.NewAnalyzer()
	graph, err := analyzer.LoadPackages("collection-generator/examples/game")
	require.NoError(t, err)

	reg := New()
	Scan(reg, graph)

	pkg := "collection-generator/examples/game"

	// ConstructFromContext(*resource.Context) error on the pointer receiver.
	assert.True(t, reg.HasContextualConstructor(analyze.TypeID{PkgPath: pkg, Name: "TextureAtlas"}))
	assert.False(t, reg.HasIntrinsicDefault(analyze.TypeID{PkgPath: pkg, Name: "TextureAtlas"}))

	// ApplyDefault() grants a method-backed default.
	audio := analyze.TypeID{PkgPath: pkg, Name: "AudioSettings"}
	assert.True(t, reg.HasIntrinsicDefault(audio))
	assert.True(t, reg.DefaultViaMethod(audio))
	assert.False(t, reg.HasContextualConstructor(audio))

	// The directive grants a zero-value default.
	window := analyze.TypeID{PkgPath: pkg, Name: "WindowConfig"}
	assert.True(t, reg.HasIntrinsicDefault(window))
	assert.False(t, reg.DefaultViaMethod(window))

	// A plain type gains nothing.
	profiler := analyze.TypeID{PkgPath: pkg, Name: "FrameProfiler"}
	assert.False(t, reg.HasContextualConstructor(profiler))
	assert.False(t, reg.HasIntrinsicDefault(profiler))

	// Field types from imported packages are scanned through the graph too.
	handle := analyze.TypeID{PkgPath: ResourcePkgPath, Name: "Handle"}
	assert.True(t, reg.HasContextualConstructor(handle))
}
