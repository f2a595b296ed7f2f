package meshes_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samer-Gassouma/aeon-generator/internal/meshes"
)

func TestDetect_KeywordPriority(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        meshes.Kind
	}{
		{
			name:        "axe keyword",
			description: "A brutal iron battle axe with flame",
			want:        meshes.KindAxe,
		},
		{
			name:        "blade counts as sword",
			description: "a shadow blade of whispers",
			want:        meshes.KindSword,
		},
		{
			name:        "blade outranks axe",
			description: "an axe with a blade of ice",
			want:        meshes.KindSword,
		},
		{
			name:        "case insensitive",
			description: "CRYSTAL Orb Of Frost",
			want:        meshes.KindOrb,
		},
		{
			name:        "hammer maps to mace",
			description: "a thunder hammer",
			want:        meshes.KindMace,
		},
		{
			name:        "scepter maps to wand",
			description: "a royal scepter of light",
			want:        meshes.KindWand,
		},
		{
			name:        "unknown defaults to sword",
			description: "a mysterious trinket",
			want:        meshes.KindSword,
		},
		{
			name:        "empty defaults to sword",
			description: "",
			want:        meshes.KindSword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, meshes.Detect(tt.description))
		})
	}
}

func TestDetect_Deterministic(t *testing.T) {
	const description = "A brutal iron battle axe with flame"

	first := meshes.Detect(description)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, meshes.Detect(description))
	}
}

func TestRender_HeaderAndBody(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	kind, content := meshes.Render("A brutal iron battle axe with flame", now)
	assert.Equal(t, meshes.KindAxe, kind)

	lines := strings.Split(content, "\n")
	require.Greater(t, len(lines), 6)
	assert.Equal(t, "# AEON Weapon Model - Generated by AI", lines[0])
	assert.Equal(t, "# Description: A brutal iron battle axe with flame", lines[1])
	assert.Equal(t, "# Weapon Type: axe", lines[2])
	assert.Equal(t, "# Generated: 2025-03-14 09:26:53", lines[3])

	assert.Contains(t, content, meshes.Body(meshes.KindAxe))
	assert.True(t, strings.HasSuffix(content, "\n"))
}

func TestBody_UnknownKindFallsBackToSword(t *testing.T) {
	assert.Equal(t, meshes.Body(meshes.KindSword), meshes.Body(meshes.Kind("flail")))
}

func TestBody_AllKindsAreValidOBJ(t *testing.T) {
	kinds := []meshes.Kind{
		meshes.KindSword, meshes.KindAxe, meshes.KindStaff, meshes.KindDagger,
		meshes.KindMace, meshes.KindShield, meshes.KindOrb, meshes.KindWand,
	}

	for _, kind := range kinds {
		body := meshes.Body(kind)
		assert.True(t, strings.HasPrefix(body, "# "), "kind %s missing title comment", kind)
		assert.Contains(t, body, "\nv ", "kind %s has no vertices", kind)
		assert.Contains(t, body, "\nf ", "kind %s has no faces", kind)
	}
}
