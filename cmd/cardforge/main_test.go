package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/aretw0/cardforge/internal/testutil"
	"github.com/aretw0/cardforge/pkg/adapters/mapping"
	"github.com/aretw0/cardforge/pkg/core"
)

// project lays out a cards.yaml, a template and a mapping in a temp dir.
func project(t *testing.T, renderer string) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "templates", "card.scad"), []byte("// card"), 0644))
	require.NoError(t, mapping.Save(filepath.Join(dir, "mapping.json"), []core.Note{
		{Name: "C", LocalizedName: "Do", FontChar: "c", StaffPosition: -1.0},
		{Name: "C#", LocalizedName: "Do#", FontChar: "", StaffPosition: -1.0},
		{Name: "A#²", LocalizedName: "La#²", FontChar: "h", StaffPosition: 1.5},
	}))

	configPath = filepath.Join(dir, "cards.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("renderer: "+renderer+"\n"), 0644))
	return dir, configPath
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, args)
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "cardforge version "), out)
}

func TestPlan_JSON(t *testing.T) {
	dir, cfg := project(t, "openscad")

	out, _, err := runCLI(t, "plan", "--config", cfg, "--json", "--test-full")
	require.NoError(t, err)

	var view planView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "representative", view.Mode)
	assert.Equal(t, 3, view.Candidates)
	assert.Equal(t, 2, view.Eligible)
	require.Len(t, view.Bases, 1)
	assert.Equal(t, filepath.Join(dir, "output", "12H_AltoC", "base.stl"), view.Bases[0].Output)
	require.Len(t, view.Reliefs, 2)
	assert.Equal(t, "A#²", view.Reliefs[1].Note)
	assert.Equal(t, filepath.Join(dir, "output", "12H_AltoC", "A_sharp_high.stl"), view.Reliefs[1].Output)
}

func TestPlan_Text(t *testing.T) {
	_, cfg := project(t, "openscad")

	out, _, err := runCLI(t, "plan", "--config", cfg, "-t")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 3 potential cards, 2 with a fingering (mode: single)")
	assert.Contains(t, out, `12H_AltoC/A#² (La#²) glyph "h"`)
	assert.NotContains(t, out, "12H_AltoC/C ")
}

func TestPlan_ExclusiveModes(t *testing.T) {
	_, cfg := project(t, "openscad")

	_, _, err := runCLI(t, "plan", "--config", cfg, "--test", "--test-full")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	dir, cfg := project(t, testutil.FakeRenderer(t))

	out, _, err := runCLI(t, "generate", "--config", cfg, "--scale", "2", "--state")
	require.NoError(t, err)
	assert.Contains(t, out, "[1/2] 12H_AltoC/C")
	assert.Contains(t, out, "[2/2] 12H_AltoC/A#²")
	assert.Contains(t, out, "Generated 2 relief files + 1 common bases")
	assert.Contains(t, out, `"phase": "done"`)
	assert.Contains(t, out, `"scale": 2`)

	for _, name := range []string{"base.stl", "C.stl", "A_sharp_high.stl"} {
		_, err := os.Stat(filepath.Join(dir, "output", "12H_AltoC", name))
		assert.NoError(t, err, name)
	}

	listed, _, err := runCLI(t, "list", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "12H_AltoC (3 files)\n  12H_AltoC/A_sharp_high.stl\n  12H_AltoC/C.stl\n  12H_AltoC/base.stl\n", listed)
}

func TestGenerate_OutputDirFlag(t *testing.T) {
	_, cfg := project(t, testutil.FakeRenderer(t))
	outDir := filepath.Join(t.TempDir(), "elsewhere")

	_, _, err := runCLI(t, "generate", "--config", cfg, "--output-dir", outDir, "--test")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "12H_AltoC", "A_sharp_high.stl"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "12H_AltoC", "C.stl"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_RendererMissing(t *testing.T) {
	dir, cfg := project(t, "cardforge-no-such-renderer")

	_, _, err := runCLI(t, "generate", "--config", cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrRendererNotFound), "got %v", err)

	_, statErr := os.Stat(filepath.Join(dir, "output"))
	assert.True(t, os.IsNotExist(statErr), "no output directory on environment errors")
}

func TestGenerate_TemplateMissing(t *testing.T) {
	dir, cfg := project(t, testutil.FakeRenderer(t))

	_, _, err := runCLI(t, "generate", "--config", cfg, "--template", filepath.Join(dir, "nope.scad"))
	assert.True(t, errors.Is(err, core.ErrTemplateNotFound), "got %v", err)
}

func TestGenerate_FontWarnings(t *testing.T) {
	dir, cfg := project(t, testutil.FakeRenderer(t))
	fontPath := filepath.Join(dir, "go.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0644))

	_, logs, err := runCLI(t, "generate", "--config", cfg, "--font-file", fontPath, "-t")
	require.NoError(t, err)
	assert.Contains(t, logs, "glyph check")
}

func TestList_NoOutput(t *testing.T) {
	_, cfg := project(t, "openscad")

	out, _, err := runCLI(t, "list", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "No output in")
}

func TestCheck(t *testing.T) {
	dir, cfg := project(t, "openscad")
	fontPath := filepath.Join(dir, "go.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0644))

	out, _, err := runCLI(t, "check", "--config", cfg, fontPath)
	require.Error(t, err, "family name differs from the variant's font name")
	assert.Contains(t, out, "12H_AltoC: font name")

	_, _, err = runCLI(t, "check", "--config", cfg)
	assert.Error(t, err)
}

func TestPlan_ModeFlag(t *testing.T) {
	_, cfg := project(t, "openscad")

	out, _, err := runCLI(t, "plan", "--config", cfg, "--mode", "single", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"mode": "single"`)

	_, _, err = runCLI(t, "plan", "--config", cfg, "--mode", "quick")
	assert.True(t, errors.Is(err, core.ErrInvalidMode), "got %v", err)

	_, _, err = runCLI(t, "plan", "--config", cfg, "--mode", "full", "--test")
	assert.Error(t, err)
}
