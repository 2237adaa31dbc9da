// Package testutil provides a stand-in renderer executable for tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Environment variables understood by the fake renderer.
const (
	EnvArgsFile = "CARDFORGE_FAKE_ARGS"
	EnvFailOn   = "CARDFORGE_FAKE_FAIL_ON"
)

const fakeRendererScript = `#!/bin/sh
out=""
prev=""
for a in "$@"; do
  if [ "$prev" = "-o" ]; then out="$a"; fi
  prev="$a"
done
if [ -n "$` + EnvArgsFile + `" ]; then
  printf '%s\n' "$@" >> "$` + EnvArgsFile + `"
  echo "--" >> "$` + EnvArgsFile + `"
fi
case "$out" in
  *"$` + EnvFailOn + `"*)
    if [ -n "$` + EnvFailOn + `" ]; then
      echo "ERROR: Parser error in file card.scad, line 3" >&2
      exit 3
    fi
    ;;
esac
echo "solid card" > "$out"
`

// FakeRenderer writes a shell script that behaves like the renderer:
// it records its arguments to $CARDFORGE_FAKE_ARGS, writes the -o file, and
// exits 3 when the output path contains $CARDFORGE_FAKE_FAIL_ON.
// Tests using it are skipped on Windows.
func FakeRenderer(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake renderer is a POSIX shell script")
	}

	path := filepath.Join(t.TempDir(), "fake-openscad")
	if err := os.WriteFile(path, []byte(fakeRendererScript), 0755); err != nil {
		t.Fatalf("failed to write fake renderer: %v", err)
	}
	return path
}
