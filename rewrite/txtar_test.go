package rewrite_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/xctools/isofix/rewrite"
)

var writeTxtarGolden = flag.Bool("write-txtar-golden", false, "If true, writes out golden files in txtar archives")

func TestTxtarTransform(t *testing.T) {
	txtarFiles, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("failed to find txtar files in testdata: %v", err)
	}
	if len(txtarFiles) == 0 {
		t.Skip("no txtar files found")
	}

	for _, txtarFile := range txtarFiles {
		t.Run(filepath.Base(txtarFile), func(t *testing.T) {
			runTxtarTest(t, txtarFile)
		})
	}
}

// runTxtarTest transforms the archive's input.swift and compares it against
// golden.swift. With -write-txtar-golden the golden entry is rewritten in
// place instead.
func runTxtarTest(t *testing.T, txtarFile string) {
	archive, err := txtar.ParseFile(txtarFile)
	if err != nil {
		t.Fatalf("failed to parse txtar file %s: %v", txtarFile, err)
	}

	inputIdx, goldenIdx := -1, -1
	for i, file := range archive.Files {
		switch file.Name {
		case "input.swift":
			inputIdx = i
		case "golden.swift":
			goldenIdx = i
		}
	}
	if inputIdx == -1 {
		t.Fatalf("%s has no input.swift", txtarFile)
	}

	got := rewrite.Transform(string(archive.Files[inputIdx].Data))

	if *writeTxtarGolden {
		if goldenIdx == -1 {
			archive.Files = append(archive.Files, txtar.File{Name: "golden.swift"})
			goldenIdx = len(archive.Files) - 1
		}
		archive.Files[goldenIdx].Data = []byte(got)
		if err := os.WriteFile(txtarFile, txtar.Format(archive), 0644); err != nil {
			t.Fatalf("failed to write updated txtar file %s: %v", txtarFile, err)
		}
		t.Logf("wrote updated txtar file: %s", txtarFile)
		return
	}

	if goldenIdx == -1 {
		t.Fatalf("%s has no golden.swift (run with -write-txtar-golden to create it)", txtarFile)
	}
	want := string(archive.Files[goldenIdx].Data)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transform() mismatch for %s (-want +got):\n%s", txtarFile, diff)
	}
}
