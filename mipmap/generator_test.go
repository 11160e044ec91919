package mipmap_test

import (
	"bytes"
	"context"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/mipmapgen/internal/testutil"
	"github.com/srlehn/mipmapgen/mipmap"
	"github.com/srlehn/mipmapgen/resize/rez"
)

func labels(t mipmap.SizeTable) []string {
	ls := make([]string, 0, len(t))
	for _, d := range t {
		ls = append(ls, d.Label)
	}
	return ls
}

func newGenerator(t *testing.T, opts ...mipmap.Option) *mipmap.Generator {
	t.Helper()
	g, err := mipmap.New(append([]mipmap.Option{mipmap.SetOutput(io.Discard)}, opts...)...)
	require.NoError(t, err)
	return g
}

func fileCount(t *testing.T, dir string) int {
	t.Helper()
	var n int
	err := filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func assertUniform(t *testing.T, img image.Image, want [4]uint8) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := testutil.NRGBAAt(img, x, y)
			got := [4]uint8{c.R, c.G, c.B, c.A}
			for i := range got {
				if !assert.InDelta(t, want[i], got[i], 1, "pixel (%d,%d)", x, y) {
					return
				}
			}
		}
	}
}

func TestGenerateDefaultTable(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `icon-1024@1x.png`), testutil.Disc(1024, testutil.Red))
	table := mipmap.DefaultSizeTable()
	res := testutil.ResDir(t, filepath.Join(dir, `res`), labels(table)...)

	rep, err := newGenerator(t).Generate(context.Background(), src, res, table)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(1024, 1024), rep.SourceSize)
	require.Len(t, rep.Files, 2*len(table))
	assert.Equal(t, 2*len(table), fileCount(t, res))

	wantSizes := map[string]int{
		`mipmap-mdpi`:    48,
		`mipmap-hdpi`:    72,
		`mipmap-xhdpi`:   96,
		`mipmap-xxhdpi`:  144,
		`mipmap-xxxhdpi`: 192,
	}
	for label, size := range wantSizes {
		for _, name := range []string{`ic_launcher.png`, `ic_launcher_round.png`} {
			img := testutil.ReadPNG(t, filepath.Join(res, label, name))
			assert.Equal(t, image.Pt(size, size), img.Bounds().Size(), label+`/`+name)
		}
	}
}

func TestGenerateRedSquare(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Solid(1024, 1024, testutil.Red))
	res := testutil.ResDir(t, filepath.Join(dir, `res`), `mipmap-mdpi`)
	table := mipmap.SizeTable{{Label: `mipmap-mdpi`, Size: 48}}

	_, err := newGenerator(t).Generate(context.Background(), src, res, table)
	require.NoError(t, err)

	for _, name := range []string{`ic_launcher.png`, `ic_launcher_round.png`} {
		img := testutil.ReadPNG(t, filepath.Join(res, `mipmap-mdpi`, name))
		require.Equal(t, image.Pt(48, 48), img.Bounds().Size())
		assertUniform(t, img, [4]uint8{255, 0, 0, 255})
	}
}

func TestGenerateUpscale(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `small.png`), testutil.Solid(100, 100, testutil.Red))
	res := testutil.ResDir(t, filepath.Join(dir, `res`), `mipmap-xxxhdpi`)
	table := mipmap.SizeTable{{Label: `mipmap-xxxhdpi`, Size: 192}}

	_, err := newGenerator(t).Generate(context.Background(), src, res, table)
	require.NoError(t, err)
	img := testutil.ReadPNG(t, filepath.Join(res, `mipmap-xxxhdpi`, `ic_launcher.png`))
	assert.Equal(t, image.Pt(192, 192), img.Bounds().Size())
	assertUniform(t, img, [4]uint8{255, 0, 0, 255})
}

func TestGenerateIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Disc(300, testutil.Red))
	table := mipmap.DefaultSizeTable()
	res := testutil.ResDir(t, filepath.Join(dir, `res`), labels(table)...)
	g := newGenerator(t)

	rep, err := g.Generate(context.Background(), src, res, table)
	require.NoError(t, err)
	first := make(map[string][]byte)
	for _, a := range rep.Files {
		b, err := os.ReadFile(a.Path)
		require.NoError(t, err)
		first[a.Path] = b
	}

	rep, err = g.Generate(context.Background(), src, res, table)
	require.NoError(t, err)
	for _, a := range rep.Files {
		b, err := os.ReadFile(a.Path)
		require.NoError(t, err)
		assert.Equal(t, first[a.Path], b, a.Path)
	}
}

func TestRoundEqualsRegularWithoutMask(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Disc(512, testutil.Red))
	res := testutil.ResDir(t, filepath.Join(dir, `res`), `mipmap-hdpi`)

	_, err := newGenerator(t).Generate(context.Background(), src, res, mipmap.SizeTable{{Label: `mipmap-hdpi`, Size: 72}})
	require.NoError(t, err)
	regular, err := os.ReadFile(filepath.Join(res, `mipmap-hdpi`, `ic_launcher.png`))
	require.NoError(t, err)
	round, err := os.ReadFile(filepath.Join(res, `mipmap-hdpi`, `ic_launcher_round.png`))
	require.NoError(t, err)
	assert.Equal(t, regular, round)
}

func TestGenerateRoundMask(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Solid(512, 512, testutil.Red))
	res := testutil.ResDir(t, filepath.Join(dir, `res`), `mipmap-xhdpi`)

	_, err := newGenerator(t, mipmap.SetRoundMask(true)).Generate(context.Background(), src, res, mipmap.SizeTable{{Label: `mipmap-xhdpi`, Size: 96}})
	require.NoError(t, err)

	regular := testutil.ReadPNG(t, filepath.Join(res, `mipmap-xhdpi`, `ic_launcher.png`))
	round := testutil.ReadPNG(t, filepath.Join(res, `mipmap-xhdpi`, `ic_launcher_round.png`))
	require.Equal(t, image.Pt(96, 96), round.Bounds().Size())
	assert.Equal(t, uint8(255), testutil.NRGBAAt(regular, 0, 0).A)
	assert.Equal(t, uint8(0), testutil.NRGBAAt(round, 0, 0).A)
	assert.Equal(t, uint8(0), testutil.NRGBAAt(round, 95, 95).A)
	center := testutil.NRGBAAt(round, 48, 48)
	assert.Equal(t, uint8(255), center.A)
	assert.InDelta(t, 255, center.R, 1)
}

func TestGenerateSourceNotFound(t *testing.T) {
	dir := t.TempDir()
	table := mipmap.DefaultSizeTable()
	res := testutil.ResDir(t, filepath.Join(dir, `res`), labels(table)...)

	rep, err := newGenerator(t).Generate(context.Background(), filepath.Join(dir, `missing.png`), res, table)
	require.ErrorIs(t, err, mipmap.ErrSourceNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.NotNil(t, rep)
	assert.Empty(t, rep.Files)
	assert.Zero(t, fileCount(t, res))
}

func TestGenerateDecodeError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, `broken.png`)
	require.NoError(t, os.WriteFile(src, []byte(`not an image`), 0o644))
	res := testutil.ResDir(t, filepath.Join(dir, `res`), `mipmap-mdpi`)

	_, err := newGenerator(t).Generate(context.Background(), src, res, mipmap.SizeTable{{Label: `mipmap-mdpi`, Size: 48}})
	require.ErrorIs(t, err, mipmap.ErrDecode)
	assert.NotErrorIs(t, err, mipmap.ErrSourceNotFound)
	assert.Zero(t, fileCount(t, res))
}

func TestGenerateMissingDestinationKeepsEarlierFiles(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Disc(256, testutil.Red))
	table := mipmap.DefaultSizeTable()
	res := testutil.ResDir(t, filepath.Join(dir, `res`),
		`mipmap-mdpi`, `mipmap-hdpi`, `mipmap-xxhdpi`, `mipmap-xxxhdpi`) // no mipmap-xhdpi

	rep, err := newGenerator(t).Generate(context.Background(), src, res, table)
	require.ErrorIs(t, err, mipmap.ErrDestinationNotFound)
	require.Len(t, rep.Files, 4)
	for _, label := range []string{`mipmap-mdpi`, `mipmap-hdpi`} {
		assert.FileExists(t, filepath.Join(res, label, `ic_launcher.png`))
		assert.FileExists(t, filepath.Join(res, label, `ic_launcher_round.png`))
	}
	assert.NoFileExists(t, filepath.Join(res, `mipmap-xxhdpi`, `ic_launcher.png`))
	assert.Equal(t, 4, fileCount(t, res))
}

func TestGenerateDestinationIsFile(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Solid(64, 64, testutil.Red))
	res := filepath.Join(dir, `res`)
	require.NoError(t, os.MkdirAll(res, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(res, `mipmap-mdpi`), nil, 0o644))

	_, err := newGenerator(t).Generate(context.Background(), src, res, mipmap.SizeTable{{Label: `mipmap-mdpi`, Size: 48}})
	assert.ErrorIs(t, err, mipmap.ErrDestinationNotFound)
}

type failingEncoder struct{}

func (failingEncoder) Encode(w io.Writer, img image.Image, fileName string) error {
	return assert.AnError
}

func TestGenerateEncodeError(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Solid(64, 64, testutil.Red))
	res := testutil.ResDir(t, filepath.Join(dir, `res`), `mipmap-mdpi`)

	rep, err := newGenerator(t, mipmap.SetEncoder(failingEncoder{})).
		Generate(context.Background(), src, res, mipmap.SizeTable{{Label: `mipmap-mdpi`, Size: 48}})
	require.ErrorIs(t, err, mipmap.ErrEncode)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, rep.Files)
}

func TestGenerateCanceled(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Solid(64, 64, testutil.Red))
	res := testutil.ResDir(t, filepath.Join(dir, `res`), `mipmap-mdpi`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newGenerator(t).Generate(ctx, src, res, mipmap.SizeTable{{Label: `mipmap-mdpi`, Size: 48}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fileCount(t, res))
}

func TestGenerateInvalidTable(t *testing.T) {
	_, err := newGenerator(t).Generate(context.Background(), `unused.png`, t.TempDir(), nil)
	assert.Error(t, err)
}

func TestGenerateProgressOutput(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Solid(64, 64, testutil.Red))
	res := testutil.ResDir(t, filepath.Join(dir, `res`), `mipmap-mdpi`, `mipmap-hdpi`)
	var out bytes.Buffer

	_, err := newGenerator(t, mipmap.SetOutput(&out)).Generate(context.Background(), src, res,
		mipmap.SizeTable{{Label: `mipmap-mdpi`, Size: 48}, {Label: `mipmap-hdpi`, Size: 72}})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, `Generating mipmap-mdpi icons (48x48)...`)
	assert.Contains(t, s, `Generating mipmap-hdpi icons (72x72)...`)
	assert.Equal(t, 4, strings.Count(s, `[OK] Saved: `))
	assert.Contains(t, s, `[SUCCESS]`)
	assert.Contains(t, s, `Next steps:`)
}

func TestSetVariants(t *testing.T) {
	_, err := mipmap.New(mipmap.SetVariants())
	assert.Error(t, err)
	_, err = mipmap.New(mipmap.SetVariants(mipmap.Regular, mipmap.Regular))
	assert.Error(t, err)

	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `src.png`), testutil.Solid(64, 64, testutil.Red))
	res := testutil.ResDir(t, filepath.Join(dir, `res`), `mipmap-mdpi`)
	rep, err := newGenerator(t, mipmap.SetVariants(mipmap.Regular)).
		Generate(context.Background(), src, res, mipmap.SizeTable{{Label: `mipmap-mdpi`, Size: 48}})
	require.NoError(t, err)
	assert.Len(t, rep.Files, 1)
	assert.NoFileExists(t, filepath.Join(res, `mipmap-mdpi`, `ic_launcher_round.png`))
}

func TestGenerateTinySourceWithRez(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePNG(t, filepath.Join(dir, `dot.png`), testutil.Solid(1, 1, testutil.Red))
	table := mipmap.SizeTable{{Label: `mipmap-dot`, Size: 1}, {Label: `mipmap-mdpi`, Size: 48}}
	res := testutil.ResDir(t, filepath.Join(dir, `res`), labels(table)...)

	rep, err := newGenerator(t, mipmap.SetResizer(&rez.Resizer{})).Generate(context.Background(), src, res, table)
	require.NoError(t, err)
	require.Len(t, rep.Files, 4)
	for _, a := range rep.Files {
		img := testutil.ReadPNG(t, a.Path)
		assert.Equal(t, image.Pt(a.Density.Size, a.Density.Size), img.Bounds().Size(), a.Path)
	}
}
