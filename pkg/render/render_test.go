package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/analysis"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/render"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func sweptCurve(t *testing.T) (*analysis.Curve, cell.Params) {
	t.Helper()
	p := cell.DefaultParams()
	p.PH2, p.PO2 = 3.0, 3.0

	c, err := cell.New(p)
	require.NoError(t, err)

	pz := analysis.NewPolarization(analysis.DefaultPoints)
	require.NoError(t, pz.Setup(c))
	require.NoError(t, pz.Execute())
	return pz.Results(), p
}

func TestDefaultOptions(t *testing.T) {
	_, p := sweptCurve(t)
	opts := render.DefaultOptions(p)

	assert.Contains(t, opts.Title, "T=353K")
	assert.Contains(t, opts.Title, "P=3atm")
	assert.Greater(t, float64(opts.Width), 0.0)
	assert.Greater(t, float64(opts.Height), 0.0)
}

func TestWritePNG(t *testing.T) {
	cv, p := sweptCurve(t)

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, cv, render.DefaultOptions(p)))

	require.Greater(t, buf.Len(), len(pngMagic))
	assert.Equal(t, pngMagic, buf.Bytes()[:len(pngMagic)], "output must be a PNG image")
}

func TestWritePNGEmptyCurve(t *testing.T) {
	var buf bytes.Buffer
	err := render.WritePNG(&buf, &analysis.Curve{}, render.Options{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing is written on failure")
}

func TestSavePNG(t *testing.T) {
	cv, p := sweptCurve(t)
	path := filepath.Join(t.TempDir(), "polarization.png")

	require.NoError(t, render.SavePNG(path, cv, render.DefaultOptions(p)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}
