package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mastercactapus/gpos/coord"
	"github.com/mastercactapus/gpos/feature"
	"github.com/mastercactapus/gpos/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoadMissing(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "printer.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	cfg := p.Config()
	def := position.DefaultConfig()
	assert.Equal(t, def.XYZAxisDefaultMode, cfg.XYZAxisDefaultMode)
	assert.Equal(t, def.RetractionLength, cfg.RetractionLength)
	assert.Equal(t, feature.DialectUnknown, cfg.Dialect)
	assert.False(t, cfg.Bounds.IsBound())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "printer.toml", `
name = "mk3"
retraction_length = 0.8
z_lift_height = 0.2
e_axis_default_mode = "relative"
slicer = "slic3r-pe"
history_depth = 8

[bounds]
shape = "rectangular"
x_min = 0
x_max = 250
y_min = -4
y_max = 210
z_min = 0
z_max = 210
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mk3", p.Name)

	cfg := p.Config()
	assert.Equal(t, 0.8, cfg.RetractionLength)
	assert.Equal(t, 0.2, cfg.ZLiftHeight)
	assert.Equal(t, position.Relative, cfg.EAxisDefaultMode)
	assert.Equal(t, position.Absolute, cfg.XYZAxisDefaultMode, "unset keys keep defaults")
	assert.Equal(t, feature.DialectSlic3rPE, cfg.Dialect)
	assert.Equal(t, 8, cfg.Depth)
	assert.Equal(t, coord.Rectangular, cfg.Bounds.Shape)
	assert.True(t, cfg.Bounds.Contains(coord.Point{X: 10, Y: -2, Z: 5}))
	assert.False(t, cfg.Bounds.Contains(coord.Point{X: 251, Y: 0, Z: 5}))
}

func TestLoadYAMLCircular(t *testing.T) {
	path := writeFile(t, "delta.yaml", `
name: kossel
home_z: 300
xyz_axis_default_mode: require_explicit
bounds:
  shape: circular
  x_max: 100
`)
	p, err := Load(path)
	require.NoError(t, err)

	cfg := p.Config()
	require.NotNil(t, cfg.HomeZ)
	assert.Equal(t, 300.0, *cfg.HomeZ)
	assert.Equal(t, position.RequireExplicit, cfg.XYZAxisDefaultMode)
	assert.Equal(t, coord.Circular, cfg.Bounds.Shape)
	assert.Equal(t, 100.0, cfg.Bounds.Radius)
	assert.True(t, cfg.Bounds.Contains(coord.Point{X: 70, Y: 70}))
	assert.False(t, cfg.Bounds.Contains(coord.Point{X: 80, Y: 80}))
}

func TestLoadJSONNullHome(t *testing.T) {
	path := writeFile(t, "printer.json", `{"home_x": null, "home_y": 5, "slicer": "cura"}`)
	p, err := Load(path)
	require.NoError(t, err)

	cfg := p.Config()
	assert.Nil(t, cfg.HomeX)
	require.NotNil(t, cfg.HomeY)
	assert.Equal(t, 5.0, *cfg.HomeY)
	assert.Equal(t, feature.DialectCura, cfg.Dialect)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "bad.toml", "retraction_length = ["))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "printer.ini", "x=1"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "printer.toml", `slicer = "kisslicer"`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	check := func(name string, fn func(p *Profile)) {
		t.Helper()
		p := Default()
		fn(p)
		assert.Error(t, p.Validate(), name)
	}

	assert.NoError(t, Default().Validate())
	check("xyz mode", func(p *Profile) { p.XYZAxisDefaultMode = "sideways" })
	check("e mode", func(p *Profile) { p.EAxisDefaultMode = "" })
	check("units", func(p *Profile) { p.UnitsDefault = "furlongs" })
	check("negative", func(p *Profile) { p.ZLiftHeight = -1 })
	check("depth", func(p *Profile) { p.HistoryDepth = 1 })
	check("shape", func(p *Profile) { p.Bounds.Shape = "hex" })
	check("box", func(p *Profile) {
		p.Bounds = Bounds{Shape: "rectangular", XMin: 10, XMax: 0}
	})
	check("radius", func(p *Profile) { p.Bounds = Bounds{Shape: "circular"} })
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "printer.toml", "retraction_length = 1\n")
	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, 1.0, w.Profile().RetractionLength)

	changed := make(chan *Profile, 4)
	w.OnChange(func(p *Profile) { changed <- p })

	require.NoError(t, os.WriteFile(path, []byte("retraction_length = 3\n"), 0644))
	require.Eventually(t, func() bool {
		return w.Profile().RetractionLength == 3
	}, 5*time.Second, 20*time.Millisecond)

	select {
	case p := <-changed:
		assert.Equal(t, 3.0, p.RetractionLength)
	case <-time.After(5 * time.Second):
		t.Fatal("OnChange not called")
	}

	// an invalid revision is reported and the previous profile kept
	require.NoError(t, os.WriteFile(path, []byte(`units_default = "furlongs"`), 0644))
	select {
	case err := <-w.Errors():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload error")
	}
	assert.Equal(t, 3.0, w.Profile().RetractionLength)
}
