package tiled

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="10" height="8" tilewidth="16" tileheight="16">
 <tileset firstgid="1" name="props" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="props.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="ground" width="10" height="8"><data encoding="csv">` + strings.Repeat("0,", 79) + `0</data></layer>
 <objectgroup id="2" name="borders">
  <object id="1" x="0" y="0" width="160" height="16"/>
  <object id="2" x="16" y="16">
   <polygon points="0,0 40,0 0,40"/>
  </object>
  <object id="3" x="60" y="50" width="20" height="30">
   <ellipse/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="waypoints">
  <object id="4" name="wp02" x="40" y="100">
   <point/>
  </object>
  <object id="5" name="wp01" x="20" y="28">
   <properties>
    <property name="speed" value="fast"/>
   </properties>
   <point/>
  </object>
  <object id="6" x="0" y="0">
   <polyline points="0,0 10,10"/>
  </object>
  <object id="7" gid="3" x="32" y="64" width="16" height="16"/>
 </objectgroup>
</map>`

func TestLoad(t *testing.T) {
	m, err := Load(strings.NewReader(sampleTMX))
	require.NoError(t, err)

	assert.Equal(t, 10, m.Width)
	assert.Equal(t, 8, m.Height)
	w, h := m.PixelSize()
	assert.Equal(t, 160.0, w)
	assert.Equal(t, 128.0, h)
	require.Len(t, m.Layers, 2)

	borders := m.Layer("borders")
	require.NotNil(t, borders)
	require.Len(t, borders.Objects, 3)

	rect, ok := borders.Objects[0].(*Rectangle)
	require.True(t, ok)
	assert.Equal(t, 1, rect.ID())
	assert.Equal(t, "rectangle", rect.Kind())
	assert.Equal(t, 112.0, rect.Y)
	assert.Equal(t, 160.0, rect.Width)

	poly, ok := borders.Objects[1].(*Polygon)
	require.True(t, ok)
	assert.Equal(t, 16.0, poly.X)
	assert.Equal(t, 112.0, poly.Y)
	assert.Equal(t, []float64{0, 0, 40, 0, 0, -40}, poly.Vertices)

	ellipse, ok := borders.Objects[2].(*Ellipse)
	require.True(t, ok)
	assert.Equal(t, 60.0, ellipse.X)
	assert.Equal(t, 48.0, ellipse.Y)
	assert.Equal(t, 30.0, ellipse.Height)

	wps := m.Layer("waypoints")
	require.NotNil(t, wps)
	require.Len(t, wps.Objects, 4)

	p, ok := wps.Objects[1].(*Point)
	require.True(t, ok)
	assert.Equal(t, "wp01", p.Name())
	assert.Equal(t, 100.0, p.Y)
	assert.Equal(t, "fast", p.Property("speed", ""))
	assert.Equal(t, "none", p.Property("missing", "none"))

	assert.Equal(t, "polyline", wps.Objects[2].Kind())
	tile, ok := wps.Objects[3].(*Tile)
	require.True(t, ok)
	assert.Equal(t, uint32(3), tile.GID)
	assert.Equal(t, 64.0, tile.Y)

	assert.Nil(t, m.Layer("missing"))
}

func TestLoadZeroSizeObjectIsPoint(t *testing.T) {
	doc := `<map width="2" height="2" tilewidth="16" tileheight="16">
 <objectgroup name="starts"><object id="9" name="s1" x="8" y="4"/></objectgroup>
</map>`
	m, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	p, ok := m.Layer("starts").Objects[0].(*Point)
	require.True(t, ok)
	assert.Equal(t, 9, p.ID())
	assert.Equal(t, 8.0, p.X)
	assert.Equal(t, 28.0, p.Y)
}

func TestLoadRejectsMalformedXML(t *testing.T) {
	_, err := Load(strings.NewReader("<map"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.tmx")
	require.NoError(t, os.WriteFile(path, []byte(sampleTMX), 0o644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Layers, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.tmx"))
	assert.Error(t, err)
}
