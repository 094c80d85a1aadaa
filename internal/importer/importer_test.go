package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natevvv/osm-turn-routing/pkg/geometry"
	"github.com/natevvv/osm-turn-routing/pkg/road"
)

const osmXml = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="48.0000" lon="9.0000"/>
  <node id="2" lat="48.0000" lon="9.0010"/>
  <node id="3" lat="48.0010" lon="9.0010"/>
  <node id="4" lat="48.0010" lon="9.0020"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="primary"/>
    <tag k="maxspeed" v="70"/>
  </way>
  <way id="11">
    <nd ref="3"/>
    <nd ref="4"/>
    <tag k="highway" v="residential"/>
    <tag k="oneway" v="yes"/>
  </way>
  <way id="12">
    <nd ref="1"/>
    <nd ref="4"/>
    <tag k="highway" v="footway"/>
  </way>
  <way id="13">
    <nd ref="2"/>
    <nd ref="99"/>
    <tag k="highway" v="service"/>
  </way>
</osm>`

func TestXmlImport(t *testing.T) {
	importer := NewXmlImporter(strings.NewReader(osmXml))
	require.NoError(t, importer.Import(context.Background()))

	roads := importer.Roads()
	require.Len(t, roads, 2)
	assert.Equal(t, 1, importer.MissingNodes())

	primary := roads[0]
	assert.Equal(t, int64(10), primary.ID)
	assert.Equal(t, road.Primary, primary.Type)
	assert.Equal(t, 70, primary.MaxSpeed)
	assert.False(t, primary.OneWay)
	assert.Equal(t, []geometry.Point{
		geometry.MakePoint(48, 9),
		geometry.MakePoint(48, 9.001),
		geometry.MakePoint(48.001, 9.001),
	}, primary.Points)

	residential := roads[1]
	assert.Equal(t, road.Residential, residential.Type)
	assert.True(t, residential.OneWay)
	assert.Equal(t, road.Residential.DefaultSpeed(), residential.MaxSpeed)
}

func TestImportFileAndJson(t *testing.T) {
	dir := t.TempDir()
	osmFile := filepath.Join(dir, "area.osm")
	require.NoError(t, os.WriteFile(osmFile, []byte(osmXml), 0o644))

	roads, err := ImportFile(context.Background(), osmFile)
	require.NoError(t, err)
	require.Len(t, roads, 2)

	jsonFile := filepath.Join(dir, "area.road.json")
	require.NoError(t, ExportRoadJson(roads, jsonFile))
	loaded, err := LoadRoadJson(jsonFile)
	require.NoError(t, err)
	assert.Equal(t, roads, loaded)

	_, err = ImportFile(context.Background(), filepath.Join(dir, "missing.osm"))
	assert.Error(t, err)
	_, err = ImportFile(context.Background(), filepath.Join(dir, "missing.osm.pbf"))
	assert.Error(t, err)
}
