package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCanonicalJSON(t *testing.T) {
	path := writeFile(t, "catalog.json", `{
		"entries": [
			{
				"id": "1001",
				"name": "希楽夢ゴルフ倶楽部",
				"nameKana": "きらむごるふくらぶ",
				"prefecture": "滋賀県",
				"areaCodes": ["25", "26"],
				"holeCount": 18,
				"pars": [4,4,4,4,4,4,4,4,4,5,5,5,5,5,5,3,3,3]
			}
		]
	}`)

	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Entries, 1)

	entry := file.Entries[0]
	assert.Equal(t, "entries", file.Key)
	assert.Equal(t, "1001", entry.ID)
	assert.Equal(t, "希楽夢ゴルフ倶楽部", entry.Name)
	assert.Equal(t, []string{"25", "26"}, entry.AreaCodes)
	require.NotNil(t, entry.HoleCount)
	assert.Equal(t, 18, *entry.HoleCount)
	assert.Len(t, entry.Pars, 18)
}

func TestLoadLegacyAliases(t *testing.T) {
	path := writeFile(t, "catalog.json", `{
		"courses": [
			{
				"courseCode": 2002,
				"courseTitle": "Lakeside",
				"courseKana": "れいくさいど",
				"region": "Shiga",
				"areaTags": [25, "26"],
				"holes": "18",
				"parList": [4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4]
			}
		]
	}`)

	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Entries, 1)

	entry := file.Entries[0]
	assert.Equal(t, "courses", file.Key)
	assert.Equal(t, "2002", entry.ID)
	assert.Equal(t, "Lakeside", entry.Name)
	assert.Equal(t, "れいくさいど", entry.NameKana)
	assert.Equal(t, "Shiga", entry.Prefecture)
	assert.Equal(t, []string{"25", "26"}, entry.AreaCodes)
	require.NotNil(t, entry.HoleCount)
	assert.Equal(t, 18, *entry.HoleCount)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
entries:
  - id: "3003"
    name: Pine Hills
    areaCodes: ["40"]
`)

	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Entries, 1)
	assert.Equal(t, "3003", file.Entries[0].ID)
	assert.Equal(t, "Pine Hills", file.Entries[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestSaveRoundTripPreservesContainer(t *testing.T) {
	path := writeFile(t, "catalog.json", `{
		"version": 3,
		"entries": [{"id": "1", "name": "Lakeside"}]
	}`)

	file, err := Load(path)
	require.NoError(t, err)

	file.Entries[0].ApplyPars([]int{4, 4, 4, 4, 4, 5, 5, 3, 3, 4, 4, 4, 4, 4, 5, 5, 3, 3}, "golfcourseapi", "Regular", 99)
	file.SetMeta("golfcourseapi", RunMeta{Key: "abc***de", Counts: RunCounts{Updated: 1}})

	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, file.Save(out))

	reloaded, err := Load(out)
	require.NoError(t, err)
	require.Len(t, reloaded.Entries, 1)

	entry := reloaded.Entries[0]
	assert.Len(t, entry.Pars, 18)
	require.NotNil(t, entry.ParTotal)
	assert.Equal(t, 72, *entry.ParTotal)
	assert.Equal(t, "golfcourseapi", entry.ParSource)
	assert.Equal(t, "Regular", entry.ParTeeName)
	require.NotNil(t, entry.GolfCourseAPIID)
	assert.Equal(t, 99, *entry.GolfCourseAPIID)

	// Unrelated container fields and the meta block survive.
	assert.EqualValues(t, 3, reloaded.Extra["version"].(float64))
	meta, ok := reloaded.Extra["meta"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, meta, "golfcourseapi")
}

func TestSaveYAML(t *testing.T) {
	file := &File{
		Key:     "entries",
		Entries: []*Entry{{ID: "1", Name: "Lakeside"}},
	}

	out := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, file.Save(out))

	reloaded, err := Load(out)
	require.NoError(t, err)
	require.Len(t, reloaded.Entries, 1)
	assert.Equal(t, "Lakeside", reloaded.Entries[0].Name)
}

func TestApplyParsDerivedFields(t *testing.T) {
	entry := &Entry{ID: "1"}
	entry.ApplyPars([]int{4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 5, 3, 4}, "golfcourseapi", "Blue", 7)

	require.NotNil(t, entry.ParOut)
	require.NotNil(t, entry.ParIn)
	require.NotNil(t, entry.ParTotal)
	require.NotNil(t, entry.HoleCount)
	assert.Equal(t, 36, *entry.ParOut)
	assert.Equal(t, 36, *entry.ParIn)
	assert.Equal(t, 72, *entry.ParTotal)
	assert.Equal(t, 18, *entry.HoleCount)
	assert.Equal(t, "Blue", entry.ParTeeName)
}

func TestWriteCSVQuoting(t *testing.T) {
	entries := []*Entry{{
		ID:        "1",
		Name:      `a, "quoted" name`,
		AreaCodes: []string{"25", "26"},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entries))

	assert.Contains(t, buf.String(), `"a, ""quoted"" name"`)

	// A standard CSV parser decodes the field back to the original.
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `a, "quoted" name`, records[1][1])
	assert.Equal(t, "25|26", records[1][3])
}

func TestWriteCSVShape(t *testing.T) {
	out := 36
	in := 36
	total := 72
	entries := []*Entry{{
		ID:       "1",
		Name:     "Lakeside",
		Pars:     []int{4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 5, 3, 4},
		ParOut:   &out,
		ParIn:    &in,
		ParTotal: &total,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entries))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	assert.Equal(t, "id", header[0])
	assert.Equal(t, "par1", header[10])
	assert.Equal(t, "par18", header[27])
	assert.Len(t, header, 28)

	row := records[1]
	assert.Equal(t, "72", row[7])
	assert.Equal(t, "4", row[10])
	assert.Equal(t, "4", row[27])
}

func TestSaveXLSX(t *testing.T) {
	entries := []*Entry{{ID: "1", Name: "Lakeside"}}
	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, SaveXLSX(out, entries))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestEntryJSONOmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(&Entry{ID: "1", Name: "Lakeside"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "parTotal")
	assert.NotContains(t, string(data), "golfcourseapiId")
}
