package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadYAMLCollection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "use-cases.yaml", `
type: use-case
records:
  - id: uc-1
    name: Checkout
    priority: high
  - id: uc-2
    name: Refund
`)

	res, err := New(nil).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesLoaded)
	assert.Zero(t, res.FilesSkipped)

	recs := res.Records[schemas.RecordTypeUseCase]
	require.Len(t, recs, 2)
	assert.Equal(t, "uc-1", recs[0].ID)
	prio, ok := recs[0].StringField("priority")
	assert.True(t, ok)
	assert.Equal(t, "high", prio)
}

func TestLoadSingleRecordFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "customer.yaml", `
type: actor
id: actor-customer
name: Customer
kind: human
`)

	res, err := New(nil).Load(dir)
	require.NoError(t, err)

	recs := res.Records[schemas.RecordTypeActor]
	require.Len(t, recs, 1)
	assert.Equal(t, "actor-customer", recs[0].ID)
	assert.False(t, recs[0].HasField("type"), "the type declaration is not a record field")
}

func TestLoadJSONFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "goals.json", `{
  "type": "business-goal",
  "records": [
    {"id": "goal-1", "name": "Grow revenue", "dependsOn": ["goal-2"]},
    {"id": "goal-2", "name": "Retain customers"}
  ]
}`)

	res, err := New(nil).Load(dir)
	require.NoError(t, err)

	recs := res.Records[schemas.RecordTypeBusinessGoal]
	require.Len(t, recs, 2)
	refs, ok := recs[0].RefsField("dependsOn")
	require.True(t, ok)
	assert.Equal(t, "goal-2", refs[0].ID)
}

func TestLoadWalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "requirements/core/br.yml", `
type: business-requirement
records:
  - id: br-1
    name: Orders are auditable
`)

	res, err := New(nil).Load(dir)
	require.NoError(t, err)
	assert.Len(t, res.Records[schemas.RecordTypeBusinessRequirement], 1)
}

func TestLoadSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", `
type: actor
id: actor-1
name: Clerk
`)
	writeFile(t, dir, "broken.yaml", "type: [unclosed")
	writeFile(t, dir, "untyped.yaml", "id: x-1\nname: No type declared\n")
	writeFile(t, dir, "no-id.yaml", "type: actor\nname: Anonymous\n")

	res, err := New(nil).Load(dir)
	require.NoError(t, err, "malformed files are skipped, not fatal")
	assert.Equal(t, 1, res.FilesLoaded)
	assert.Equal(t, 3, res.FilesSkipped)
	assert.Len(t, res.Records[schemas.RecordTypeActor], 1)
}

func TestLoadIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "not a record file")
	writeFile(t, dir, "readme.md", "# docs")

	res, err := New(nil).Load(dir)
	require.NoError(t, err)
	assert.Zero(t, res.FilesLoaded)
	assert.Zero(t, res.FilesSkipped)
	assert.Empty(t, res.Records)
}

func TestLoadEmptyDirectory(t *testing.T) {
	res, err := New(nil).Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestLoadFileOrderIsStable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "type: actor\nid: actor-b\nname: B\n")
	writeFile(t, dir, "a.yaml", "type: actor\nid: actor-a\nname: A\n")

	res, err := New(nil).Load(dir)
	require.NoError(t, err)

	recs := res.Records[schemas.RecordTypeActor]
	require.Len(t, recs, 2)
	assert.Equal(t, "actor-a", recs[0].ID)
	assert.Equal(t, "actor-b", recs[1].ID)
}
