package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// withOutputDir points the writers at a temporary directory for the length of the test
func withOutputDir(t *testing.T) string {
	dir := t.TempDir()
	previous := options.outputDir
	options.outputDir = dir
	t.Cleanup(func() { options.outputDir = previous })

	return dir
}

func newTestResource(t *testing.T, value string) *secretResource {
	var items SecretResources
	require.NoError(t, items.Set(value))
	rn := items.items[0]
	require.NoError(t, rn.isValid())

	return rn
}

func readOutput(t *testing.T, filename string) string {
	content, err := ioutil.ReadFile(filename)
	require.NoError(t, err)

	return string(content)
}

func TestWriteResourceFormats(t *testing.T) {
	dir := withOutputDir(t)
	data := map[string]interface{}{"db": "it's-s3cret"}

	tests := []struct {
		resource string
		filename string
		expected string
	}{
		{resource: "password:db", filename: "db.password", expected: "it's-s3cret"},
		{resource: "password:db:fmt=ini,fn=db.ini", filename: "db.ini", expected: "db = it's-s3cret\n"},
		{resource: "password:db:fmt=csv,fn=db.csv", filename: "db.csv", expected: "db,it's-s3cret\n"},
		{resource: "password:db:fmt=env,fn=db.env", filename: "db.env", expected: "DB='it'\\''s-s3cret'\n"},
	}
	for _, c := range tests {
		rn := newTestResource(t, c.resource)
		require.NoError(t, writeResource(rn, data))
		assert.Equal(t, c.expected, readOutput(t, filepath.Join(dir, c.filename)), c.resource)
	}
}

func TestWriteResourceJSON(t *testing.T) {
	dir := withOutputDir(t)
	rn := newTestResource(t, "passphrase:recovery:fmt=json")

	require.NoError(t, writeResource(rn, map[string]interface{}{"recovery": "acorn-birch-cedar"}))

	decoded := make(map[string]string)
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, filepath.Join(dir, "recovery.passphrase"))), &decoded))
	assert.Equal(t, "acorn-birch-cedar", decoded["recovery"])
}

func TestWriteResourceYAMLQuotesSymbols(t *testing.T) {
	dir := withOutputDir(t)
	rn := newTestResource(t, "password:db:fmt=yaml")
	value := `#:{}[]"'`

	require.NoError(t, writeResource(rn, map[string]interface{}{"db": value}))

	decoded := make(map[string]string)
	require.NoError(t, yaml.Unmarshal([]byte(readOutput(t, filepath.Join(dir, "db.password"))), &decoded))
	assert.Equal(t, value, decoded["db"])
}

func TestWriteResourceTemplate(t *testing.T) {
	dir := withOutputDir(t)
	rn := newTestResource(t, "password:db:tpl=tests/env.tpl,fn=db.conf")

	require.NoError(t, writeResource(rn, map[string]interface{}{"db": "s3cret"}))
	assert.Equal(t, "DB_PASSWORD=s3cret\n", readOutput(t, filepath.Join(dir, "db.conf")))
}

func TestWriteResourceFileMode(t *testing.T) {
	dir := withOutputDir(t)
	rn := newTestResource(t, "password:db")

	require.NoError(t, writeResource(rn, map[string]interface{}{"db": "s3cret"}))
	info, err := os.Stat(filepath.Join(dir, "db.password"))
	require.NoError(t, err)
	assert.Equal(t, resourceFileMode, info.Mode().Perm())
}

func TestWriteTxtFileMultipleKeys(t *testing.T) {
	dir := withOutputDir(t)
	filename := filepath.Join(dir, "db")

	require.NoError(t, writeTxtFile(filename, map[string]interface{}{"username": "admin", "password": "s3cret"}, resourceFileMode))
	assert.Equal(t, "admin", readOutput(t, filename+".username"))
	assert.Equal(t, "s3cret", readOutput(t, filename+".password"))

	assert.Error(t, writeTxtFile(filename, map[string]interface{}{}, resourceFileMode))
}

func TestWriteResourceUnknownFormat(t *testing.T) {
	withOutputDir(t)
	rn := newTestResource(t, "password:db")
	rn.format = "xml"

	assert.Error(t, writeResource(rn, map[string]interface{}{"db": "s3cret"}))
}

func TestPrintContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printContent(&buf, []byte("s3cret")))
	assert.Equal(t, "s3cret\n", buf.String())

	buf.Reset()
	require.NoError(t, printContent(&buf, []byte("s3cret\n")))
	assert.Equal(t, "s3cret\n", buf.String())
}
