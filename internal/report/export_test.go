package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/perftree/perftree/internal/calltree"
)

func TestExportScenario(t *testing.T) {
	tree := scenarioTree(t)

	b, err := Export(tree)
	require.NoError(t, err)
	doc := string(b)
	require.True(t, gjson.Valid(doc))

	assert.Equal(t, int64(1), gjson.Get(doc, "regions.#").Int())
	assert.Equal(t, "main", gjson.Get(doc, "regions.0.name").String())
	assert.Equal(t, int64(2), gjson.Get(doc, "regions.0.calls").Int())
	assert.Equal(t, (600 * time.Millisecond).Nanoseconds(), gjson.Get(doc, "regions.0.total_ns").Int())

	assert.Equal(t, "inner operations", gjson.Get(doc, "regions.0.children.0.name").String())
	assert.Equal(t, int64(4), gjson.Get(doc, "regions.0.children.0.calls").Int())
	assert.Equal(t, "processing", gjson.Get(doc, "regions.0.children.0.children.0.name").String())
	assert.Equal(t, "processing", gjson.Get(doc, "regions.0.children.1.name").String())
	assert.Equal(t, (200 * time.Millisecond).Nanoseconds(), gjson.Get(doc, "regions.0.children.1.total_ns").Int())

	// Leaves omit the children key entirely.
	assert.False(t, gjson.Get(doc, "regions.0.children.1.children").Exists())
}

func TestExportWhileOpen(t *testing.T) {
	tree := calltree.New()
	tree.Enter("open")

	_, err := Export(tree)
	assert.ErrorIs(t, err, ErrRenderWhileOpen)
}

func TestExportEmptyTree(t *testing.T) {
	b, err := Export(calltree.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), gjson.Get(string(b), "regions.#").Int())
}
