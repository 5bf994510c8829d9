package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheMissThenHit(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	doc := []byte("title = \"hi\"\n")

	node, err := c.Parse(doc)
	require.NoError(t, err)
	title, ok := node.Get("title")
	require.True(t, ok)
	assert.Equal(t, "hi", title.String())

	assert.Equal(t, 1, c.Len())

	node2, err := c.Parse(doc)
	require.NoError(t, err)
	assert.Same(t, node, node2, "a repeat Parse of identical bytes should return the cached node")
}

func TestCacheDistinguishesByContent(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	_, err = c.Parse([]byte("a = 1\n"))
	require.NoError(t, err)
	_, err = c.Parse([]byte("a = 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
}

func TestCacheCachesParseErrorsToo(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	bad := []byte("a = \n")
	_, err1 := c.Parse(bad)
	require.Error(t, err1)
	_, err2 := c.Parse(bad)
	require.Error(t, err2)
	assert.Equal(t, 1, c.Len())
}

func TestCachePurge(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	_, err = c.Parse([]byte("a = 1\n"))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCacheConcurrentParseIsCoalesced(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	doc := []byte("key = \"value\"\n")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			node, err := c.Parse(doc)
			require.NoError(t, err)
			v, _ := node.Get("key")
			results[i] = v.String()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "value", r)
	}
}
