package gpu_test

import (
	"testing"

	"playgroundgl/internal/gpu"

	"github.com/stretchr/testify/assert"
)

func TestUniformLocationsCachesLookups(t *testing.T) {
	calls := map[string]int{}
	u := gpu.NewUniformLocations("test", func(name string) int32 {
		calls[name]++
		if name == "mvp" {
			return 3
		}
		return -1
	})

	loc, ok := u.Location("mvp")
	assert.True(t, ok)
	assert.Equal(t, int32(3), loc)

	_, ok = u.Location("missing")
	assert.False(t, ok)
	_, ok = u.Location("missing")
	assert.False(t, ok)

	u.Location("mvp")
	assert.Equal(t, 1, calls["mvp"])
	assert.Equal(t, 1, calls["missing"])
}

func TestUniformLocationsReset(t *testing.T) {
	u := gpu.NewUniformLocations("test", func(string) int32 { return -1 })
	_, ok := u.Location("color")
	assert.False(t, ok)

	u.Reset(func(string) int32 { return 7 })
	loc, ok := u.Location("color")
	assert.True(t, ok)
	assert.Equal(t, int32(7), loc)
}
