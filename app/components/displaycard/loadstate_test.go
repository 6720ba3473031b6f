package displaycard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadStateTransitions(t *testing.T) {
	tests := []struct {
		from    LoadState
		onLoad  LoadState
		onError LoadState
	}{
		{NotLoaded, Loaded, Failed},
		{Loaded, Loaded, Loaded},
		{Failed, Failed, Failed},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.onLoad, tt.from.OnLoad())
			assert.Equal(t, tt.onError, tt.from.OnError())
		})
	}
}

func TestLoadStateTerminal(t *testing.T) {
	assert.False(t, NotLoaded.Terminal())
	assert.True(t, Loaded.Terminal())
	assert.True(t, Failed.Terminal())
	assert.Equal(t, "unknown", LoadState(9).String())
}
