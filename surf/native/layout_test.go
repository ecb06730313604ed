package native

import (
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

func TestNativeLayout(t *testing.T) {
	if runtime.GOOS == "windows" {
		assert.Equal(t, 4, NativeLayout.LongWidth)
		assert.Equal(t, types.InfoRecordSize, NativeLayout.Size)
		return
	}
	assert.Equal(t, strconv.IntSize/8, NativeLayout.LongWidth)
	assert.Equal(t, types.InfoRecordSize+6*(NativeLayout.LongWidth-4), NativeLayout.Size)
}
