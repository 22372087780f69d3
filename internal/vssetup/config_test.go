package vssetup

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"vsprereq/internal/com"
)

func TestInstanceForPathArgumentSurvivesCollectionDuringCall(t *testing.T) {
	inst := newFakeObject()
	var seen string
	hookSlots(t, map[int]func([]uintptr) uintptr{
		slotGetInstanceForPath: func(args []uintptr) uintptr {
			runtime.GC()
			runtime.GC()
			w, ok := com.WideStrFromPtr((*uint16)(unsafe.Pointer(args[1])))
			require.True(t, ok)
			seen = w.String()
			*(*unsafe.Pointer)(unsafe.Pointer(args[2])) = unsafe.Pointer(inst)
			return 0
		},
	})

	c := &SetupConfiguration{h: newFakeObject().handle()}
	si, err := c.InstanceForPath(`C:\Program Files\Microsoft Visual Studio\2022\Community`)
	require.NoError(t, err)
	require.NotNil(t, si)
	require.Equal(t, `C:\Program Files\Microsoft Visual Studio\2022\Community`, seen)
}
