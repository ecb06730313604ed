package native

import "github.com/ZanzyTHEbar/surfapi-go/surf/types"

// NativeLayout is the object header layout for this platform's C ABI. The
// shipped library is a Windows DLL, where it equals types.InfoLayout.
var NativeLayout = types.MustLayout(cLongWidth)
