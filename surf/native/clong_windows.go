package native

// Windows is LLP64: a C long is 32 bits on every architecture.
const cLongWidth = 4

type cLong = int32
