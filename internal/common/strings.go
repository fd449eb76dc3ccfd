package common

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"
