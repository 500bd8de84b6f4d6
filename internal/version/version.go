package version

// Version is the released tool version.
const Version = "0.4.1"
