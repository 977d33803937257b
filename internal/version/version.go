package version

// Version is the readucks release version.
const Version = "0.1.0"
