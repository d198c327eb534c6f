package config

const VersionDev = "<dev>"

// Version is the version of ghprofile.
// Release builds set it with -ldflags.
var Version = VersionDev
