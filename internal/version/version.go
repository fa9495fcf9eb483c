package version

// Version is the current version of lsblk.
// Use semantic versioning: MAJOR.MINOR.PATCH.
const Version = "0.1.0"
