// Package platform contains OS integration glue: the virtual filesystem used
// for catalog lookups, well-known directories, the mpv socket location and
// opening folders in the system file manager.
package platform
