// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Interactive terminal form, planet tracks, celestial reference lines
// 0.2.0 - Sun and moon daily paths, moon phase panel, external star catalogs
// 0.1.0 - Initial release: star chart rendering, constellation figures, wallpaper mode
