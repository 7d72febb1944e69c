// Command skywall renders a night-sky chart for an observer location and
// time, and can install the result as the desktop wallpaper.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
