//go:build !irkbd_kbdonly && !irkbd_media

package hid

// Default is the feature set the firmware is built with.
type Default = Full
