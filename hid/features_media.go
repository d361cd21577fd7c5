//go:build irkbd_media && !irkbd_kbdonly

package hid

// Default is the feature set the firmware is built with.
type Default = Media
