//go:build attiny85 || irkbd_16m5

package nec

// Default is the profile the firmware is built for.
var Default = ProfileB
