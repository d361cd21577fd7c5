package keymap

import "github.com/sparques/irkbd/hid"

// Prompt is what a user slot produces and how the wizard asks for it.
type Prompt struct {
	Action hid.Action
	Desc   string
}

// Programmable lists the user slots in slot order.
var Programmable = []Prompt{
	{hid.KeyArrowUp, "up arrow"},
	{hid.KeyArrowDown, "down arrow"},
	{hid.KeyArrowRight, "right arrow"},
	{hid.KeyArrowLeft, "left arrow"},
	{hid.Key(hid.ModNone, hid.KeySpace), "space"},
	{hid.Key(hid.ModNone, hid.KeyEnter), "enter"},
	{hid.Key(hid.ModNone, hid.KeyEsc), "escape"},
}
