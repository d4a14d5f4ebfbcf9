package main

// ClientCommand mirrors the server's inbound message.
type ClientCommand struct {
	Direction string `json:"direction,omitempty"`
	Command   string `json:"command,omitempty"`
}

// commandForKey maps a key press to a command. quit reports the quit keys;
// ok is false for keys that do nothing.
func commandForKey(key byte) (cmd ClientCommand, quit bool, ok bool) {
	switch key {
	case 'w', 'W', 'k':
		return ClientCommand{Direction: "ArrowUp"}, false, true
	case 's', 'S', 'j':
		return ClientCommand{Direction: "ArrowDown"}, false, true
	case ' ':
		return ClientCommand{Direction: "None"}, false, true
	case 't', 'T':
		return ClientCommand{Command: "toggleAgent"}, false, true
	case 'r', 'R':
		return ClientCommand{Command: "reset"}, false, true
	case 'q', 'Q', 3: // ctrl-c arrives as a byte in raw mode
		return ClientCommand{}, true, true
	}
	return ClientCommand{}, false, false
}
