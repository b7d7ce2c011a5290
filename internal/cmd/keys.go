package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/padservo/padservo/controller/gamepad"
	"github.com/padservo/padservo/controller/keyboard"
)

// Keys lists the names accepted by --watch-keys and the mapping button flags.
type Keys struct {
	out io.Writer
}

func (k *Keys) Run() error {
	w := k.out
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w, "Gamepad buttons:")
	masks := make([]uint16, 0, len(gamepad.ButtonName))
	for m := range gamepad.ButtonName {
		masks = append(masks, m)
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })
	for _, m := range masks {
		fmt.Fprintf(w, "  0x%04x  %s\n", m, gamepad.ButtonName[m])
	}

	fmt.Fprintln(w, "Keyboard keys:")
	for _, key := range keyboard.KeySpace() {
		fmt.Fprintf(w, "  0x%02x  %s\n", uint8(key), key)
	}
	return nil
}
