package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/padservo/padservo/controller"
	"github.com/padservo/padservo/controller/balanceboard"
	"github.com/padservo/padservo/controller/gamepad"
	"github.com/padservo/padservo/controller/keyboard"
	"github.com/padservo/padservo/controller/mouse"
)

// Scenario is a scripted session: the controllers involved and what happens
// to them on which tick.
type Scenario struct {
	Controllers []ControllerSpec `json:"controllers" yaml:"controllers" toml:"controllers"`
	Steps       []Step           `json:"steps" yaml:"steps" toml:"steps"`
}

// ControllerSpec declares one simulated controller.
type ControllerSpec struct {
	ID        string `json:"id" yaml:"id" toml:"id"`
	Kind      string `json:"kind" yaml:"kind" toml:"kind"` // gamepad, mouse, keyboard, balanceboard or anything else for unsupported
	Model     string `json:"model" yaml:"model" toml:"model"`
	VendorID  uint16 `json:"vendorId" yaml:"vendorId" toml:"vendorId"`
	ProductID uint16 `json:"productId" yaml:"productId" toml:"productId"`
}

// Step applies connects, frames and disconnects, in that order, on tick At.
type Step struct {
	At         int      `json:"at" yaml:"at" toml:"at"`
	Connect    []string `json:"connect" yaml:"connect" toml:"connect"`
	Frames     []Frame  `json:"frames" yaml:"frames" toml:"frames"`
	Disconnect []string `json:"disconnect" yaml:"disconnect" toml:"disconnect"`
}

// Frame is one input frame for controller ID. Only the fields matching the
// controller's kind are used.
type Frame struct {
	ID string `json:"id" yaml:"id" toml:"id"`

	// gamepad
	LX       int32    `json:"lx" yaml:"lx" toml:"lx"`
	LY       int32    `json:"ly" yaml:"ly" toml:"ly"`
	RX       int32    `json:"rx" yaml:"rx" toml:"rx"`
	RY       int32    `json:"ry" yaml:"ry" toml:"ry"`
	Brake    int32    `json:"brake" yaml:"brake" toml:"brake"`
	Throttle int32    `json:"throttle" yaml:"throttle" toml:"throttle"`
	DPad     uint8    `json:"dpad" yaml:"dpad" toml:"dpad"`
	Buttons  []string `json:"buttons" yaml:"buttons" toml:"buttons"`
	Misc     uint8    `json:"misc" yaml:"misc" toml:"misc"`
	Gyro     []int32  `json:"gyro" yaml:"gyro" toml:"gyro"`
	Accel    []int32  `json:"accel" yaml:"accel" toml:"accel"`

	// mouse
	MouseButtons []string `json:"mouseButtons" yaml:"mouseButtons" toml:"mouseButtons"`
	Scroll       int8     `json:"scroll" yaml:"scroll" toml:"scroll"`
	DX           int32    `json:"dx" yaml:"dx" toml:"dx"`
	DY           int32    `json:"dy" yaml:"dy" toml:"dy"`

	// keyboard
	Keys []string `json:"keys" yaml:"keys" toml:"keys"`

	// balance board
	TopLeft     uint16 `json:"topLeft" yaml:"topLeft" toml:"topLeft"`
	TopRight    uint16 `json:"topRight" yaml:"topRight" toml:"topRight"`
	BottomLeft  uint16 `json:"bottomLeft" yaml:"bottomLeft" toml:"bottomLeft"`
	BottomRight uint16 `json:"bottomRight" yaml:"bottomRight" toml:"bottomRight"`
	Temperature int8   `json:"temperature" yaml:"temperature" toml:"temperature"`
}

// LoadScenario reads a scenario file, choosing the decoder by extension.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".toml":
		format = "toml"
	}
	sc, err := ParseScenario(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes and validates a scenario in the given format
// ("json", "yaml" or "toml").
func ParseScenario(data []byte, format string) (*Scenario, error) {
	var sc Scenario
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, &sc)
	case "yaml":
		err = yaml.Unmarshal(data, &sc)
	case "toml":
		err = toml.Unmarshal(data, &sc)
	default:
		return nil, fmt.Errorf("unsupported scenario format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(sc.Steps, func(i, j int) bool { return sc.Steps[i].At < sc.Steps[j].At })
	return &sc, nil
}

func (sc *Scenario) validate() error {
	kinds := make(map[string]controller.Variant, len(sc.Controllers))
	for _, c := range sc.Controllers {
		if c.ID == "" {
			return fmt.Errorf("controller without id")
		}
		if _, dup := kinds[c.ID]; dup {
			return fmt.Errorf("duplicate controller id %q", c.ID)
		}
		kinds[c.ID] = variantOf(c.Kind)
	}
	known := func(id string) error {
		if _, ok := kinds[id]; !ok {
			return fmt.Errorf("unknown controller id %q", id)
		}
		return nil
	}
	for i, st := range sc.Steps {
		if st.At < 0 {
			return fmt.Errorf("step %d: negative tick %d", i, st.At)
		}
		for _, id := range append(append([]string{}, st.Connect...), st.Disconnect...) {
			if err := known(id); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}
		for _, f := range st.Frames {
			if err := known(f.ID); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			if _, _, _, _, err := f.decode(); err != nil {
				return fmt.Errorf("step %d: frame %q: %w", i, f.ID, err)
			}
		}
	}
	return nil
}

func variantOf(kind string) controller.Variant {
	switch strings.ToLower(kind) {
	case "gamepad":
		return controller.Gamepad
	case "mouse":
		return controller.Mouse
	case "keyboard":
		return controller.Keyboard
	case "balanceboard", "balance-board":
		return controller.BalanceBoard
	default:
		return controller.Unsupported
	}
}

func capabilitiesOf(kind string) controller.Capability {
	switch variantOf(kind) {
	case controller.Gamepad:
		return controller.CapGamepad
	case controller.Mouse:
		return controller.CapMouse
	case controller.Keyboard:
		return controller.CapKeyboard
	case controller.BalanceBoard:
		return controller.CapBalanceBoard
	default:
		return 0
	}
}

// decode resolves button and key names into every variant's raw state.
func (f Frame) decode() (gamepad.InputState, mouse.InputState, keyboard.InputState, balanceboard.InputState, error) {
	gp := gamepad.InputState{
		LX: f.LX, LY: f.LY,
		RX: f.RX, RY: f.RY,
		Brake:       f.Brake,
		Throttle:    f.Throttle,
		DPad:        f.DPad,
		MiscButtons: f.Misc,
	}
	for _, name := range f.Buttons {
		mask, err := gamepad.ButtonByName(name)
		if err != nil {
			return gp, mouse.InputState{}, keyboard.InputState{}, balanceboard.InputState{}, err
		}
		gp.Buttons |= mask
	}
	gp.GyroX, gp.GyroY, gp.GyroZ = triple(f.Gyro)
	gp.AccelX, gp.AccelY, gp.AccelZ = triple(f.Accel)

	ms := mouse.InputState{ScrollWheel: f.Scroll, DeltaX: f.DX, DeltaY: f.DY}
	for _, name := range f.MouseButtons {
		mask, err := mouse.ButtonByName(name)
		if err != nil {
			return gp, ms, keyboard.InputState{}, balanceboard.InputState{}, err
		}
		ms.Buttons |= mask
	}

	var kb keyboard.InputState
	for _, name := range f.Keys {
		k, err := keyboard.KeyByName(name)
		if err != nil {
			return gp, ms, kb, balanceboard.InputState{}, err
		}
		kb.Press(k)
	}

	bb := balanceboard.InputState{
		TopLeft:     f.TopLeft,
		TopRight:    f.TopRight,
		BottomLeft:  f.BottomLeft,
		BottomRight: f.BottomRight,
		Temperature: f.Temperature,
	}
	return gp, ms, kb, bb, nil
}

// triple returns the first three values of v, zero-filled.
func triple(v []int32) (x, y, z int32) {
	var out [3]int32
	copy(out[:], v)
	return out[0], out[1], out[2]
}
