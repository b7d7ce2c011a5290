//go:build linux

package jsdev

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unsafe"

	"github.com/0xcafed00d/joystick"
	"golang.org/x/sys/unix"

	"github.com/padservo/padservo/controller"
	"github.com/padservo/padservo/controller/gamepad"
	"github.com/padservo/padservo/dispatch"
)

const (
	// joystick.Open always resolves indices under this directory.
	inputDir    = "/dev/input"
	sysInputDir = "/sys/class/input"
)

// device is an open joystick node. It satisfies controller.Handle and
// gamepad.Source.
type device struct {
	name      string
	js        joystick.Joystick
	props     controller.Properties
	state     gamepad.InputState
	connected bool
	fresh     bool
}

func (d *device) ID() controller.ID                   { return controller.ID(d.name) }
func (d *device) Connected() bool                     { return d.connected }
func (d *device) HasData() bool                       { return d.fresh }
func (d *device) Capabilities() controller.Capability { return controller.CapGamepad }
func (d *device) Properties() controller.Properties   { return d.props }
func (d *device) GamepadInput() gamepad.InputState    { return d.state }

// Transport watches /dev/input for joystick nodes.
type Transport struct {
	cfg       Config
	logger    *slog.Logger
	listener  dispatch.Listener
	inotifyFd int
	devices   map[string]*device
	pending   map[string]int
	buf       []byte
}

// Open creates a joystick transport. Discovery begins on Start.
func Open(cfg Config, logger *slog.Logger) (dispatch.Transport, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.OpenRetries <= 0 {
		cfg.OpenRetries = 1
	}
	return &Transport{
		cfg:       cfg,
		logger:    logger,
		inotifyFd: -1,
		devices:   make(map[string]*device),
		pending:   make(map[string]int),
		buf:       make([]byte, 4096),
	}, nil
}

func (t *Transport) Start(l dispatch.Listener) error {
	t.listener = l

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return fmt.Errorf("inotify init: %w", err)
	}
	if _, err := unix.InotifyAddWatch(fd, inputDir, unix.IN_CREATE|unix.IN_DELETE|unix.IN_ATTRIB); err != nil {
		_ = unix.Close(fd)
		return fmt.Errorf("watch %s: %w", inputDir, err)
	}
	t.inotifyFd = fd

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", inputDir, err)
	}
	for _, e := range entries {
		if isJoystick(e.Name()) {
			t.pending[e.Name()] = 0
		}
	}
	t.logger.Info("Watching for joysticks", "dir", inputDir, "found", len(t.pending))
	return nil
}

func (t *Transport) Poll(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	for _, d := range t.devices {
		d.fresh = false
	}

	t.drainInotify()
	t.openPending()

	fresh := false
	for _, name := range t.sortedNames() {
		d := t.devices[name]
		st, err := d.js.Read()
		if err != nil {
			t.logger.Info("Joystick gone", "device", name, "error", err)
			t.remove(name)
			continue
		}
		gp := fold(st)
		d.fresh = gp != d.state || held(gp)
		d.state = gp
		fresh = fresh || d.fresh
	}
	return fresh, nil
}

func (t *Transport) Close() error {
	for _, name := range t.sortedNames() {
		t.remove(name)
	}
	if t.inotifyFd >= 0 {
		err := unix.Close(t.inotifyFd)
		t.inotifyFd = -1
		return err
	}
	return nil
}

func (t *Transport) sortedNames() []string {
	names := make([]string, 0, len(t.devices))
	for name := range t.devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Transport) drainInotify() {
	if t.inotifyFd < 0 {
		return
	}
	for {
		n, err := unix.Read(t.inotifyFd, t.buf)
		if err != nil {
			if !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EINTR) {
				t.logger.Warn("inotify read failed", "error", err)
			}
			return
		}
		if n < unix.SizeofInotifyEvent {
			return
		}
		for offset := 0; offset+unix.SizeofInotifyEvent <= n; {
			ev := (*unix.InotifyEvent)(unsafe.Pointer(&t.buf[offset]))
			start := offset + unix.SizeofInotifyEvent
			end := min(start+int(ev.Len), n)
			name := strings.TrimRight(string(t.buf[start:end]), "\x00")
			offset = end

			if !isJoystick(name) {
				continue
			}
			switch {
			case ev.Mask&unix.IN_DELETE != 0:
				delete(t.pending, name)
				t.remove(name)
			case ev.Mask&(unix.IN_CREATE|unix.IN_ATTRIB) != 0:
				if _, open := t.devices[name]; !open {
					t.pending[name] = 0
				}
			}
		}
	}
}

func (t *Transport) openPending() {
	names := make([]string, 0, len(t.pending))
	for name := range t.pending {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d, err := t.open(name)
		if err == nil {
			delete(t.pending, name)
			t.devices[name] = d
			if t.listener != nil {
				t.listener.OnConnect(d)
			}
			continue
		}
		// udev usually fixes permissions shortly after the node appears
		if errors.Is(err, fs.ErrPermission) {
			t.pending[name]++
			if t.pending[name] < t.cfg.OpenRetries {
				continue
			}
		}
		t.logger.Warn("Cannot open joystick", "device", name, "error", err)
		delete(t.pending, name)
	}
}

func (t *Transport) open(name string) (*device, error) {
	idx, ok := joystickIndex(name)
	if !ok {
		return nil, fmt.Errorf("not a joystick node: %s", name)
	}
	js, err := joystick.Open(idx)
	if err != nil {
		return nil, err
	}
	d := &device{name: name, js: js, connected: true}
	d.props.Model = escapeString([]byte(js.Name()))
	d.props.VendorID = readHexID(filepath.Join(sysInputDir, name, "device", "id", "vendor"))
	d.props.ProductID = readHexID(filepath.Join(sysInputDir, name, "device", "id", "product"))

	t.logger.Debug("Opened joystick", "device", name, "model", d.props.Model, "axes", js.AxisCount(), "buttons", js.ButtonCount())
	return d, nil
}

func (t *Transport) remove(name string) {
	d, ok := t.devices[name]
	if !ok {
		return
	}
	delete(t.devices, name)
	d.connected = false
	d.fresh = false
	d.js.Close()
	if t.listener != nil {
		t.listener.OnDisconnect(d)
	}
}

func readHexID(path string) uint16 {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(b)), 16, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}
