// Package mpris publishes the editing session on the D-Bus session bus as an
// MPRIS media player, so desktop media keys and widgets can drive the clock.
package mpris

import (
	"context"
	"strings"
	"sync"

	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	BusName    = "org.mpris.MediaPlayer2.mediastage"
	ObjectPath = dbus.ObjectPath("/org/mpris/MediaPlayer2")

	rootIface       = "org.mpris.MediaPlayer2"
	playerIface     = "org.mpris.MediaPlayer2.Player"
	propertiesIface = "org.freedesktop.DBus.Properties"

	noTrack     = dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack")
	trackPrefix = "/org/mediastage/item/"

	microseconds = 1e6
)

// Controls is the part of the engine the player drives
type Controls interface {
	TogglePlay() error
	Play() error
	Pause() error
	Seek(t float64) error
	Nudge(delta float64) error
	State() domain.PlaybackState
}

// Player is the MPRIS server for the session
type Player struct {
	logger   *zap.Logger
	controls Controls
	enabled  bool
	connect  func() (BusConn, error)

	mu   sync.Mutex
	conn BusConn
}

// NewPlayer creates an MPRIS player over controls
func NewPlayer(logger *zap.Logger, cfg domain.Config, controls Controls) *Player {
	return &Player{
		logger:   logger,
		controls: controls,
		enabled:  cfg.GetMPRISEnabled(),
		connect:  NewStdBusConn,
	}
}

// Start claims the bus name and exports the player. A missing session bus is
// logged and tolerated; the daemon keeps running without media keys.
func (p *Player) Start(ctx context.Context) error {
	if !p.enabled {
		p.logger.Info("MPRIS player disabled by configuration")
		return nil
	}

	conn, err := p.connect()
	if err != nil {
		p.logger.Warn("Session bus unavailable, MPRIS player disabled", zap.Error(err))
		return nil
	}

	owned, err := conn.RequestName(BusName)
	if err != nil || !owned {
		p.logger.Warn("Could not claim MPRIS bus name, player disabled",
			zap.String("name", BusName),
			zap.Error(err))
		if cerr := conn.Close(); cerr != nil {
			p.logger.Warn("Failed to close D-Bus connection", zap.Error(cerr))
		}
		return nil
	}

	exports := []struct {
		v     interface{}
		iface string
	}{
		{root{}, rootIface},
		{playerMethods{p}, playerIface},
		{properties{p}, propertiesIface},
	}
	for _, e := range exports {
		if err := conn.Export(e.v, ObjectPath, e.iface); err != nil {
			p.logger.Warn("Failed to export MPRIS interface", zap.String("iface", e.iface), zap.Error(err))
			_ = conn.Close()
			return nil
		}
	}

	p.mu.Lock()
	p.conn = conn
	p.mu.Unlock()

	p.logger.Info("MPRIS player published", zap.String("name", BusName))
	return nil
}

// Stop releases the bus connection
func (p *Player) Stop(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}
	if err := p.conn.Close(); err != nil {
		p.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
	}
	p.conn = nil
	p.logger.Info("MPRIS player shutdown complete")
	return nil
}

// StatusChanged emits PropertiesChanged for the new status.
// Called from the engine loop.
func (p *Player) StatusChanged(status domain.PlayerStatus) {
	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()

	if conn == nil {
		return
	}

	state := p.controls.State()
	state.Status = status
	changed := map[string]dbus.Variant{
		"PlaybackStatus": dbus.MakeVariant(string(status)),
		"Metadata":       dbus.MakeVariant(metadata(state)),
	}

	if err := conn.Emit(ObjectPath, propertiesIface+".PropertiesChanged", playerIface, changed, []string{}); err != nil {
		p.logger.Warn("Failed to emit PropertiesChanged", zap.Error(err))
	}
}

// trackID maps the item identity to a valid object path
func trackID(item *domain.MediaItem) dbus.ObjectPath {
	if item == nil {
		return noTrack
	}
	return dbus.ObjectPath(trackPrefix + strings.ReplaceAll(item.ID, "-", "_"))
}

func metadata(state domain.PlaybackState) map[string]dbus.Variant {
	md := map[string]dbus.Variant{
		"mpris:trackid": dbus.MakeVariant(trackID(state.Item)),
	}
	if state.Item == nil {
		return md
	}
	md["mpris:length"] = dbus.MakeVariant(toMicros(state.Item.Range.End - state.Item.Range.Start))
	md["xesam:url"] = dbus.MakeVariant("file://" + state.Item.Source)
	md["xesam:title"] = dbus.MakeVariant(title(state.Item.Source))
	return md
}

func title(source string) string {
	if i := strings.LastIndexByte(source, '/'); i >= 0 {
		return source[i+1:]
	}
	return source
}

func toMicros(seconds float64) int64 {
	return int64(seconds * microseconds)
}

func fromMicros(us int64) float64 {
	return float64(us) / microseconds
}

// commandError converts an engine error into a D-Bus reply
func commandError(err error) *dbus.Error {
	if err == nil {
		return nil
	}
	return dbus.MakeFailedError(err)
}

// root implements org.mpris.MediaPlayer2
type root struct{}

// Raise is accepted and ignored; the player has no window
func (root) Raise() *dbus.Error { return nil }

// Quit is accepted and ignored; CanQuit is false
func (root) Quit() *dbus.Error { return nil }

// playerMethods implements org.mpris.MediaPlayer2.Player
type playerMethods struct {
	p *Player
}

func (m playerMethods) PlayPause() *dbus.Error {
	return commandError(m.p.controls.TogglePlay())
}

func (m playerMethods) Play() *dbus.Error {
	return commandError(m.p.controls.Play())
}

func (m playerMethods) Pause() *dbus.Error {
	return commandError(m.p.controls.Pause())
}

// Stop pauses and rewinds to the start of the range
func (m playerMethods) Stop() *dbus.Error {
	if err := m.p.controls.Pause(); err != nil {
		return commandError(err)
	}
	state := m.p.controls.State()
	if state.Item == nil {
		return nil
	}
	return commandError(m.p.controls.Seek(state.Item.Range.Start))
}

// Seek moves relative to the current position, in microseconds
func (m playerMethods) Seek(offset int64) *dbus.Error {
	return commandError(m.p.controls.Nudge(fromMicros(offset)))
}

// SetPosition seeks to an absolute position; stale track IDs are ignored
func (m playerMethods) SetPosition(track dbus.ObjectPath, position int64) *dbus.Error {
	state := m.p.controls.State()
	if state.Item == nil || track != trackID(state.Item) {
		m.p.logger.Debug("Ignoring SetPosition for another track", zap.String("track", string(track)))
		return nil
	}
	return commandError(m.p.controls.Seek(fromMicros(position)))
}

// Next is a no-op; there is only ever one item
func (m playerMethods) Next() *dbus.Error { return nil }

// Previous is a no-op; there is only ever one item
func (m playerMethods) Previous() *dbus.Error { return nil }

// properties implements org.freedesktop.DBus.Properties
type properties struct {
	p *Player
}

func (pr properties) Get(iface, name string) (dbus.Variant, *dbus.Error) {
	all, derr := pr.GetAll(iface)
	if derr != nil {
		return dbus.Variant{}, derr
	}
	v, ok := all[name]
	if !ok {
		return dbus.Variant{}, dbus.NewError("org.freedesktop.DBus.Error.UnknownProperty", []interface{}{name})
	}
	return v, nil
}

func (pr properties) GetAll(iface string) (map[string]dbus.Variant, *dbus.Error) {
	switch iface {
	case rootIface:
		return map[string]dbus.Variant{
			"Identity":            dbus.MakeVariant("mediastage"),
			"CanQuit":             dbus.MakeVariant(false),
			"CanRaise":            dbus.MakeVariant(false),
			"HasTrackList":        dbus.MakeVariant(false),
			"SupportedUriSchemes": dbus.MakeVariant([]string{"file"}),
			"SupportedMimeTypes":  dbus.MakeVariant([]string{"image/png", "image/jpeg", "image/gif", "video/mp4", "video/webm"}),
		}, nil

	case playerIface:
		state := pr.p.controls.State()
		playable := state.Item != nil && state.Item.Playable()
		return map[string]dbus.Variant{
			"PlaybackStatus": dbus.MakeVariant(string(state.Status)),
			"Position":       dbus.MakeVariant(toMicros(state.CurrentTime)),
			"Metadata":       dbus.MakeVariant(metadata(state)),
			"Rate":           dbus.MakeVariant(1.0),
			"MinimumRate":    dbus.MakeVariant(1.0),
			"MaximumRate":    dbus.MakeVariant(1.0),
			"Volume":         dbus.MakeVariant(1.0),
			"CanControl":     dbus.MakeVariant(true),
			"CanPlay":        dbus.MakeVariant(playable),
			"CanPause":       dbus.MakeVariant(playable),
			"CanSeek":        dbus.MakeVariant(state.Item != nil),
			"CanGoNext":      dbus.MakeVariant(false),
			"CanGoPrevious":  dbus.MakeVariant(false),
		}, nil
	}
	return nil, dbus.NewError("org.freedesktop.DBus.Error.UnknownInterface", []interface{}{iface})
}

// Set rejects every write; the exposed properties are read-only
func (pr properties) Set(iface, name string, value dbus.Variant) *dbus.Error {
	return dbus.NewError("org.freedesktop.DBus.Error.PropertyReadOnly", []interface{}{name})
}
