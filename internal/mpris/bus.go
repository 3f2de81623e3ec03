package mpris

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// BusConn defines the D-Bus operations the player needs.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/bus_mock.go -package=mocks github.com/genricoloni/mediastage/internal/mpris BusConn,Controls
type BusConn interface {
	// RequestName claims a well-known name; false means another process owns it
	RequestName(name string) (bool, error)

	// Export publishes the exported methods of v under path and interface
	Export(v interface{}, path dbus.ObjectPath, iface string) error

	// Emit sends a signal from path
	// name: the fully qualified member (e.g., "org.freedesktop.DBus.Properties.PropertiesChanged")
	Emit(path dbus.ObjectPath, name string, values ...interface{}) error

	// Close closes the D-Bus connection
	Close() error
}

// StdBusConn is the real implementation using godbus
type StdBusConn struct {
	conn *dbus.Conn
}

// NewStdBusConn creates a real D-Bus connection to the session bus
func NewStdBusConn() (BusConn, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdBusConn{conn: conn}, nil
}

// RequestName claims name without queueing behind an existing owner
func (c *StdBusConn) RequestName(name string) (bool, error) {
	reply, err := c.conn.RequestName(name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return false, fmt.Errorf("failed to request bus name %s: %w", name, err)
	}
	return reply == dbus.RequestNameReplyPrimaryOwner, nil
}

// Export publishes v on the bus
func (c *StdBusConn) Export(v interface{}, path dbus.ObjectPath, iface string) error {
	return c.conn.Export(v, path, iface)
}

// Emit sends a signal
func (c *StdBusConn) Emit(path dbus.ObjectPath, name string, values ...interface{}) error {
	return c.conn.Emit(path, name, values...)
}

// Close closes the D-Bus connection
func (c *StdBusConn) Close() error {
	return c.conn.Close()
}
