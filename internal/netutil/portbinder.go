package netutil

import (
	"fmt"
	"net"
	"strconv"
)

// AddressInUseError represents a "port already in use" error that preserves
// the original error for proper type checking while providing user-friendly messages.
type AddressInUseError struct {
	Port    int
	Address string
	Err     error
}

func (e *AddressInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use on %s", e.Port, e.Address)
}

func (e *AddressInUseError) Unwrap() error {
	return e.Err
}

// BindTCP binds a TCP listener on address:port and returns it together with
// the port actually bound. Port 0 lets the OS choose, which tests use to run
// several servers side by side.
//
// The listener is held by the caller until the server is ready to serve on
// it, so there is no window in which another process can take the port.
func BindTCP(address string, port int) (net.Listener, int, error) {
	addr := net.JoinHostPort(address, strconv.Itoa(port))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		if IsAddressInUseError(err) {
			return nil, 0, &AddressInUseError{
				Port:    port,
				Address: address,
				Err:     err,
			}
		}
		return nil, 0, fmt.Errorf("failed to bind TCP to %s: %w", addr, err)
	}

	actual, err := ListenerPort(listener)
	if err != nil {
		listener.Close()
		return nil, 0, err
	}
	return listener, actual, nil
}

// ListenerPort extracts the port number from a bound net.Listener.
func ListenerPort(listener net.Listener) (int, error) {
	tcpAddr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("listener is not a TCP listener: %T", listener.Addr())
	}
	return tcpAddr.Port, nil
}
