package netutil

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"
)

func TestBindTCPEphemeralPort(t *testing.T) {
	listener, port, err := BindTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("BindTCP() error = %v", err)
	}
	defer listener.Close()

	if port == 0 {
		t.Error("BindTCP() returned port 0, want OS-assigned port")
	}

	got, err := ListenerPort(listener)
	if err != nil {
		t.Fatalf("ListenerPort() error = %v", err)
	}
	if got != port {
		t.Errorf("ListenerPort() = %d, want %d", got, port)
	}
}

func TestBindTCPAddressInUse(t *testing.T) {
	first, port, err := BindTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("BindTCP() error = %v", err)
	}
	defer first.Close()

	_, _, err = BindTCP("127.0.0.1", port)
	if err == nil {
		t.Fatal("BindTCP() on a busy port should fail")
	}

	var inUse *AddressInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("BindTCP() error = %T, want *AddressInUseError", err)
	}
	if inUse.Port != port {
		t.Errorf("AddressInUseError.Port = %d, want %d", inUse.Port, port)
	}
	if !IsAddressInUseError(err) {
		t.Error("IsAddressInUseError() = false for wrapped EADDRINUSE")
	}
}

func TestIsConnectionRefusedError(t *testing.T) {
	listener, port, err := BindTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("BindTCP() error = %v", err)
	}
	listener.Close()

	_, err = net.DialTimeout("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), time.Second)
	if err == nil {
		t.Skip("port was reused before dial")
	}
	if !IsConnectionRefusedError(err) {
		t.Errorf("IsConnectionRefusedError(%v) = false, want true", err)
	}
	if IsConnectionRefusedError(errors.New("connection refused")) {
		t.Error("IsConnectionRefusedError() matched a plain string error")
	}
}

func TestIsTimeoutError(t *testing.T) {
	listener, _, err := BindTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("BindTCP() error = %v", err)
	}
	defer listener.Close()

	// Accept connections but never answer.
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	_, err = client.Get("http://" + listener.Addr().String() + "/")
	if err == nil {
		t.Fatal("request to silent server should time out")
	}
	if !IsTimeoutError(err) {
		t.Errorf("IsTimeoutError(%v) = false, want true", err)
	}
	if IsTimeoutError(errors.New("timeout")) {
		t.Error("IsTimeoutError() matched a plain string error")
	}
}
