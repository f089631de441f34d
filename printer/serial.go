package printer

import (
	"errors"
	"fmt"

	"go.bug.st/serial"

	logInternal "github.com/AlexStarov/graphprint-GoLang-lib/log"
)

// openSerial opens portName at baudRate, 8 data bits, no parity, one stop
// bit. RTS/CTS and XON/XOFF stay off.
func openSerial(portName string, baudRate int) (Transport, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	if !contains(ports, portName) {
		// symlinks such as /dev/serial0 are not listed but still open
		logInternal.Stdlog.Warn().Str("port", portName).Strs("available", ports).Msg("serial port not listed")
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		logInternal.Errlog.Error().Err(err).Str("port", portName).Str("hint", serialErrorHint(err)).Msg("failed to open serial port")
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}

	logInternal.Stdlog.Debug().Str("port", portName).Int("baud", baudRate).Msg("serial port opened")
	return &RawTransport{conn: port}, nil
}

func serialErrorHint(err error) string {
	var code serial.PortErrorCode
	var ptr *serial.PortError
	var val serial.PortError
	switch {
	case errors.As(err, &ptr):
		code = ptr.Code()
	case errors.As(err, &val):
		code = val.Code()
	default:
		return ""
	}

	switch code {
	case serial.PortNotFound:
		return "port not found"
	case serial.PermissionDenied:
		return "permission denied, check the dialout group"
	case serial.PortBusy:
		return "port busy"
	case serial.InvalidSpeed:
		return "baud rate not supported"
	}
	return ""
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
