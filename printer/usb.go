package printer

import (
	"fmt"

	"github.com/google/gousb"

	logInternal "github.com/AlexStarov/graphprint-GoLang-lib/log"
)

type usbConn struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	out  *gousb.OutEndpoint
}

// openUSB claims the first interface of the device and writes to its
// lowest numbered bulk OUT endpoint.
func openUSB(vendorID, productID uint16) (Transport, error) {
	ctx := gousb.NewContext()
	conn := &usbConn{ctx: ctx}

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vendorID), gousb.ID(productID))
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open usb %04x:%04x: %w", vendorID, productID, err)
	}
	if dev == nil {
		conn.Close()
		return nil, fmt.Errorf("usb printer %04x:%04x not found", vendorID, productID)
	}
	conn.dev = dev
	_ = dev.SetAutoDetach(true)

	if conn.cfg, err = dev.Config(1); err != nil {
		conn.Close()
		return nil, fmt.Errorf("usb %04x:%04x config: %w", vendorID, productID, err)
	}
	if conn.intf, err = conn.cfg.Interface(0, 0); err != nil {
		conn.Close()
		return nil, fmt.Errorf("usb %04x:%04x interface: %w", vendorID, productID, err)
	}

	epNum := -1
	for _, ep := range conn.intf.Setting.Endpoints {
		if ep.Direction != gousb.EndpointDirectionOut || ep.TransferType != gousb.TransferTypeBulk {
			continue
		}
		if epNum < 0 || ep.Number < epNum {
			epNum = ep.Number
		}
	}
	if epNum < 0 {
		conn.Close()
		return nil, fmt.Errorf("usb %04x:%04x has no bulk out endpoint", vendorID, productID)
	}
	if conn.out, err = conn.intf.OutEndpoint(epNum); err != nil {
		conn.Close()
		return nil, fmt.Errorf("usb %04x:%04x endpoint %d: %w", vendorID, productID, epNum, err)
	}

	logInternal.Stdlog.Debug().Str("device", dev.String()).Int("endpoint", epNum).Msg("usb printer opened")
	return &RawTransport{conn: conn}, nil
}

func (u *usbConn) Write(p []byte) (int, error) {
	return u.out.Write(p)
}

func (u *usbConn) Close() error {
	if u.intf != nil {
		u.intf.Close()
	}
	if u.cfg != nil {
		u.cfg.Close()
	}
	if u.dev != nil {
		u.dev.Close()
	}
	if u.ctx != nil {
		u.ctx.Close()
	}
	return nil
}
