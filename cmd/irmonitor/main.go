// irmonitor reads the receiver's HID interrupt endpoint from a host and
// prints each report as the action it carries.
//
// Usage:
//
//	irmonitor [-vid 0x2e8a] [-pid 0x000a] [-intf 2] [-ep 4] [-v]
//
// The kernel HID driver is detached from the interface while irmonitor runs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/gousb"

	"github.com/sparques/irkbd/hid"
)

func main() {
	vid := flag.Uint("vid", 0x2E8A, "USB vendor id")
	pid := flag.Uint("pid", 0x000A, "USB product id")
	intf := flag.Int("intf", 2, "HID interface number")
	ep := flag.Int("ep", 4, "interrupt IN endpoint number")
	verbose := flag.Bool("v", false, "print raw report bytes")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := monitor(ctx, gousb.ID(*vid), gousb.ID(*pid), *intf, *ep)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("irmonitor failed", "err", err)
		os.Exit(1)
	}
}

var errNotFound = errors.New("device not found")

func monitor(ctx context.Context, vid, pid gousb.ID, intfNum, epNum int) error {
	usb := gousb.NewContext()
	defer usb.Close()

	dev, err := usb.OpenDeviceWithVIDPID(vid, pid)
	if err != nil {
		return err
	}
	if dev == nil {
		return fmt.Errorf("%s:%s: %w", vid, pid, errNotFound)
	}
	defer dev.Close()

	if err := dev.SetAutoDetach(true); err != nil {
		return err
	}

	cfg, err := dev.Config(1)
	if err != nil {
		return err
	}
	defer cfg.Close()

	intf, err := cfg.Interface(intfNum, 0)
	if err != nil {
		return err
	}
	defer intf.Close()

	in, err := intf.InEndpoint(epNum)
	if err != nil {
		return err
	}
	slog.Info("monitoring", "device", fmt.Sprintf("%s:%s", vid, pid), "interface", intfNum, "endpoint", epNum)

	buf := make([]byte, in.Desc.MaxPacketSize)
	for {
		n, err := in.ReadContext(ctx, buf)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if n == 0 {
			continue
		}
		slog.Debug("report", "bytes", fmt.Sprintf("% X", buf[:n]))
		fmt.Println(hid.Describe(buf[:n]))
	}
}
