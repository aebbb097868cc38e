//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/padshape/internal/util"
)

func init() {
	if util.IsRunFromGUI() && len(os.Args) < 2 {
		slog.Info("Detected GUI startup, showing usage")
		slog.Warn("Run from a CLI to shape or replay input!")
		os.Args = append(os.Args, "--help")
	}
}
