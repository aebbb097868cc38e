// Package config declares the padshape command line.
package config

import (
	"github.com/Alia5/padshape/internal/cmd"
	"github.com/Alia5/padshape/internal/log"
)

// LogOptions configures the process logger.
type LogOptions struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info"`
	File    string `help:"Also write logs to this file; console output moves to stderr" type:"path"`
	RawFile string `help:"Hex dump every replayed frame to this file" type:"path"`
}

// CLI is the root kong model. Flags can also come from a config file and
// from PADSHAPE_* environment variables.
type CLI struct {
	ConfigFile string     `name:"config" help:"Path to a JSON, YAML or TOML config file" type:"path"`
	Log        LogOptions `embed:"" prefix:"log."`

	Stick   cmd.Stick         `cmd:"" help:"Shape one stick sample"`
	Trigger cmd.Trigger       `cmd:"" help:"Shape one trigger sample"`
	Steer   cmd.Steer         `cmd:"" help:"Convert a tilt angle into a steering axis"`
	Curve   cmd.Curve         `cmd:"" help:"Sample a gyro sensitivity curve"`
	Replay  cmd.Replay        `cmd:"" help:"Map recorded Steam Deck frames to a virtual controller"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// RawLogEnabled reports whether replay frames should be hex dumped to stderr
// when no raw log file is set.
func (o LogOptions) RawLogEnabled() bool {
	return o.RawFile == "" && log.ParseLevel(o.Level) <= log.LevelTrace
}
