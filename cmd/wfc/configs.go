package main

import (
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Quiet bool `cli:"name=q aliases=quiet desc='suppress progress diagnostics'"`

	Main *cli.Command
}

type GenerateConfig struct {
	*MainConfig

	N        int `cli:"name=n desc='pattern window size'"`
	Symmetry int `cli:"name=sym desc='dihedral variants per window (1..8)'"`
	Width    int `cli:"name=width desc='output width in pixels'"`
	Height   int `cli:"name=height desc='output height in pixels'"`

	PeriodicIn  bool `cli:"name=pi aliases=periodic-input desc='treat the sample as toric'"`
	PeriodicOut bool `cli:"name=po aliases=periodic-output desc='generate a toric output'"`
	Ground      bool `cli:"name=ground desc='pin the highest-id pattern to the bottom row'"`
	Scanline    bool `cli:"name=scanline desc='observe cells in scan order instead of by entropy'"`

	Seed     int `cli:"name=seed desc='base RNG seed (0 picks the fixed default)'"`
	Attempts int `cli:"name=attempts desc='solve attempts before giving up'"`
	Steps    int `cli:"name=steps desc='observation budget per attempt (0 = unbounded)'"`

	Salvage bool   `cli:"name=salvage desc='write the degraded render when every attempt contradicts'"`
	Out     string `cli:"name=o desc='output PNG file (default out.png)'"`

	Generate *cli.Command
}

type InfoConfig struct {
	*MainConfig

	N        int `cli:"name=n desc='pattern window size'"`
	Symmetry int `cli:"name=sym desc='dihedral variants per window (1..8)'"`

	PeriodicIn bool `cli:"name=pi aliases=periodic-input desc='treat the sample as toric'"`

	Info *cli.Command
}
