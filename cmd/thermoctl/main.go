// thermoctl runs one device calculation from the command line: the input
// bundle is read as JSON on stdin and the result bundle is printed as
// JSON on stdout.
//
//	echo '{"caudal_volumetrico":0.0156,"presion_entrada":100,"presion_salida":2.5}' | thermoctl -device pump
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"Thermex/internal/calc/boiler"
	"Thermex/internal/calc/compressor"
	"Thermex/internal/calc/condenser"
	"Thermex/internal/calc/nozzle"
	"Thermex/internal/calc/pump"
	"Thermex/internal/calc/turbine"
	"Thermex/internal/steam"

	log "github.com/sirupsen/logrus"
)

func main() {
	device := flag.String("device", "", "pump | boiler | turbine | compressor | condenser | nozzle")
	flag.Parse()

	props := steam.NewCache(steam.New())
	dec := json.NewDecoder(os.Stdin)

	var (
		res any
		err error
	)
	switch *device {
	case "pump":
		var in pump.Input
		if err = dec.Decode(&in); err == nil {
			res, err = pump.Calculate(props, in)
		}
	case "boiler":
		var in boiler.Input
		if err = dec.Decode(&in); err == nil {
			res, err = boiler.Calculate(props, in)
		}
	case "turbine":
		var in turbine.Input
		if err = dec.Decode(&in); err == nil {
			res, err = turbine.Calculate(props, in)
		}
	case "compressor":
		var in compressor.Input
		if err = dec.Decode(&in); err == nil {
			res, err = compressor.Calculate(in)
		}
	case "condenser":
		var in condenser.Input
		if err = dec.Decode(&in); err == nil {
			res, err = condenser.Calculate(props, in)
		}
	case "nozzle":
		var in nozzle.Input
		if err = dec.Decode(&in); err == nil {
			res, err = nozzle.Calculate(in)
		}
	default:
		fmt.Fprintln(os.Stderr, "unknown device, use -device pump|boiler|turbine|compressor|condenser|nozzle")
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Fatal("calculation failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.WithError(err).Fatal("encoding result failed")
	}
}
