// Package presets declares the input controls of every device page:
// range, default and step per quantity, per unit system. The shell builds
// its sliders from these instead of hardcoding them. Values can be
// overridden from an ini file; the compiled-in defaults reproduce the
// reference exercises.
package presets

import (
	"fmt"

	"Thermex/internal/units"

	"gopkg.in/ini.v1"
)

type Field struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Step    float64 `json:"step"`
}

type Store struct {
	sets map[string][]Field
}

func key(device string, sys units.System) string {
	return device + "." + sys.String()
}

// Fields returns the control set for a device in one unit system.
func (s *Store) Fields(device string, sys units.System) ([]Field, bool) {
	f, ok := s.sets[key(device, sys)]
	return f, ok
}

// Devices lists the devices the store knows about.
func (s *Store) Devices() []string {
	return []string{"pump", "boiler", "turbine", "compressor", "condenser", "nozzle"}
}

// Load returns the defaults overridden by the given ini file. A missing
// file is not an error; the defaults stand. Override sections are named
// <device>.<system>.<field>, e.g.:
//
//	[pump.SI.caudal_volumetrico]
//	max     = 0.2
//	default = 0.02
func Load(path string) (*Store, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return s, err
	}
	for k, fields := range s.sets {
		for i := range fields {
			sec := file.Section(fmt.Sprintf("%s.%s", k, fields[i].Name))
			fields[i].Min = sec.Key("min").MustFloat64(fields[i].Min)
			fields[i].Max = sec.Key("max").MustFloat64(fields[i].Max)
			fields[i].Default = sec.Key("default").MustFloat64(fields[i].Default)
			fields[i].Step = sec.Key("step").MustFloat64(fields[i].Step)
		}
	}
	return s, nil
}

func f(name, label, unit string, min, max, def, step float64) Field {
	return Field{Name: name, Label: label, Unit: unit, Min: min, Max: max, Default: def, Step: step}
}

// Defaults reproduces the control definitions of the original exercise
// pages.
func Defaults() *Store {
	s := &Store{sets: map[string][]Field{}}

	s.sets[key("pump", units.SI)] = []Field{
		f("caudal_volumetrico", "Caudal Volumétrico (V̇)", "m³/s", 0.001, 0.1, 0.0156, 0.0001),
		f("presion_entrada", "Presión de Entrada (P₁)", "kPa", 10, 1000, 100, 1),
		f("presion_salida", "Presión de Salida (P₂)", "MPa", 0.5, 15, 2.5, 0.1),
	}
	s.sets[key("pump", units.Imperial)] = []Field{
		f("caudal_volumetrico", "Caudal Volumétrico (V̇)", "ft³/s", 0.01, 5, 0.55, 0.01),
		f("presion_entrada", "Presión de Entrada (P₁)", "psi", 1, 150, 14.7, 0.1),
		f("presion_salida", "Presión de Salida (P₂)", "psi", 50, 2200, 362.6, 1),
	}

	s.sets[key("boiler", units.SI)] = []Field{
		f("presion_proceso", "Presión del Proceso", "MPa", 0.1, 25, 5, 0.1),
		f("temperatura_entrada", "Temp. Entrada", "°C", 10, 1300, 60, 1),
		f("temperatura_salida", "Temp. Salida", "°C", 100, 1300, 450, 1),
		f("velocidad_salida", "Velocidad Salida", "m/s", 1, 150, 80, 1),
		f("diametro_tubo", "Diámetro Tubo", "mm", 10, 500, 120, 1),
	}
	s.sets[key("boiler", units.Imperial)] = []Field{
		f("presion_proceso", "Presión del Proceso", "psi", 15, 3600, 725, 5),
		f("temperatura_entrada", "Temp. Entrada", "°F", 50, 660, 140, 5),
		f("temperatura_salida", "Temp. Salida", "°F", 212, 1800, 842, 10),
		f("velocidad_salida", "Velocidad Salida", "ft/s", 3, 500, 262, 5),
		f("diametro_tubo", "Diámetro Tubo", "in", 0.5, 20, 4.7, 0.1),
	}

	s.sets[key("turbine", units.SI)] = []Field{
		f("flujo_masico", "Flujo Másico (ṁ)", "kg/s", 1, 100, 15, 1),
		f("presion_1", "Presión (P₁)", "MPa", 1, 15, 5, 0.5),
		f("temperatura_1", "Temperatura (T₁)", "°C", 200, 600, 350, 5),
		f("velocidad_1", "Velocidad (V₁)", "m/s", 10, 200, 70, 5),
		f("presion_2", "Presión (P₂)", "kPa", 10, 200, 75, 5),
		f("calidad_2", "Calidad de Vapor (x₂)", "", 0, 1, 0.9, 0.01),
		f("velocidad_2", "Velocidad (V₂)", "m/s", 10, 200, 40, 5),
		f("perdida_calor_1", "Pérdida Caso I (q)", "kJ/kg", 0, 100, 10, 5),
		f("perdida_calor_2", "Pérdida Caso II (q)", "kJ/kg", 0, 200, 80, 5),
	}
	s.sets[key("turbine", units.Imperial)] = []Field{
		f("flujo_masico", "Flujo Másico (ṁ)", "lbm/s", 2, 220, 33, 1),
		f("presion_1", "Presión (P₁)", "psi", 150, 2200, 725, 10),
		f("temperatura_1", "Temperatura (T₁)", "°F", 400, 1100, 662, 10),
		f("velocidad_1", "Velocidad (V₁)", "ft/s", 30, 650, 230, 10),
		f("presion_2", "Presión (P₂)", "psi", 1.5, 30, 10.9, 0.5),
		f("calidad_2", "Calidad de Vapor (x₂)", "", 0, 1, 0.9, 0.01),
		f("velocidad_2", "Velocidad (V₂)", "ft/s", 30, 650, 131, 10),
		f("perdida_calor_1", "Pérdida Caso I (q)", "Btu/lbm", 0, 50, 4.3, 1),
		f("perdida_calor_2", "Pérdida Caso II (q)", "Btu/lbm", 0, 100, 34.4, 1),
	}

	s.sets[key("compressor", units.SI)] = []Field{
		f("flujo_masico", "Flujo másico (ṁ)", "kg/s", 0.01, 2, 0.3, 0.01),
		f("calor_disipado", "Calor disipado (q)", "kJ/kg", 0, 100, 15, 0.5),
		f("presion_1", "Presión (P₁)", "kPa", 50, 500, 100, 1),
		f("temperatura_1", "Temperatura (T₁)", "K", 250, 600, 300, 1),
		f("velocidad_1", "Velocidad (V₁)", "m/s", 0, 100, 5, 0.5),
		f("presion_2", "Presión (P₂)", "kPa", 100, 1500, 800, 5),
		f("temperatura_2", "Temperatura (T₂)", "K", 300, 1000, 500, 1),
		f("velocidad_2", "Velocidad (V₂)", "m/s", 0, 100, 7, 0.5),
	}
	s.sets[key("compressor", units.Imperial)] = []Field{
		f("flujo_masico", "Flujo másico (ṁ)", "lbm/s", 0.02, 4, 0.66, 0.02),
		f("calor_disipado", "Calor disipado (q)", "Btu/lbm", 0, 50, 6.4, 0.2),
		f("presion_1", "Presión (P₁)", "psi", 7, 75, 14.7, 0.5),
		f("temperatura_1", "Temperatura (T₁)", "°R", 450, 1100, 540, 5),
		f("velocidad_1", "Velocidad (V₁)", "ft/s", 0, 330, 16.4, 1),
		f("presion_2", "Presión (P₂)", "psi", 15, 220, 116, 1),
		f("temperatura_2", "Temperatura (T₂)", "°R", 540, 1800, 900, 5),
		f("velocidad_2", "Velocidad (V₂)", "ft/s", 0, 330, 23, 1),
	}

	s.sets[key("condenser", units.SI)] = []Field{
		f("flujo_masico_vapor", "Flujo másico de vapor", "kg/min", 1, 1000, 420, 1),
		f("presion", "Presión del vapor", "kPa", 5, 600, 30, 0.5),
		f("calidad_entrada", "Calidad del vapor (x)", "", 0, 1, 0.9, 0.01),
		f("delta_t_agua", "Incremento de temp. del agua", "°C", 1, 30, 10, 0.5),
	}
	s.sets[key("condenser", units.Imperial)] = []Field{
		f("flujo_masico_vapor", "Flujo másico de vapor", "lbm/min", 2, 2200, 926, 10),
		f("presion", "Presión del vapor", "psi", 0.7, 30, 4.35, 0.05),
		f("calidad_entrada", "Calidad del vapor (x)", "", 0, 1, 0.9, 0.01),
		f("delta_t_agua", "Incremento de temp. del agua", "°F", 2, 55, 18, 1),
	}

	s.sets[key("nozzle", units.SI)] = []Field{
		f("presion_1", "Presión entrada P₁", "kPa", 50, 1000, 350, 10),
		f("temperatura_1", "Temperatura entrada T₁", "°C", -50, 800, 227, 5),
		f("velocidad_1", "Velocidad entrada V₁", "m/s", 1, 500, 50, 1),
		f("area_1", "Área entrada A₁", "cm²", 1, 1000, 100, 1),
		f("presion_2", "Presión salida P₂", "kPa", 5, 1000, 120, 5),
		f("velocidad_2", "Velocidad salida V₂", "m/s", 1, 1000, 190, 1),
	}
	s.sets[key("nozzle", units.Imperial)] = []Field{
		f("presion_1", "Presión entrada P₁", "psi", 7, 150, 50.8, 1),
		f("temperatura_1", "Temperatura entrada T₁", "°F", -58, 1500, 440, 10),
		f("velocidad_1", "Velocidad entrada V₁", "ft/s", 3, 1600, 164, 5),
		f("area_1", "Área entrada A₁", "in²", 0.1, 160, 15.5, 0.5),
		f("presion_2", "Presión salida P₂", "psi", 0.7, 150, 17.4, 0.5),
		f("velocidad_2", "Velocidad salida V₂", "ft/s", 3, 3300, 623, 10),
	}

	return s
}
