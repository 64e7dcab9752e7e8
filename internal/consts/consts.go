package consts

const (
	GASCONST = 8.314  // Ideal gas constant (J/(mol*K))
	FARADAY  = 96485  // Faraday constant (C/mol)
	REFTEMP  = 298.15 // Standard reference temperature (K)
	KELVIN   = 273.15 // Kelvin temperature (K)
)
