package atmosphere

import "math"

// Physical constants of the two-layer standard atmosphere (troposphere plus
// lower stratosphere). SI units throughout.
const (
	EarthRadiusM    = 6.371e6
	LapseRateKM     = -6.5e-3 // K per meter, below the tropopause
	GravityZero     = 9.81    // m/s^2
	RAir            = 286.9   // J/(kg*K)
	GammaAir        = 1.4
	DensityZero     = 1.2237   // kg/m^3 at sea level
	TemperatureZero = 288.16   // K at sea level
	PressureZero    = 101325.0 // Pa at sea level

	// Troposphere / stratosphere junction.
	AltitudeJunction    = 11e3   // m
	TemperatureJunction = 216.66 // K

	// Sutherland's law, referenced to the sea-level temperature.
	ViscosityZero      = 1.789e-5 // kg/(m*s)
	SutherlandConstant = 110.4    // K
)

// State holds the atmospheric properties at one altitude. All fields derive
// deterministically from the altitude, so two states built for the same
// altitude are equal.
type State struct {
	AltitudeM    float64 `json:"altitude_m"`
	TemperatureK float64 `json:"temperature_k"`
	TemperatureC float64 `json:"temperature_c"`
	PressurePa   float64 `json:"pressure_pa"`
	DensityKgM3  float64 `json:"density_kg_m3"`
	SoundSpeedMS float64 `json:"sound_speed_m_s"`
	ViscosityPaS float64 `json:"viscosity_kg_m_s"`
	GravityMS2   float64 `json:"gravity_m_s2"`
}

// Evaluate computes the standard atmosphere at the given altitude in meters.
// Defined for all real altitudes; negative altitudes extrapolate the
// tropospheric formulas.
func Evaluate(altitudeM float64) State {
	t := temperature(altitudeM)
	return State{
		AltitudeM:    altitudeM,
		TemperatureK: t,
		TemperatureC: t - 273.15,
		PressurePa:   pressure(altitudeM, t),
		DensityKgM3:  density(altitudeM, t),
		SoundSpeedMS: math.Sqrt(GammaAir * RAir * t),
		ViscosityPaS: viscosity(t),
		GravityMS2:   GravityZero * math.Pow(EarthRadiusM/(EarthRadiusM+altitudeM), 2),
	}
}

func temperature(h float64) float64 {
	if h < AltitudeJunction {
		return TemperatureZero + LapseRateKM*h
	}
	return TemperatureJunction
}

// Polytropic relation below the junction, exponential decay above it.
func pressure(h, t float64) float64 {
	exp := -GravityZero / (LapseRateKM * RAir)
	if h < AltitudeJunction {
		return PressureZero * math.Pow(t/TemperatureZero, exp)
	}
	pj := PressureZero * math.Pow(TemperatureJunction/TemperatureZero, exp)
	return pj * math.Exp(-GravityZero/(RAir*t)*(h-AltitudeJunction))
}

func density(h, t float64) float64 {
	exp := -GravityZero/(LapseRateKM*RAir) - 1
	if h < AltitudeJunction {
		return DensityZero * math.Pow(t/TemperatureZero, exp)
	}
	dj := DensityZero * math.Pow(TemperatureJunction/TemperatureZero, exp)
	return dj * math.Exp(-GravityZero/(RAir*t)*(h-AltitudeJunction))
}

// Sutherland's law for the dynamic viscosity of air.
func viscosity(t float64) float64 {
	return ViscosityZero * math.Pow(t/TemperatureZero, 1.5) *
		(TemperatureZero + SutherlandConstant) / (t + SutherlandConstant)
}
