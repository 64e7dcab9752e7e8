package cell

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Params holds the operating conditions and device constants of a single
// membrane-electrode assembly. Currents are area normalized throughout.
type Params struct {
	Temperature    float64 `mapstructure:"temperature" validate:"gt=0"`      // Cell temperature (K)
	PH2            float64 `mapstructure:"p_h2" validate:"gt=0"`             // Hydrogen partial pressure (atm)
	PO2            float64 `mapstructure:"p_o2" validate:"gt=0"`             // Oxygen partial pressure (atm)
	Alpha          float64 `mapstructure:"alpha" validate:"gt=0,lte=1"`      // Charge transfer coefficient
	AreaResistance float64 `mapstructure:"area_resistance" validate:"gte=0"` // Membrane area resistance (ohm*cm^2)
	LimitCurrent   float64 `mapstructure:"limit_current" validate:"gt=0"`    // Limiting current density (A/cm^2)
}

var validate = validator.New()

// DefaultParams is the stock cell at 80 degC fed with both gases at 1 atm.
func DefaultParams() Params {
	return Params{
		Temperature:    353.0, // 80 degC
		PH2:            1.0,
		PO2:            1.0,
		Alpha:          0.5,
		AreaResistance: 0.2, // ohm*cm^2
		LimitCurrent:   1.8, // A/cm^2
	}
}

// Validate reports the first parameter outside its physical domain.
func (p Params) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("%w: %s=%v violates %s", ErrInvalidParameter, f.Field(), f.Value(), f.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
}
