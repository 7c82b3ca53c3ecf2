package config

// Balance holds gameplay balance configuration. Defaults mirror the
// tuned live values; presets adjust them per difficulty.
type Balance struct {
	// Rent billing
	BaseRent        int `yaml:"base_rent" json:"base_rent"`
	LuxuryRent      int `yaml:"luxury_rent" json:"luxury_rent"`
	RentInterval    int `yaml:"rent_interval" json:"rent_interval"`
	RentWarningDays int `yaml:"rent_warning_days" json:"rent_warning_days"`
	MaxRentStrikes  int `yaml:"max_rent_strikes" json:"max_rent_strikes"`

	// Terminal conditions
	WinGoal     int `yaml:"win_goal" json:"win_goal"`
	MaxBurnouts int `yaml:"max_burnouts" json:"max_burnouts"`

	// Burnout and overnight recovery
	BurnoutLockoutDays int     `yaml:"burnout_lockout_days" json:"burnout_lockout_days"`
	EnergyRegen        float64 `yaml:"energy_regen" json:"energy_regen"`
	BurnoutEnergyRegen float64 `yaml:"burnout_energy_regen" json:"burnout_energy_regen"`

	// Random events
	EventChance float64 `yaml:"event_chance" json:"event_chance"`

	// Job board
	DailyOffers int `yaml:"daily_offers" json:"daily_offers"`
	EasyNetDays int `yaml:"easy_net_days" json:"easy_net_days"`
	PinDays     int `yaml:"pin_days" json:"pin_days"`

	// Daily routine actions
	HomeRestEnergy  float64 `yaml:"home_rest_energy" json:"home_rest_energy"`
	HomeRestStress  float64 `yaml:"home_rest_stress" json:"home_rest_stress"`
	HomeRestHours   float64 `yaml:"home_rest_hours" json:"home_rest_hours"`
	LuxuryRestHours float64 `yaml:"luxury_rest_hours" json:"luxury_rest_hours"`

	CafeFee    int     `yaml:"cafe_fee" json:"cafe_fee"`
	CafeEnergy float64 `yaml:"cafe_energy" json:"cafe_energy"`
	CafeStress float64 `yaml:"cafe_stress" json:"cafe_stress"`
	CafeHours  float64 `yaml:"cafe_hours" json:"cafe_hours"`

	StudyCostPerLevel int     `yaml:"study_cost_per_level" json:"study_cost_per_level"`
	StudyEnergy       float64 `yaml:"study_energy" json:"study_energy"`
	StudyStress       float64 `yaml:"study_stress" json:"study_stress"`
	StudyHours        float64 `yaml:"study_hours" json:"study_hours"`
}

// Default returns the standard balance configuration.
func Default() Balance {
	return Balance{
		BaseRent:           2000,
		LuxuryRent:         10000,
		RentInterval:       10,
		RentWarningDays:    2,
		MaxRentStrikes:     2,
		WinGoal:            1000000,
		MaxBurnouts:        3,
		BurnoutLockoutDays: 3,
		EnergyRegen:        10,
		BurnoutEnergyRegen: 20,
		EventChance:        0.20,
		DailyOffers:        4,
		EasyNetDays:        3,
		PinDays:            3,
		HomeRestEnergy:     40,
		HomeRestStress:     15,
		HomeRestHours:      8,
		LuxuryRestHours:    6,
		CafeFee:            150,
		CafeEnergy:         15,
		CafeStress:         25,
		CafeHours:          2,
		StudyCostPerLevel:  800,
		StudyEnergy:        30,
		StudyStress:        8,
		StudyHours:         4,
	}
}

// Casual returns easier balance for casual players.
func Casual() Balance {
	cfg := Default()
	cfg.BaseRent = 1500
	cfg.RentInterval = 12
	cfg.EventChance = 0.15
	cfg.EnergyRegen = 15
	cfg.BurnoutLockoutDays = 2
	return cfg
}

// Hard returns harder balance for experienced players.
func Hard() Balance {
	cfg := Default()
	cfg.BaseRent = 3000
	cfg.LuxuryRent = 12000
	cfg.RentInterval = 8
	cfg.EventChance = 0.25
	cfg.EasyNetDays = 1
	cfg.PinDays = 2
	return cfg
}

// Preset resolves a named difficulty to its balance set. Unknown names
// fall back to the default.
func Preset(name string) Balance {
	switch name {
	case "casual":
		return Casual()
	case "hard":
		return Hard()
	default:
		return Default()
	}
}
