package ledcolor

// RGBCurrentSettings describes how much current each channel of an RGB pixel
// draws when fully lit, in units of 0.1 mA.
//
// A typical WS2812 draws about 20 mA per channel, which is 200 here.
type RGBCurrentSettings struct {
	RedTenthMilliAmpere   uint16
	GreenTenthMilliAmpere uint16
	BlueTenthMilliAmpere  uint16
}

// NewRGBCurrentSettings creates settings from the three channel ratings.
func NewRGBCurrentSettings(red, green, blue uint16) RGBCurrentSettings {
	return RGBCurrentSettings{
		RedTenthMilliAmpere:   red,
		GreenTenthMilliAmpere: green,
		BlueTenthMilliAmpere:  blue,
	}
}

// RGBWCurrentSettings extends RGBCurrentSettings with the rating of the
// white channel.
type RGBWCurrentSettings struct {
	RGBCurrentSettings
	WhiteCurrent uint16
}

// NewRGBWCurrentSettings creates settings from the four channel ratings.
func NewRGBWCurrentSettings(red, green, blue, white uint16) RGBWCurrentSettings {
	return RGBWCurrentSettings{
		RGBCurrentSettings: NewRGBCurrentSettings(red, green, blue),
		WhiteCurrent:       white,
	}
}
