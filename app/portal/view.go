package portal

import "agrimate/app/agrimate/model"

// Views render whatever a manager hands them. Loading fires synchronously
// before any network I/O; NoData replaces an empty render so the user never
// sees a blank area.
type PriceView interface {
	Loading()
	RenderPrices(prices []model.Price)
	NoData()
}

type SchemeView interface {
	Loading()
	RenderSchemes(schemes []model.Scheme)
	NoData()
}

type WeatherView interface {
	Loading()
	RenderWeather(report Report)
}
