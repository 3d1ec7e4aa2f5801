package route

// TravelMode is the travel mode sent to the directions service.
type TravelMode string

// RoutingPreference selects how the directions service trades accuracy for latency.
type RoutingPreference string

// Units selects the unit system of localized values in the response.
type Units string

const (
	// TravelModeTruck routes for a heavy goods vehicle.
	TravelModeTruck TravelMode = "TRUCK"

	// RoutingPreferenceTrafficAwareOptimal uses live traffic without latency shortcuts.
	RoutingPreferenceTrafficAwareOptimal RoutingPreference = "TRAFFIC_AWARE_OPTIMAL"

	// UnitsImperial reports localized values in miles and feet.
	UnitsImperial Units = "IMPERIAL"
	// UnitsMetric reports localized values in kilometers and meters.
	UnitsMetric Units = "METRIC"

	// DefaultLanguageCode is the language of localized values.
	DefaultLanguageCode = "en-US"
)

// LatLng is a latitude/longitude pair in degrees.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location wraps a LatLng the way the directions service expects it.
type Location struct {
	LatLng LatLng `json:"latLng"`
}

// Waypoint is an origin or destination envelope.
type Waypoint struct {
	Location Location `json:"location"`
}

// NewWaypoint builds a Waypoint from raw coordinates.
func NewWaypoint(latitude, longitude float64) Waypoint {
	return Waypoint{Location: Location{LatLng: LatLng{Latitude: latitude, Longitude: longitude}}}
}

// TrailerInfo describes the trailer pulled by the vehicle.
type TrailerInfo struct {
	LengthMm int `json:"lengthMm"`
}

// VehicleInfo holds the physical constraints used to filter roads.
type VehicleInfo struct {
	TotalAxleCount int         `json:"totalAxleCount"`
	TotalHeightMm  int         `json:"totalHeightMm"`
	TotalLengthMm  int         `json:"totalLengthMm"`
	TotalWidthMm   int         `json:"totalWidthMm"`
	TotalWeightKg  int         `json:"totalWeightKg"`
	TrailerInfo    TrailerInfo `json:"trailerInfo"`
}

// DefaultVehicleInfo returns the canonical five-axle tractor-trailer profile:
//   - 5 axles
//   - 4114 mm (13'6") tall
//   - 21945 mm (72') overall, 16154 mm (53') trailer
//   - 2590 mm (8'6") wide
//   - 32658 kg (72,000 lb) gross
func DefaultVehicleInfo() VehicleInfo {
	return VehicleInfo{
		TotalAxleCount: 5,
		TotalHeightMm:  4114,
		TotalLengthMm:  21945,
		TotalWidthMm:   2590,
		TotalWeightKg:  32658,
		TrailerInfo: TrailerInfo{
			LengthMm: 16154,
		},
	}
}

// RouteModifiers carries the vehicle profile and the avoidance flags.
type RouteModifiers struct {
	VehicleInfo   VehicleInfo `json:"vehicleInfo"`
	AvoidTolls    bool        `json:"avoidTolls"`
	AvoidHighways bool        `json:"avoidHighways"`
	AvoidFerries  bool        `json:"avoidFerries"`
}

// RequestOptions holds every field of a compute-routes request that does not vary per call.
type RequestOptions struct {
	TravelMode               TravelMode
	RoutingPreference        RoutingPreference
	RouteModifiers           RouteModifiers
	ComputeAlternativeRoutes bool
	LanguageCode             string
	Units                    Units
}

// DefaultRequestOptions returns a truck, traffic-aware, single-route, en-US imperial request
// with no avoidances and DefaultVehicleInfo.
func DefaultRequestOptions() RequestOptions {
	return RequestOptions{
		TravelMode:        TravelModeTruck,
		RoutingPreference: RoutingPreferenceTrafficAwareOptimal,
		RouteModifiers: RouteModifiers{
			VehicleInfo: DefaultVehicleInfo(),
		},
		ComputeAlternativeRoutes: false,
		LanguageCode:             DefaultLanguageCode,
		Units:                    UnitsImperial,
	}
}

// RouteTokenParams is the JSON body of a compute-routes request.
type RouteTokenParams struct {
	Origin                   Waypoint          `json:"origin"`
	Destination              Waypoint          `json:"destination"`
	TravelMode               TravelMode        `json:"travelMode"`
	RoutingPreference        RoutingPreference `json:"routingPreference"`
	RouteModifiers           RouteModifiers    `json:"routeModifiers"`
	ComputeAlternativeRoutes bool              `json:"computeAlternativeRoutes"`
	LanguageCode             string            `json:"languageCode"`
	Units                    Units             `json:"units"`
}

// NewRouteTokenParams merges the per-call waypoints into the fixed options.
func NewRouteTokenParams(origin, destination Waypoint, opts RequestOptions) RouteTokenParams {
	return RouteTokenParams{
		Origin:                   origin,
		Destination:              destination,
		TravelMode:               opts.TravelMode,
		RoutingPreference:        opts.RoutingPreference,
		RouteModifiers:           opts.RouteModifiers,
		ComputeAlternativeRoutes: opts.ComputeAlternativeRoutes,
		LanguageCode:             opts.LanguageCode,
		Units:                    opts.Units,
	}
}
