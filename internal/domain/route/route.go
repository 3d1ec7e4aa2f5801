package route

import "encoding/json"

// RouteResponse is the decoded body of a compute-routes response.
type RouteResponse struct {
	Routes []Route `json:"routes,omitempty"`

	// Error is set when the service answered with a status payload instead of routes.
	Error *APIError `json:"error,omitempty"`
}

// APIError is the error payload returned by the directions service.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Route is one computed route. Only RouteToken and TravelAdvisory are requested by the
// default field mask; the rest is carried through for callers that widen the mask.
type Route struct {
	Legs            []Leg                 `json:"legs,omitempty"`
	DistanceMeters  *int                  `json:"distanceMeters,omitempty"`
	Duration        string                `json:"duration,omitempty"`
	StaticDuration  string                `json:"staticDuration,omitempty"`
	Polyline        *Polyline             `json:"polyline,omitempty"`
	Description     string                `json:"description,omitempty"`
	Warnings        []string              `json:"warnings,omitempty"`
	Viewport        *Viewport             `json:"viewport,omitempty"`
	TravelAdvisory  TravelAdvisory        `json:"travelAdvisory,omitzero"`
	LocalizedValues *RouteLocalizedValues `json:"localizedValues,omitempty"`
	RouteToken      string                `json:"routeToken,omitempty"`
	RouteLabels     []string              `json:"routeLabels,omitempty"`
	PolylineDetails json.RawMessage       `json:"polylineDetails,omitempty"`
}

// TravelAdvisory holds routing caveats for a route.
type TravelAdvisory struct {
	RouteRestrictionsPartiallyIgnored *bool `json:"routeRestrictionsPartiallyIgnored,omitempty"`
}

// RestrictionsPartiallyIgnored reports whether the vehicle restrictions were relaxed.
func (a TravelAdvisory) RestrictionsPartiallyIgnored() bool {
	return a.RouteRestrictionsPartiallyIgnored != nil && *a.RouteRestrictionsPartiallyIgnored
}

// Leg is the part of a route between two consecutive waypoints.
type Leg struct {
	DistanceMeters  int             `json:"distanceMeters,omitempty"`
	Duration        string          `json:"duration,omitempty"`
	StaticDuration  string          `json:"staticDuration,omitempty"`
	Polyline        Polyline        `json:"polyline,omitzero"`
	StartLocation   *Location       `json:"startLocation,omitempty"`
	EndLocation     *Location       `json:"endLocation,omitempty"`
	Steps           []Step          `json:"steps,omitempty"`
	LocalizedValues LocalizedValues `json:"localizedValues,omitzero"`
}

// Step is a single navigation instruction within a leg.
type Step struct {
	DistanceMeters        int                   `json:"distanceMeters,omitempty"`
	StaticDuration        string                `json:"staticDuration,omitempty"`
	Polyline              Polyline              `json:"polyline,omitzero"`
	StartLocation         *Location             `json:"startLocation,omitempty"`
	EndLocation           *Location             `json:"endLocation,omitempty"`
	NavigationInstruction NavigationInstruction `json:"navigationInstruction,omitzero"`
	LocalizedValues       LocalizedValues       `json:"localizedValues,omitzero"`
	TravelMode            string                `json:"travelMode,omitempty"`
}

// Polyline is an encoded polyline of a route, leg or step.
type Polyline struct {
	EncodedPolyline string `json:"encodedPolyline,omitempty"`
}

// NavigationInstruction is the maneuver and text for a step.
type NavigationInstruction struct {
	Maneuver     string `json:"maneuver,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// LocalizedText is a value formatted for the requested language and units.
type LocalizedText struct {
	Text string `json:"text,omitempty"`
}

// LocalizedValues are the localized distance and duration of a leg or step.
type LocalizedValues struct {
	Distance       LocalizedText `json:"distance,omitzero"`
	StaticDuration LocalizedText `json:"staticDuration,omitzero"`
}

// RouteLocalizedValues are the localized distance and durations of a whole route.
type RouteLocalizedValues struct {
	Distance       LocalizedText `json:"distance,omitzero"`
	Duration       LocalizedText `json:"duration,omitzero"`
	StaticDuration LocalizedText `json:"staticDuration,omitzero"`
}

// Viewport is the bounding box of a route.
type Viewport struct {
	Low  LatLng `json:"low"`
	High LatLng `json:"high"`
}
