package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between a and b
// on a spherical Earth, using the Haversine formula.
//
// The haversine term is clamped to [0, 1] before asin, so identical and
// antipodal points stay finite; the latter saturate at π·R (~20015.1 km).
func Distance(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lon1 := toRadians(a.Lon)
	lat2 := toRadians(b.Lat)
	lon2 := toRadians(b.Lon)

	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLon := math.Sin((lon2 - lon1) / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Asin(math.Sqrt(h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
