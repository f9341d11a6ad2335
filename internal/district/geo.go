package district

import "math"

const earthRadiusKm = 6371.0

// distanceKm returns the great-circle (haversine) distance between two coordinates.
func distanceKm(a, b Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

type bounds struct {
	MinLatitude, MaxLatitude   float64
	MinLongitude, MaxLongitude float64
}

// boundingBox over-approximates the circle of radiusKm around center.
func boundingBox(center Coordinate, radiusKm float64) bounds {
	dLat := radiusKm / 111.0
	dLon := radiusKm / (111.320 * math.Cos(toRadians(center.Latitude)))
	return bounds{
		MinLatitude:  center.Latitude - dLat,
		MaxLatitude:  center.Latitude + dLat,
		MinLongitude: center.Longitude - math.Abs(dLon),
		MaxLongitude: center.Longitude + math.Abs(dLon),
	}
}

// tierFor returns the smallest radius tier containing distance, or 0 when out of range.
func tierFor(distance float64) int {
	for _, t := range RadiusTiers {
		if distance <= float64(t) {
			return t
		}
	}
	return 0
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
