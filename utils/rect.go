package utils

// Rect is an axis-aligned rectangle with float dimensions.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the rectangle surface area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}
